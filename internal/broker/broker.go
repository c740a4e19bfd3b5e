// Package broker адаптирует внешний брокер сообщений к доменным типам:
// входящие сообщения десериализуются в инциденты, исходящие команды
// публикуются в параллельную командную иерархию тем.
package broker

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/shenikar/crisis_awareness_system/internal/models"
	"github.com/sirupsen/logrus"
)

// commandSubjectPrefix - корень командной иерархии: crisis.cmd.<type>.<incidentId>
const commandSubjectPrefix = "crisis.cmd"

// IncidentHandler вызывается по одному разу на каждое входящее сообщение
// с уже десериализованным инцидентом
type IncidentHandler func(incident *models.Incident)

// CommandPublisher - контракт публикации исходящих команд
type CommandPublisher interface {
	PublishCommand(cmd *models.Command) error
}

// Client - клиент брокера поверх NATS-соединения
type Client struct {
	conn   *nats.Conn
	logger *logrus.Logger
	sub    *nats.Subscription
}

// NewClient создает клиента брокера поверх готового соединения
func NewClient(conn *nats.Conn, logger *logrus.Logger) *Client {
	return &Client{
		conn:   conn,
		logger: logger,
	}
}

// SubscribeIncidents подписывается на иерархию тем инцидентов
// (crisis.events.<source>.<region>.<type>.<severity>) по шаблону с подстановкой.
// Некорректные (не-JSON) сообщения молча отбрасываются на этой границе
// и не доходят до движка маршрутизации.
func (c *Client) SubscribeIncidents(pattern string, handler IncidentHandler) error {
	log := c.logger.WithFields(logrus.Fields{
		"component": "broker",
		"pattern":   pattern,
	})

	sub, err := c.conn.Subscribe(pattern, func(msg *nats.Msg) {
		incident, err := DecodeIncident(msg.Data)
		if err != nil {
			log.WithError(err).Debug("Dropping malformed incident payload")
			return
		}
		handler(incident)
	})
	if err != nil {
		return fmt.Errorf("broker: could not subscribe to %s: %w", pattern, err)
	}

	c.sub = sub
	log.Info("Subscribed to incident topic pattern")
	return nil
}

// PublishCommand публикует команду в тему crisis.cmd.<type>.<incidentId>.
// Доставка fire-and-forget: повторов нет, состояние буфера не меняется.
func (c *Client) PublishCommand(cmd *models.Command) error {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("broker: could not marshal command: %w", err)
	}

	subject := fmt.Sprintf("%s.%s.%s", commandSubjectPrefix, cmd.Type, cmd.IncidentID)
	if err := c.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("broker: could not publish command to %s: %w", subject, err)
	}

	c.logger.WithFields(logrus.Fields{
		"component":   "broker",
		"subject":     subject,
		"command":     cmd.Type,
		"incident_id": cmd.IncidentID,
	}).Info("Command published")
	return nil
}

// Close выполняет остановку подписки и дренаж соединения.
// Ошибки очистки проглатываются - закрытие не должно падать.
func (c *Client) Close() {
	if c.sub != nil {
		if err := c.sub.Unsubscribe(); err != nil {
			c.logger.WithError(err).Warn("Failed to unsubscribe from incident topics")
		}
	}
	if c.conn != nil && !c.conn.IsClosed() {
		if err := c.conn.Drain(); err != nil {
			c.logger.WithError(err).Warn("Failed to drain broker connection")
		}
	}
}

// DecodeIncident десериализует полезную нагрузку сообщения в инцидент.
// Отсутствующие поля не являются ошибкой - значения по умолчанию
// подставляются движком маршрутизации.
func DecodeIncident(payload []byte) (*models.Incident, error) {
	var incident models.Incident
	if err := json.Unmarshal(payload, &incident); err != nil {
		return nil, fmt.Errorf("broker: malformed incident payload: %w", err)
	}
	return &incident, nil
}
