package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/crisis_awareness_system/internal/broker"
	"github.com/shenikar/crisis_awareness_system/internal/config"
	"github.com/shenikar/crisis_awareness_system/internal/models"
	"github.com/shenikar/crisis_awareness_system/internal/routing"
	"github.com/shenikar/crisis_awareness_system/internal/state"
	"github.com/shenikar/crisis_awareness_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// ErrIncidentNotFound возвращается, когда инцидента нет в буфере
var ErrIncidentNotFound = errors.New("incident not found")

// ErrCommandsDisabled возвращается, когда публикация команд выключена флагом
var ErrCommandsDisabled = errors.New("command publishing is disabled")

// IncidentDetail - инцидент вместе с результатом маршрутизации и трассой объяснения
type IncidentDetail struct {
	Incident *models.Incident
	Agencies []models.Agency
	Trace    []string
}

// Analytics - агрегаты по видимым инцидентам для панели аналитики
type Analytics struct {
	Total      int
	BySeverity map[models.Severity]int
	ByType     map[string]int
	ByAgency   map[models.Agency]int
	Located    int
}

// AgencyQueue - очередь инцидентов одной службы, новые в начале
type AgencyQueue struct {
	Agency    models.Agency
	Label     string
	Incidents []*models.Incident
}

// MapPoint - инцидент с координатами для карты
type MapPoint struct {
	Incident *models.Incident
	Agencies []models.Agency
}

// DashboardService определяет контракт для бизнес-логики дашборда
type DashboardService interface {
	Ingest(inc *models.Incident)
	ListIncidents() []*models.Incident
	GetIncident(id string) (*IncidentDetail, error)
	SetFilters(severity, agency string) error
	Select(id string) error
	Reset()
	Status() state.Status
	SetStatus(status state.Status)
	RecentIDs() []string
	SendCommand(ctx context.Context, cmd *models.Command) error
	Analytics() *Analytics
	AgencyQueues() []AgencyQueue
	MapPoints() []MapPoint
	Subscribe() (<-chan *models.Incident, func())
}

type dashboardService struct {
	controller *state.Controller
	publisher  broker.CommandPublisher
	alerts     webhook.AlertPublisher
	logger     *logrus.Logger
	cfg        *config.Config

	subMu   sync.Mutex
	subs    map[int]chan *models.Incident
	nextSub int
}

// NewDashboardService создает сервис дашборда.
// publisher и alerts могут быть nil, если соответствующий канал не настроен.
func NewDashboardService(
	controller *state.Controller,
	publisher broker.CommandPublisher,
	alerts webhook.AlertPublisher,
	logger *logrus.Logger,
	cfg *config.Config,
) DashboardService {
	return &dashboardService{
		controller: controller,
		publisher:  publisher,
		alerts:     alerts,
		logger:     logger,
		cfg:        cfg,
		subs:       make(map[int]chan *models.Incident),
	}
}

// Ingest обрабатывает входящий инцидент: кладет в буфер, рассылает живым
// подписчикам и ставит в очередь вебхук для критических инцидентов.
// Каждое событие обрабатывается до конца прежде, чем возьмется следующее.
func (s *dashboardService) Ingest(inc *models.Incident) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dashboard",
		"method":      "Ingest",
		"incident_id": inc.ID,
		"type":        inc.Type,
	})

	s.controller.Apply(inc)
	s.broadcast(inc)

	if inc.SeverityLevel() == models.SeverityCritical && s.alerts != nil {
		set := routing.RouteAgencies(inc)
		event := webhook.AlertEvent{
			IncidentID: inc.ID,
			Headline:   inc.Title(),
			Type:       inc.Type,
			Severity:   string(models.SeverityCritical),
			Agencies:   set.List(),
			Location:   inc.Location,
			Timestamp:  time.Now().UTC(),
		}
		if err := s.alerts.Publish(context.Background(), event); err != nil {
			// Сбой очереди оповещений не влияет на буфер и маршрутизацию
			log.WithError(err).Error("Failed to enqueue critical incident alert")
		}
	}

	log.Debug("Incident ingested")
}

// ListIncidents возвращает инциденты, проходящие текущие фильтры
func (s *dashboardService) ListIncidents() []*models.Incident {
	return s.controller.Visible()
}

// GetIncident возвращает инцидент с назначенными службами и трассой решения
func (s *dashboardService) GetIncident(id string) (*IncidentDetail, error) {
	inc, ok := s.controller.Find(id)
	if !ok {
		return nil, fmt.Errorf("service: %w: %s", ErrIncidentNotFound, id)
	}

	return &IncidentDetail{
		Incident: inc,
		Agencies: routing.RouteAgencies(inc).List(),
		Trace:    routing.RouteTrace(inc),
	}, nil
}

// SetFilters устанавливает фильтры серьезности и службы
func (s *dashboardService) SetFilters(severity, agency string) error {
	if severity != state.FilterAll && models.ParseSeverity(severity) == models.SeverityUnrecognized {
		return fmt.Errorf("service: unknown severity filter: %s", severity)
	}
	if agency != state.FilterAll && !models.Agency(agency).Valid() {
		return fmt.Errorf("service: unknown agency filter: %s", agency)
	}

	s.controller.SetSeverityFilter(severity)
	s.controller.SetAgencyFilter(agency)
	return nil
}

// Select отмечает инцидент выбранным
func (s *dashboardService) Select(id string) error {
	if id != "" {
		if _, ok := s.controller.Find(id); !ok {
			return fmt.Errorf("service: %w: %s", ErrIncidentNotFound, id)
		}
	}
	s.controller.Select(id)
	return nil
}

// Reset очищает буфер инцидентов
func (s *dashboardService) Reset() {
	s.controller.Reset()
	s.logger.WithField("service", "dashboard").Info("Incident buffer reset")
}

// Status возвращает состояние потока данных
func (s *dashboardService) Status() state.Status {
	return s.controller.Snapshot().Status
}

// SetStatus переводит состояние потока данных
func (s *dashboardService) SetStatus(status state.Status) {
	s.controller.SetStatus(status)
}

// RecentIDs возвращает идентификаторы недавно поступивших инцидентов
func (s *dashboardService) RecentIDs() []string {
	return s.controller.Snapshot().RecentIDs
}

// SendCommand публикует команду оператора в брокер.
// Отправка fire-and-forget: сбой возвращается вызывающему для показа
// уведомления, повторов нет, буфер не откатывается.
func (s *dashboardService) SendCommand(ctx context.Context, cmd *models.Command) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dashboard",
		"method":      "SendCommand",
		"command":     cmd.Type,
		"incident_id": cmd.IncidentID,
	})

	if !s.cfg.CommandsEnabled || s.publisher == nil {
		log.Warn("Command publishing is disabled")
		return ErrCommandsDisabled
	}

	if !cmd.Type.Valid() {
		return fmt.Errorf("service: unknown command type: %s", cmd.Type)
	}

	if cmd.At == "" {
		cmd.At = time.Now().UTC().Format(time.RFC3339)
	}
	if cmd.User == "" {
		cmd.User = "ui"
	}

	if err := s.publisher.PublishCommand(cmd); err != nil {
		log.WithError(err).Error("Failed to publish command")
		return fmt.Errorf("service: could not publish command: %w", err)
	}

	s.applyLifecycle(cmd)
	log.Info("Command sent")
	return nil
}

// applyLifecycle обновляет справочные флаги жизненного цикла заменой
// инцидента в буфере на новую версию
func (s *dashboardService) applyLifecycle(cmd *models.Command) {
	existing, ok := s.controller.Find(cmd.IncidentID)
	if !ok {
		return
	}

	updated := *existing
	switch cmd.Type {
	case models.CommandAck:
		updated.Acknowledged = true
	case models.CommandAssign:
		updated.AssignedTo = cmd.User
	case models.CommandEscalate:
		updated.Escalated = true
	case models.CommandResolve:
		updated.Resolved = true
	}
	s.controller.Replace(&updated)
}

// Analytics считает агрегаты по видимым инцидентам
func (s *dashboardService) Analytics() *Analytics {
	visible := s.controller.Visible()

	a := &Analytics{
		Total:      len(visible),
		BySeverity: make(map[models.Severity]int),
		ByType:     make(map[string]int),
		ByAgency:   make(map[models.Agency]int),
	}

	for _, inc := range visible {
		a.BySeverity[inc.SeverityLevel()]++
		if inc.Type != "" {
			a.ByType[string(inc.Kind())]++
		}
		for _, agency := range routing.RouteAgencies(inc).List() {
			a.ByAgency[agency]++
		}
		if inc.Location != nil {
			a.Located++
		}
	}

	return a
}

// AgencyQueues группирует видимые инциденты по назначенным службам
func (s *dashboardService) AgencyQueues() []AgencyQueue {
	visible := s.controller.Visible()

	queues := make([]AgencyQueue, 0, len(models.AllAgencies))
	for _, agency := range models.AllAgencies {
		queue := AgencyQueue{
			Agency: agency,
			Label:  agency.Label(),
		}
		for _, inc := range visible {
			if routing.RouteAgencies(inc).Has(agency) {
				queue.Incidents = append(queue.Incidents, inc)
			}
		}
		queues = append(queues, queue)
	}

	return queues
}

// MapPoints возвращает видимые инциденты с координатами
func (s *dashboardService) MapPoints() []MapPoint {
	visible := s.controller.Visible()

	points := make([]MapPoint, 0, len(visible))
	for _, inc := range visible {
		if inc.Location == nil {
			continue
		}
		points = append(points, MapPoint{
			Incident: inc,
			Agencies: routing.RouteAgencies(inc).List(),
		})
	}

	return points
}

// Subscribe регистрирует подписчика живых обновлений.
// Возвращенная функция снимает подписку и закрывает канал.
func (s *dashboardService) Subscribe() (<-chan *models.Incident, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan *models.Incident, 16)
	s.subs[id] = ch

	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// broadcast рассылает инцидент подписчикам; медленные подписчики
// пропускают событие вместо блокировки приема
func (s *dashboardService) broadcast(inc *models.Incident) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- inc:
		default:
		}
	}
}
