package nats

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// NewNatsConn создает и возвращает новое соединение с NATS
func NewNatsConn(url, user, password string) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.Name("crisis-awareness-system"),
		nats.MaxReconnects(3),
		nats.ReconnectWait(2 * time.Second),
	}
	if user != "" {
		opts = append(opts, nats.UserInfo(user, password))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return nc, nil
}
