package simulator

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/crisis_awareness_system/internal/models"
	"github.com/shenikar/crisis_awareness_system/internal/routing"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func TestRandomIncident_ShapeIsValid(t *testing.T) {
	sim := New(time.Second, func(*models.Incident) {}, quietLogger())

	for i := 0; i < 100; i++ {
		inc := sim.RandomIncident()

		assert.NotEmpty(t, inc.ID)
		assert.NotEmpty(t, inc.TS)
		assert.Contains(t, simTypes, inc.Type)
		assert.NotEqual(t, models.SeverityUnrecognized, inc.SeverityLevel())
		require.NotNil(t, inc.Location)
		assert.InDelta(t, baseLat, inc.Location.Lat, 0.2)
		assert.InDelta(t, baseLng, inc.Location.Lng, 0.3)

		// Сгенерированный инцидент всегда безопасен для движка маршрутизации
		routing.RouteAgencies(inc)
	}
}

func TestStart_FeedsIngestAndStops(t *testing.T) {
	var mu sync.Mutex
	var received []*models.Incident

	ingest := func(inc *models.Incident) {
		mu.Lock()
		received = append(received, inc)
		mu.Unlock()
	}

	sim := New(10*time.Millisecond, ingest, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	sim.Start(ctx)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) >= 3
	}, time.Second, 5*time.Millisecond)

	cancel()
	time.Sleep(30 * time.Millisecond)

	mu.Lock()
	count := len(received)
	mu.Unlock()
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.InDelta(t, count, len(received), 1) // после отмены генерация прекращается
}
