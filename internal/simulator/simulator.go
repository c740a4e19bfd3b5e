// Package simulator генерирует случайные инциденты для демонстрации
// дашборда без подключения к брокеру. События идут тем же путем приема,
// что и сообщения брокера.
package simulator

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crisis_awareness_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Опорная точка генерации координат (Оттава)
const (
	baseLat = 45.3215
	baseLng = -75.8572
)

var simTypes = []string{"flood", "accident", "assault", "disease", "earthquake", "fire"}

var simSeverities = []models.Severity{
	models.SeverityLow, models.SeverityMed, models.SeverityHigh, models.SeverityCritical,
}

// IngestFunc принимает сгенерированный инцидент
type IngestFunc func(inc *models.Incident)

// Simulator - генератор случайных инцидентов по таймеру
type Simulator struct {
	interval time.Duration
	ingest   IngestFunc
	logger   *logrus.Logger
	rng      *rand.Rand
}

// New создает симулятор с заданным интервалом генерации
func New(interval time.Duration, ingest IngestFunc, logger *logrus.Logger) *Simulator {
	return &Simulator{
		interval: interval,
		ingest:   ingest,
		logger:   logger,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start запускает горутину генерации; остановка - отменой контекста
func (s *Simulator) Start(ctx context.Context) {
	s.logger.WithField("interval", s.interval.String()).Info("Starting incident simulator...")
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping incident simulator.")
				return
			case <-ticker.C:
				s.ingest(s.RandomIncident())
			}
		}
	}()
}

// RandomIncident генерирует один случайный инцидент
func (s *Simulator) RandomIncident() *models.Incident {
	typ := simTypes[s.rng.Intn(len(simTypes))]
	sev := simSeverities[s.rng.Intn(len(simSeverities))]

	jitter := func(n float64) float64 { return (s.rng.Float64() - 0.5) * n }

	injured := 0
	if s.rng.Float64() < 0.35 {
		injured = s.rng.Intn(3)
	}
	lanes := 0
	if s.rng.Float64() < 0.4 {
		lanes = s.rng.Intn(3)
	}

	inc := &models.Incident{
		ID:       "sim_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:6],
		TS:       time.Now().UTC().Format(time.RFC3339),
		Type:     typ,
		Severity: string(sev),
		Headline: fmt.Sprintf("%s%s reported", strings.ToUpper(typ[:1]), typ[1:]),
		Summary:  "Simulated incident",
		Location: &models.Location{
			Lat:     baseLat + jitter(0.35),
			Lng:     baseLng + jitter(0.55),
			City:    "Ottawa",
			Country: "CA",
		},
		InjuredCount: &injured,
		LanesBlocked: &lanes,
		RoadClosed:   lanes >= 2,
	}

	switch typ {
	case "fire":
		inc.GasLeak = s.rng.Float64() < 0.2
	case "flood":
		inc.PowerOutage = s.rng.Float64() < 0.3
		if sev != models.SeverityLow {
			inc.ShelterNeeded = s.rng.Float64() < 0.4
		}
		displaced := s.rng.Intn(200)
		inc.DisplacedPeople = &displaced
	}

	return inc
}
