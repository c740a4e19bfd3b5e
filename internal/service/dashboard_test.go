package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	broker_mocks "github.com/shenikar/crisis_awareness_system/internal/broker/mocks"
	"github.com/shenikar/crisis_awareness_system/internal/config"
	"github.com/shenikar/crisis_awareness_system/internal/models"
	"github.com/shenikar/crisis_awareness_system/internal/state"
	"github.com/shenikar/crisis_awareness_system/internal/webhook"
	webhook_mocks "github.com/shenikar/crisis_awareness_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }

// newTestDashboardService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestDashboardService(t *testing.T) (*dashboardService, *broker_mocks.MockCommandPublisher, *webhook_mocks.MockAlertPublisher) {
	ctrl := gomock.NewController(t)
	publisherMock := broker_mocks.NewMockCommandPublisher(ctrl)
	alertMock := webhook_mocks.NewMockAlertPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		CommandsEnabled: true,
		MaxEvents:       100,
	}

	controller := state.NewController(cfg.MaxEvents, 0)
	svc := NewDashboardService(controller, publisherMock, alertMock, logger, cfg)
	return svc.(*dashboardService), publisherMock, alertMock
}

func TestIngest_AppendsToBuffer(t *testing.T) {
	svc, _, _ := newTestDashboardService(t)

	svc.Ingest(&models.Incident{ID: "a", Type: "fire", Severity: "low"})
	svc.Ingest(&models.Incident{ID: "b", Type: "flood", Severity: "med"})

	incidents := svc.ListIncidents()
	require.Len(t, incidents, 2)
	assert.Equal(t, "b", incidents[0].ID)
}

func TestIngest_CriticalIncidentEnqueuesAlert(t *testing.T) {
	svc, _, alertMock := newTestDashboardService(t)

	var captured webhook.AlertEvent
	alertMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.AlertEvent) error {
			captured = event
			return nil
		}).Times(1)

	svc.Ingest(&models.Incident{
		ID:       "crit_1",
		Type:     "fire",
		Severity: "critical",
		Headline: "Warehouse fire",
	})

	assert.Equal(t, "crit_1", captured.IncidentID)
	assert.Equal(t, "Warehouse fire", captured.Headline)
	assert.Contains(t, captured.Agencies, models.AgencyFire)
	assert.Contains(t, captured.Agencies, models.AgencyLaw)
}

func TestIngest_NonCriticalDoesNotAlert(t *testing.T) {
	svc, _, _ := newTestDashboardService(t)

	// Без EXPECT: любой вызов Publish провалит тест
	svc.Ingest(&models.Incident{ID: "a", Type: "fire", Severity: "high"})
}

func TestIngest_AlertFailureDoesNotAffectBuffer(t *testing.T) {
	svc, _, alertMock := newTestDashboardService(t)

	alertMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Return(errors.New("redis down")).
		Times(1)

	svc.Ingest(&models.Incident{ID: "a", Severity: "critical"})

	assert.Len(t, svc.ListIncidents(), 1)
}

func TestGetIncident_WithRoutingDetail(t *testing.T) {
	svc, _, _ := newTestDashboardService(t)

	svc.Ingest(&models.Incident{
		ID:           "acc_1",
		Type:         "accident",
		Severity:     "high",
		InjuredCount: intPtr(2),
		LanesBlocked: intPtr(1),
	})

	detail, err := svc.GetIncident("acc_1")
	require.NoError(t, err)
	assert.Equal(t, "acc_1", detail.Incident.ID)
	assert.ElementsMatch(t, []models.Agency{
		models.AgencyLaw, models.AgencyEMS, models.AgencyHospitals, models.AgencyTransport,
	}, detail.Agencies)
	assert.NotEmpty(t, detail.Trace)
}

func TestGetIncident_NotFound(t *testing.T) {
	svc, _, _ := newTestDashboardService(t)

	detail, err := svc.GetIncident("missing")
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrIncidentNotFound)
}

func TestSetFilters_Validation(t *testing.T) {
	svc, _, _ := newTestDashboardService(t)

	require.NoError(t, svc.SetFilters("high", "fire"))
	require.NoError(t, svc.SetFilters(state.FilterAll, state.FilterAll))

	assert.Error(t, svc.SetFilters("catastrophic", state.FilterAll))
	assert.Error(t, svc.SetFilters(state.FilterAll, "militia"))
}

func TestSendCommand_PublishesAndUpdatesLifecycle(t *testing.T) {
	svc, publisherMock, _ := newTestDashboardService(t)
	ctx := context.Background()

	svc.Ingest(&models.Incident{ID: "a", Type: "fire", Severity: "low"})

	publisherMock.EXPECT().
		PublishCommand(gomock.Any()).
		DoAndReturn(func(cmd *models.Command) error {
			assert.Equal(t, models.CommandAck, cmd.Type)
			assert.Equal(t, "a", cmd.IncidentID)
			assert.NotEmpty(t, cmd.At)
			return nil
		}).Times(1)

	err := svc.SendCommand(ctx, &models.Command{Type: models.CommandAck, IncidentID: "a", User: "operator"})
	require.NoError(t, err)

	// Жизненный цикл обновлен заменой инцидента в буфере
	detail, err := svc.GetIncident("a")
	require.NoError(t, err)
	assert.True(t, detail.Incident.Acknowledged)
}

func TestSendCommand_AssignSetsUser(t *testing.T) {
	svc, publisherMock, _ := newTestDashboardService(t)

	svc.Ingest(&models.Incident{ID: "a", Type: "fire"})

	publisherMock.EXPECT().PublishCommand(gomock.Any()).Return(nil).Times(1)

	err := svc.SendCommand(context.Background(), &models.Command{
		Type:       models.CommandAssign,
		IncidentID: "a",
		User:       "dispatcher-7",
	})
	require.NoError(t, err)

	detail, err := svc.GetIncident("a")
	require.NoError(t, err)
	assert.Equal(t, "dispatcher-7", detail.Incident.AssignedTo)
}

func TestSendCommand_DisabledByFlag(t *testing.T) {
	svc, _, _ := newTestDashboardService(t)
	svc.cfg.CommandsEnabled = false

	err := svc.SendCommand(context.Background(), &models.Command{Type: models.CommandAck, IncidentID: "a"})
	assert.ErrorIs(t, err, ErrCommandsDisabled)
}

func TestSendCommand_UnknownType(t *testing.T) {
	svc, _, _ := newTestDashboardService(t)

	err := svc.SendCommand(context.Background(), &models.Command{Type: "detonate", IncidentID: "a"})
	assert.Error(t, err)
}

func TestSendCommand_PublishFailureDoesNotMutateState(t *testing.T) {
	svc, publisherMock, _ := newTestDashboardService(t)

	svc.Ingest(&models.Incident{ID: "a", Type: "fire"})

	publisherMock.EXPECT().
		PublishCommand(gomock.Any()).
		Return(errors.New("broker unavailable")).
		Times(1)

	err := svc.SendCommand(context.Background(), &models.Command{Type: models.CommandAck, IncidentID: "a"})
	assert.Error(t, err)

	detail, derr := svc.GetIncident("a")
	require.NoError(t, derr)
	assert.False(t, detail.Incident.Acknowledged)
}

func TestAnalytics_Aggregates(t *testing.T) {
	svc, _, _ := newTestDashboardService(t)

	svc.Ingest(&models.Incident{ID: "a", Type: "fire", Severity: "high", Location: &models.Location{Lat: 45.3, Lng: -75.8}})
	svc.Ingest(&models.Incident{ID: "b", Type: "fire", Severity: "low"})
	svc.Ingest(&models.Incident{ID: "c", Type: "assault", Severity: "high"})

	analytics := svc.Analytics()
	assert.Equal(t, 3, analytics.Total)
	assert.Equal(t, 2, analytics.BySeverity[models.SeverityHigh])
	assert.Equal(t, 1, analytics.BySeverity[models.SeverityLow])
	assert.Equal(t, 2, analytics.ByType["fire"])
	assert.Equal(t, 1, analytics.ByType["assault"])
	// Оба пожара маршрутизируются в fire; все три - в law (оцепление + нападение)
	assert.Equal(t, 2, analytics.ByAgency[models.AgencyFire])
	assert.Equal(t, 3, analytics.ByAgency[models.AgencyLaw])
	assert.Equal(t, 1, analytics.Located)
}

func TestAgencyQueues_GroupsByRoutedAgency(t *testing.T) {
	svc, _, _ := newTestDashboardService(t)

	svc.Ingest(&models.Incident{ID: "a", Type: "assault"})
	svc.Ingest(&models.Incident{ID: "b", Type: "fire"})

	queues := svc.AgencyQueues()
	require.Len(t, queues, len(models.AllAgencies))

	byAgency := make(map[models.Agency]AgencyQueue)
	for _, q := range queues {
		byAgency[q.Agency] = q
	}

	assert.Len(t, byAgency[models.AgencyLaw].Incidents, 2)
	assert.Len(t, byAgency[models.AgencyFire].Incidents, 1)
	assert.Empty(t, byAgency[models.AgencyEMS].Incidents)
	assert.Equal(t, "Fire & Rescue", byAgency[models.AgencyFire].Label)
}

func TestMapPoints_OnlyLocatedIncidents(t *testing.T) {
	svc, _, _ := newTestDashboardService(t)

	svc.Ingest(&models.Incident{ID: "a", Type: "fire", Location: &models.Location{Lat: 45.32, Lng: -75.85}})
	svc.Ingest(&models.Incident{ID: "b", Type: "fire"})

	points := svc.MapPoints()
	require.Len(t, points, 1)
	assert.Equal(t, "a", points[0].Incident.ID)
	assert.Contains(t, points[0].Agencies, models.AgencyFire)
}

func TestSubscribe_ReceivesIngestedIncidents(t *testing.T) {
	svc, _, _ := newTestDashboardService(t)

	ch, cancel := svc.Subscribe()
	defer cancel()

	svc.Ingest(&models.Incident{ID: "a", Type: "fire"})

	select {
	case inc := <-ch:
		assert.Equal(t, "a", inc.ID)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for live update")
	}
}

func TestSubscribe_CancelStopsDelivery(t *testing.T) {
	svc, _, _ := newTestDashboardService(t)

	ch, cancel := svc.Subscribe()
	cancel()

	// Канал закрыт, рассылка после отмены не паникует
	svc.Ingest(&models.Incident{ID: "a"})

	_, open := <-ch
	assert.False(t, open)
}
