package broker

import (
	"testing"

	"github.com/shenikar/crisis_awareness_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeIncident_FullPayload(t *testing.T) {
	payload := []byte(`{
		"id": "py_a1b2c3",
		"ts": "2026-08-29T10:00:00Z",
		"type": "flood",
		"severity": "high",
		"headline": "Flood reported",
		"location": {"lat": 45.32, "lng": -75.85, "city": "Ottawa", "country": "CA"},
		"injuredCount": 2,
		"lanesBlocked": 1,
		"roadClosed": false,
		"displacedPeople": 80
	}`)

	incident, err := DecodeIncident(payload)
	require.NoError(t, err)

	assert.Equal(t, "py_a1b2c3", incident.ID)
	assert.Equal(t, models.KindFlood, incident.Kind())
	assert.Equal(t, models.SeverityHigh, incident.SeverityLevel())
	require.NotNil(t, incident.Location)
	assert.Equal(t, "Ottawa", incident.Location.City)
	require.NotNil(t, incident.InjuredCount)
	assert.Equal(t, 2, *incident.InjuredCount)
	require.NotNil(t, incident.DisplacedPeople)
	assert.Equal(t, 80, *incident.DisplacedPeople)
}

func TestDecodeIncident_MinimalPayload(t *testing.T) {
	// Пустой объект - валидный инцидент: все поля опциональны
	incident, err := DecodeIncident([]byte(`{}`))
	require.NoError(t, err)

	assert.Empty(t, incident.ID)
	assert.Equal(t, models.KindUnrecognized, incident.Kind())
	assert.Equal(t, models.SeverityUnrecognized, incident.SeverityLevel())
	assert.Nil(t, incident.InjuredCount)
	assert.Nil(t, incident.Location)
	assert.Equal(t, "Incident", incident.Title())
}

func TestDecodeIncident_UnknownFieldsIgnored(t *testing.T) {
	incident, err := DecodeIncident([]byte(`{"type": "fire", "someFutureField": 42}`))
	require.NoError(t, err)
	assert.Equal(t, models.KindFire, incident.Kind())
}

func TestDecodeIncident_MalformedPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
	}{
		{"not json", []byte("definitely not json")},
		{"truncated", []byte(`{"type": "fire"`)},
		{"wrong field type", []byte(`{"injuredCount": "many"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			incident, err := DecodeIncident(tt.payload)
			assert.Error(t, err)
			assert.Nil(t, incident)
		})
	}
}
