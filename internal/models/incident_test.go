package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeverity(t *testing.T) {
	assert.Equal(t, SeverityLow, ParseSeverity("low"))
	assert.Equal(t, SeverityCritical, ParseSeverity("CRITICAL"))
	assert.Equal(t, SeverityMed, ParseSeverity("  med "))
	// Произвольная строка не ошибка, а "unrecognized"
	assert.Equal(t, SeverityUnrecognized, ParseSeverity("catastrophic"))
	assert.Equal(t, SeverityUnrecognized, ParseSeverity(""))
}

func TestParseIncidentKind(t *testing.T) {
	assert.Equal(t, KindFlood, ParseIncidentKind("flood"))
	assert.Equal(t, KindVehicleFire, ParseIncidentKind("VEHICLE_FIRE"))
	assert.Equal(t, KindUnrecognized, ParseIncidentKind("meteor"))
	assert.Equal(t, KindUnrecognized, ParseIncidentKind(""))
}

func TestIncidentTitle_FallbackPrecedence(t *testing.T) {
	assert.Equal(t, "Flood reported", (&Incident{Headline: "Flood reported", Summary: "details"}).Title())
	assert.Equal(t, "details", (&Incident{Summary: "details"}).Title())
	assert.Equal(t, "Incident", (&Incident{}).Title())
}

func TestAgencyValidAndLabel(t *testing.T) {
	for _, agency := range AllAgencies {
		assert.True(t, agency.Valid())
		assert.NotEmpty(t, agency.Label())
	}
	assert.False(t, Agency("militia").Valid())
	assert.Equal(t, "Police", AgencyLaw.Label())
}

func TestCommandTypeValid(t *testing.T) {
	assert.True(t, CommandAck.Valid())
	assert.True(t, CommandResolve.Valid())
	assert.False(t, CommandType("detonate").Valid())
}
