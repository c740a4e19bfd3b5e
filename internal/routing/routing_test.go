package routing

import (
	"testing"

	"github.com/shenikar/crisis_awareness_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func agencies(set AgencySet) []models.Agency { return set.List() }

func TestRouteAgencies_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		incident *models.Incident
		expected []models.Agency
	}{
		{
			name: "flood high with displaced people",
			incident: &models.Incident{
				Type:            "flood",
				Severity:        "high",
				DisplacedPeople: intPtr(80),
			},
			expected: []models.Agency{
				models.AgencyLaw, models.AgencyFire, models.AgencyUtilities, models.AgencyNGOs,
			},
		},
		{
			name:     "assault only",
			incident: &models.Incident{Type: "assault"},
			expected: []models.Agency{models.AgencyLaw},
		},
		{
			name: "accident with injuries and blocked lanes",
			incident: &models.Incident{
				Type:         "accident",
				InjuredCount: intPtr(2),
				LanesBlocked: intPtr(1),
			},
			expected: []models.Agency{
				models.AgencyLaw, models.AgencyEMS, models.AgencyHospitals, models.AgencyTransport,
			},
		},
		{
			name:     "unknown type without attributes routes nowhere",
			incident: &models.Incident{Type: "unknown_type"},
			expected: []models.Agency{},
		},
		{
			name: "explicit override bypasses fire type clause",
			incident: &models.Incident{
				Type:          "fire",
				AgencyTargets: []models.Agency{models.AgencyHospitals},
			},
			expected: []models.Agency{models.AgencyHospitals},
		},
		{
			name:     "fire with gas leak gets police perimeter",
			incident: &models.Incident{Type: "fire", GasLeak: true},
			expected: []models.Agency{models.AgencyLaw, models.AgencyFire, models.AgencyUtilities},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := agencies(RouteAgencies(tt.incident))
			assert.ElementsMatch(t, tt.expected, got)
		})
	}
}

func TestRouteAgencies_OverrideReturnsExactly(t *testing.T) {
	// Переопределение возвращается как есть независимо от остальных полей
	inc := &models.Incident{
		Type:          "flood",
		Severity:      "critical",
		InjuredCount:  intPtr(10),
		MassCasualty:  true,
		GasLeak:       true,
		AgencyTargets: []models.Agency{models.AgencyNGOs, models.AgencyTransport},
	}

	set := RouteAgencies(inc)
	assert.ElementsMatch(t,
		[]models.Agency{models.AgencyNGOs, models.AgencyTransport},
		agencies(set))
}

func TestRouteAgencies_OverrideFiltersUnknownAgencies(t *testing.T) {
	inc := &models.Incident{
		AgencyTargets: []models.Agency{models.AgencyEMS, models.Agency("militia")},
	}

	set := RouteAgencies(inc)
	assert.ElementsMatch(t, []models.Agency{models.AgencyEMS}, agencies(set))
}

func TestRouteAgencies_FireTypesAlwaysIncludeFire(t *testing.T) {
	for _, typ := range []string{"fire", "vehicle_fire", "smoke", "hazmat", "collapse", "rescue"} {
		set := RouteAgencies(&models.Incident{Type: typ})
		assert.True(t, set.Has(models.AgencyFire), "type %q must route fire & rescue", typ)
	}
}

func TestRouteAgencies_CrimeTypesAlwaysIncludeLaw(t *testing.T) {
	for _, typ := range []string{"assault", "robbery", "riot", "theft"} {
		set := RouteAgencies(&models.Incident{Type: typ})
		assert.True(t, set.Has(models.AgencyLaw), "type %q must route law enforcement", typ)
	}
}

func TestRouteAgencies_TypeMatchingIsCaseInsensitive(t *testing.T) {
	set := RouteAgencies(&models.Incident{Type: "FLOOD", Severity: "HIGH"})
	assert.True(t, set.Has(models.AgencyFire))
	assert.True(t, set.Has(models.AgencyUtilities))
	assert.True(t, set.Has(models.AgencyLaw))
	// flood с серьезностью не-low добавляет гуманитарные организации
	assert.True(t, set.Has(models.AgencyNGOs))
}

func TestRouteAgencies_InjuredAlwaysRoutesEMSAndHospitals(t *testing.T) {
	set := RouteAgencies(&models.Incident{InjuredCount: intPtr(1)})
	assert.True(t, set.Has(models.AgencyEMS))
	assert.True(t, set.Has(models.AgencyHospitals))
}

func TestRouteAgencies_PerimeterBackfillInvariant(t *testing.T) {
	// Для любого результата без переопределения: fire или utilities
	// в множестве влечет присутствие law
	incidents := []*models.Incident{
		{Type: "smoke"},
		{Type: "rescue"},
		{GasLeak: true},
		{PowerOutage: true},
		{WaterMainBreak: true, TransitDisruption: true},
		{Type: "wildfire", Severity: "critical"},
	}

	for _, inc := range incidents {
		set := RouteAgencies(inc)
		if set.Has(models.AgencyFire) || set.Has(models.AgencyUtilities) {
			assert.True(t, set.Has(models.AgencyLaw),
				"incident %+v must include law enforcement for perimeter", inc)
		}
	}
}

func TestRouteAgencies_EmptyIncidentIsSafe(t *testing.T) {
	set := RouteAgencies(&models.Incident{})
	assert.Empty(t, agencies(set))
}

func TestRouteAgencies_PureAndIdempotent(t *testing.T) {
	inc := &models.Incident{
		Type:         "accident",
		Severity:     "high",
		InjuredCount: intPtr(3),
		LanesBlocked: intPtr(2),
		RoadClosed:   true,
	}

	first := agencies(RouteAgencies(inc))
	second := agencies(RouteAgencies(inc))
	assert.Equal(t, first, second)

	// Неглубокая копия дает идентичное множество
	clone := *inc
	assert.Equal(t, first, agencies(RouteAgencies(&clone)))
}

func TestRouteTrace_DefaultPolicy(t *testing.T) {
	trace := RouteTrace(&models.Incident{Type: "unknown_type"})
	require.Len(t, trace, 1)
	assert.Equal(t, "Default routing policy applied.", trace[0])
}

func TestRouteTrace_ClauseOrder(t *testing.T) {
	inc := &models.Incident{
		Type:         "fire",
		GasLeak:      true,
		InjuredCount: intPtr(2),
	}

	trace := RouteTrace(inc)
	require.Equal(t, []string{
		"Type indicates Fire & Rescue as primary.",
		"Injuries present → EMS & Hospitals.",
		"Gas leak flag → Utilities & Fire.",
	}, trace)
}

func TestRouteTrace_PopulationImpact(t *testing.T) {
	trace := RouteTrace(&models.Incident{DisplacedPeople: intPtr(120)})
	assert.Contains(t, trace, "Population impact → Relief & NGOs.")
}
