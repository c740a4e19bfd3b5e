package state

import (
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/crisis_awareness_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(maxEvents int) *Controller {
	// Нулевое окно подсветки - метки в тестах снимаются явно
	return NewController(maxEvents, 0)
}

func TestApply_NewestFirst(t *testing.T) {
	c := newTestController(10)

	c.Apply(&models.Incident{ID: "a", Type: "fire"})
	c.Apply(&models.Incident{ID: "b", Type: "flood"})

	events := c.All()
	require.Len(t, events, 2)
	assert.Equal(t, "b", events[0].ID)
	assert.Equal(t, "a", events[1].ID)
}

func TestApply_EvictsBeyondCap(t *testing.T) {
	c := newTestController(3)

	for i := 0; i < 5; i++ {
		c.Apply(&models.Incident{ID: fmt.Sprintf("inc_%d", i)})
	}

	events := c.All()
	require.Len(t, events, 3)
	// Старейшие вытеснены, новейший в начале
	assert.Equal(t, "inc_4", events[0].ID)
	assert.Equal(t, "inc_2", events[2].ID)
}

func TestApply_MarksRecent(t *testing.T) {
	c := newTestController(10)

	c.Apply(&models.Incident{ID: "a"})
	c.Apply(&models.Incident{ID: "b"})

	snap := c.Snapshot()
	assert.Equal(t, []string{"b", "a"}, snap.RecentIDs)
}

func TestApply_IncidentWithoutIDNotMarkedRecent(t *testing.T) {
	c := newTestController(10)

	c.Apply(&models.Incident{Type: "fire"})

	snap := c.Snapshot()
	assert.Len(t, snap.Events, 1)
	assert.Empty(t, snap.RecentIDs)
}

func TestApply_RecentMarkExpires(t *testing.T) {
	c := NewController(10, 10*time.Millisecond)

	c.Apply(&models.Incident{ID: "a"})
	require.Equal(t, []string{"a"}, c.Snapshot().RecentIDs)

	assert.Eventually(t, func() bool {
		return len(c.Snapshot().RecentIDs) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestApply_RecentListCapped(t *testing.T) {
	c := newTestController(100)

	for i := 0; i < 30; i++ {
		c.Apply(&models.Incident{ID: fmt.Sprintf("inc_%d", i)})
	}

	snap := c.Snapshot()
	assert.Len(t, snap.RecentIDs, recentCap)
	assert.Equal(t, "inc_29", snap.RecentIDs[0])
}

func TestVisible_SeverityFilter(t *testing.T) {
	c := newTestController(10)
	c.Apply(&models.Incident{ID: "a", Severity: "low"})
	c.Apply(&models.Incident{ID: "b", Severity: "HIGH"})
	c.Apply(&models.Incident{ID: "c", Severity: "high"})

	c.SetSeverityFilter("high")

	visible := c.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, "c", visible[0].ID)
	assert.Equal(t, "b", visible[1].ID)
}

func TestVisible_AgencyFilterUsesRouting(t *testing.T) {
	c := newTestController(10)
	c.Apply(&models.Incident{ID: "crime", Type: "assault"})
	c.Apply(&models.Incident{ID: "blaze", Type: "fire"})

	c.SetAgencyFilter("fire")
	visible := c.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "blaze", visible[0].ID)

	// Пожарный инцидент маршрутизируется и в полицию (оцепление)
	c.SetAgencyFilter("law")
	assert.Len(t, c.Visible(), 2)
}

func TestVisible_CombinedFilters(t *testing.T) {
	c := newTestController(10)
	c.Apply(&models.Incident{ID: "a", Type: "fire", Severity: "low"})
	c.Apply(&models.Incident{ID: "b", Type: "fire", Severity: "critical"})
	c.Apply(&models.Incident{ID: "c", Type: "assault", Severity: "critical"})

	c.SetSeverityFilter("critical")
	c.SetAgencyFilter("fire")

	visible := c.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "b", visible[0].ID)
}

func TestReset_KeepsFilters(t *testing.T) {
	c := newTestController(10)
	c.Apply(&models.Incident{ID: "a", Type: "fire"})
	c.SetSeverityFilter("high")
	c.SetAgencyFilter("fire")
	c.Select("a")

	c.Reset()

	snap := c.Snapshot()
	assert.Empty(t, snap.Events)
	assert.Empty(t, snap.RecentIDs)
	assert.Empty(t, snap.SelectedID)
	assert.Equal(t, "high", snap.SeverityFilter)
	assert.Equal(t, "fire", snap.AgencyFilter)
}

func TestFind(t *testing.T) {
	c := newTestController(10)
	c.Apply(&models.Incident{ID: "a", Type: "fire"})

	inc, ok := c.Find("a")
	require.True(t, ok)
	assert.Equal(t, "a", inc.ID)

	_, ok = c.Find("missing")
	assert.False(t, ok)
}
