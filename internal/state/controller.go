package state

import (
	"sync"
	"time"

	"github.com/shenikar/crisis_awareness_system/internal/models"
)

// Controller владеет снимком состояния и применяет переходы под мьютексом.
// Буфер мутируется только в ответ на входящие события и явные действия
// пользователя; движок маршрутизации состоянием не владеет.
type Controller struct {
	mu           sync.Mutex
	snap         Snapshot
	maxEvents    int
	recentWindow time.Duration
}

// NewController создает контроллер с лимитом буфера и окном подсветки
func NewController(maxEvents int, recentWindow time.Duration) *Controller {
	return &Controller{
		snap:         NewSnapshot(),
		maxEvents:    maxEvents,
		recentWindow: recentWindow,
	}
}

// Apply добавляет входящий инцидент в буфер и планирует снятие метки
// "недавний" по истечении окна подсветки
func (c *Controller) Apply(inc *models.Incident) {
	c.mu.Lock()
	c.snap = applyIncident(c.snap, inc, c.maxEvents)
	c.mu.Unlock()

	if inc.ID != "" && c.recentWindow > 0 {
		id := inc.ID
		time.AfterFunc(c.recentWindow, func() {
			c.mu.Lock()
			c.snap = expireRecent(c.snap, id)
			c.mu.Unlock()
		})
	}
}

// SetSeverityFilter устанавливает фильтр серьезности (FilterAll или уровень)
func (c *Controller) SetSeverityFilter(filter string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap.SeverityFilter = filter
}

// SetAgencyFilter устанавливает фильтр службы (FilterAll или служба)
func (c *Controller) SetAgencyFilter(filter string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap.AgencyFilter = filter
}

// Select отмечает инцидент выбранным; пустая строка снимает выбор
func (c *Controller) Select(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap.SelectedID = id
}

// SetStatus переводит состояние потока данных
func (c *Controller) SetStatus(status Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap.Status = status
}

// Reset очищает буфер, метки и выбор, сохраняя фильтры
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap.Events = nil
	c.snap.RecentIDs = nil
	c.snap.SelectedID = ""
}

// Snapshot возвращает копию текущего состояния
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := c.snap
	snap.Events = append([]*models.Incident(nil), c.snap.Events...)
	snap.RecentIDs = append([]string(nil), c.snap.RecentIDs...)
	return snap
}

// Visible возвращает инциденты, проходящие текущие фильтры, новые в начале
func (c *Controller) Visible() []*models.Incident {
	c.mu.Lock()
	defer c.mu.Unlock()
	return visible(c.snap)
}

// All возвращает весь буфер без учета фильтров
func (c *Controller) All() []*models.Incident {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*models.Incident(nil), c.snap.Events...)
}

// Replace замещает инцидент с тем же идентификатором новой версией.
// Инциденты в буфере не редактируются на месте - только замена целиком.
func (c *Controller) Replace(inc *models.Incident) bool {
	if inc.ID == "" {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.snap.Events {
		if existing.ID == inc.ID {
			events := append([]*models.Incident(nil), c.snap.Events...)
			events[i] = inc
			c.snap.Events = events
			return true
		}
	}
	return false
}

// Find ищет инцидент в буфере по идентификатору
func (c *Controller) Find(id string) (*models.Incident, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, inc := range c.snap.Events {
		if inc.ID == id {
			return inc, true
		}
	}
	return nil, false
}
