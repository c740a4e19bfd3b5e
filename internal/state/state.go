// Package state хранит состояние дашборда: скользящий буфер инцидентов,
// активные фильтры и метки недавно поступивших событий. Переходы состояния
// выражены чистыми функциями вход-состояние / выход-состояние; Controller
// оборачивает их мьютексом и таймерами.
package state

import (
	"github.com/shenikar/crisis_awareness_system/internal/models"
	"github.com/shenikar/crisis_awareness_system/internal/routing"
)

// FilterAll - значение фильтра "показывать все"
const FilterAll = "all"

// recentCap - максимум одновременно подсвеченных инцидентов
const recentCap = 20

// Status - состояние потока данных для дашборда
type Status string

const (
	StatusIdle      Status = "idle"
	StatusStreaming Status = "streaming"
	StatusError     Status = "error"
)

// Snapshot - неизменяемый снимок состояния дашборда. Инциденты в буфере
// никогда не редактируются на месте: замещение - только заменой в буфере.
type Snapshot struct {
	Events         []*models.Incident // новые в начале
	SeverityFilter string             // FilterAll или одно из значений Severity
	AgencyFilter   string             // FilterAll или одна из служб
	SelectedID     string
	RecentIDs      []string
	Status         Status
}

// NewSnapshot возвращает начальное состояние
func NewSnapshot() Snapshot {
	return Snapshot{
		SeverityFilter: FilterAll,
		AgencyFilter:   FilterAll,
		Status:         StatusIdle,
	}
}

// applyIncident добавляет инцидент в начало буфера, вытесняя события
// сверх лимита, и помечает его как недавний
func applyIncident(s Snapshot, inc *models.Incident, maxEvents int) Snapshot {
	events := make([]*models.Incident, 0, len(s.Events)+1)
	events = append(events, inc)
	events = append(events, s.Events...)
	if len(events) > maxEvents {
		events = events[:maxEvents]
	}
	s.Events = events

	if inc.ID != "" {
		recent := make([]string, 0, len(s.RecentIDs)+1)
		recent = append(recent, inc.ID)
		recent = append(recent, s.RecentIDs...)
		if len(recent) > recentCap {
			recent = recent[:recentCap]
		}
		s.RecentIDs = recent
	}

	return s
}

// expireRecent снимает метку "недавний" с инцидента
func expireRecent(s Snapshot, id string) Snapshot {
	filtered := make([]string, 0, len(s.RecentIDs))
	for _, r := range s.RecentIDs {
		if r != id {
			filtered = append(filtered, r)
		}
	}
	s.RecentIDs = filtered
	return s
}

// visibleIn сообщает, проходит ли инцидент текущие фильтры: серьезность
// должна совпадать (или фильтр = all), и выбранная служба должна входить
// в результат маршрутизации (или фильтр = all)
func visibleIn(s Snapshot, inc *models.Incident) bool {
	if s.SeverityFilter != FilterAll && string(inc.SeverityLevel()) != s.SeverityFilter {
		return false
	}
	if s.AgencyFilter != FilterAll && !routing.RouteAgencies(inc).Has(models.Agency(s.AgencyFilter)) {
		return false
	}
	return true
}

// visible возвращает инциденты, проходящие текущие фильтры, с сохранением порядка
func visible(s Snapshot) []*models.Incident {
	out := make([]*models.Incident, 0, len(s.Events))
	for _, inc := range s.Events {
		if visibleIn(s, inc) {
			out = append(out, inc)
		}
	}
	return out
}
