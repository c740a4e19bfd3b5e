package v1

import "github.com/shenikar/crisis_awareness_system/internal/models"

// IncidentResponse DTO для элемента ленты инцидентов
// @Description DTO для элемента ленты инцидентов
type IncidentResponse struct {
	ID       string           `json:"id,omitempty"`
	TS       string           `json:"ts,omitempty"`
	Type     string           `json:"type,omitempty"`
	Severity string           `json:"severity"`
	Title    string           `json:"title"`
	Summary  string           `json:"summary,omitempty"`
	Location *models.Location `json:"location,omitempty"`
	Recent   bool             `json:"recent"`

	Acknowledged bool   `json:"acknowledged,omitempty"`
	AssignedTo   string `json:"assigned_to,omitempty"`
	Escalated    bool   `json:"escalated,omitempty"`
	Resolved     bool   `json:"resolved,omitempty"`
}

// IncidentDetailResponse DTO для панели деталей инцидента
// @Description DTO для панели деталей инцидента с маршрутизацией и трассой
type IncidentDetailResponse struct {
	Incident IncidentResponse `json:"incident"`
	Agencies []AgencyResponse `json:"agencies"`
	Trace    []string         `json:"trace"`
}

// AgencyResponse DTO для назначенной службы
// @Description DTO для назначенной службы
type AgencyResponse struct {
	Agency string `json:"agency"`
	Label  string `json:"label"`
}

// CommandRequest DTO для команды оператора по инциденту
// @Description DTO для команды оператора по инциденту
type CommandRequest struct {
	Type string `json:"type" validate:"required,oneof=ack assign escalate resolve"`
	User string `json:"user,omitempty" validate:"omitempty,max=64"`
	Note string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// FiltersRequest DTO для установки фильтров дашборда
// @Description DTO для установки фильтров дашборда
type FiltersRequest struct {
	Severity string `json:"severity" validate:"required,oneof=all low med high critical"`
	Agency   string `json:"agency" validate:"required,oneof=all law fire ems hospitals utilities transport ngos"`
}

// SelectionRequest DTO для выбора инцидента
// @Description DTO для выбора инцидента; пустой id снимает выбор
type SelectionRequest struct {
	ID string `json:"id"`
}

// AnalyticsResponse DTO для панели аналитики
// @Description DTO для панели аналитики
type AnalyticsResponse struct {
	Total      int            `json:"total"`
	BySeverity map[string]int `json:"by_severity"`
	ByType     map[string]int `json:"by_type"`
	ByAgency   map[string]int `json:"by_agency"`
	Located    int            `json:"located"`
}

// AgencyQueueResponse DTO для очереди одной службы
// @Description DTO для очереди одной службы
type AgencyQueueResponse struct {
	Agency    string             `json:"agency"`
	Label     string             `json:"label"`
	Incidents []IncidentResponse `json:"incidents"`
}

// MapPointResponse DTO для точки на карте
// @Description DTO для точки на карте
type MapPointResponse struct {
	Incident IncidentResponse `json:"incident"`
	Agencies []AgencyResponse `json:"agencies"`
}

// StatusResponse DTO для состояния потока данных
// @Description DTO для состояния потока данных
type StatusResponse struct {
	Status    string   `json:"status"`
	Buffered  int      `json:"buffered"`
	RecentIDs []string `json:"recent_ids"`
}
