package models

import "strings"

// Severity - нормализованный уровень серьезности инцидента
type Severity string

const (
	SeverityLow          Severity = "low"
	SeverityMed          Severity = "med"
	SeverityHigh         Severity = "high"
	SeverityCritical     Severity = "critical"
	SeverityUnrecognized Severity = "unrecognized"
)

// Severities - известные уровни в порядке возрастания
var Severities = []Severity{SeverityLow, SeverityMed, SeverityHigh, SeverityCritical}

// ParseSeverity нормализует произвольную строку серьезности.
// Неизвестные значения не являются ошибкой и сводятся к SeverityUnrecognized.
func ParseSeverity(raw string) Severity {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low":
		return SeverityLow
	case "med":
		return SeverityMed
	case "high":
		return SeverityHigh
	case "critical":
		return SeverityCritical
	default:
		return SeverityUnrecognized
	}
}

// IncidentKind - известная категория инцидента, разобранная один раз при приеме
type IncidentKind string

const (
	KindAssault      IncidentKind = "assault"
	KindRobbery      IncidentKind = "robbery"
	KindRiot         IncidentKind = "riot"
	KindTheft        IncidentKind = "theft"
	KindFire         IncidentKind = "fire"
	KindVehicleFire  IncidentKind = "vehicle_fire"
	KindSmoke        IncidentKind = "smoke"
	KindHazmat       IncidentKind = "hazmat"
	KindCollapse     IncidentKind = "collapse"
	KindRescue       IncidentKind = "rescue"
	KindAccident     IncidentKind = "accident"
	KindCrash        IncidentKind = "crash"
	KindFlood        IncidentKind = "flood"
	KindEarthquake   IncidentKind = "earthquake"
	KindWildfire     IncidentKind = "wildfire"
	KindStorm        IncidentKind = "storm"
	KindUnrecognized IncidentKind = "unrecognized"
)

var knownKinds = map[string]IncidentKind{
	"assault":      KindAssault,
	"robbery":      KindRobbery,
	"riot":         KindRiot,
	"theft":        KindTheft,
	"fire":         KindFire,
	"vehicle_fire": KindVehicleFire,
	"smoke":        KindSmoke,
	"hazmat":       KindHazmat,
	"collapse":     KindCollapse,
	"rescue":       KindRescue,
	"accident":     KindAccident,
	"crash":        KindCrash,
	"flood":        KindFlood,
	"earthquake":   KindEarthquake,
	"wildfire":     KindWildfire,
	"storm":        KindStorm,
}

// ParseIncidentKind сводит свободный текст категории к известному варианту
func ParseIncidentKind(raw string) IncidentKind {
	if kind, ok := knownKinds[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return kind
	}
	return KindUnrecognized
}

// Location - координаты инцидента с необязательными городом и страной
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	City    string  `json:"city,omitempty"`
	Country string  `json:"country,omitempty"`
}

// Incident - единица данных, проходящая через систему.
// Любое поле может отсутствовать во входящем сообщении;
// отсутствие никогда не является ошибкой.
type Incident struct {
	ID       string `json:"id,omitempty"`
	TS       string `json:"ts,omitempty"` // ISO-8601, пустая строка = время неизвестно
	Type     string `json:"type,omitempty"`
	Severity string `json:"severity,omitempty"`
	Headline string `json:"headline,omitempty"`
	Summary  string `json:"summary,omitempty"`

	Location *Location `json:"location,omitempty"`

	// Ситуационные атрибуты, каждый независимо опционален
	InjuredCount       *int     `json:"injuredCount,omitempty"`
	LanesBlocked       *int     `json:"lanesBlocked,omitempty"`
	RoadClosed         bool     `json:"roadClosed,omitempty"`
	GasLeak            bool     `json:"gasLeak,omitempty"`
	PowerOutage        bool     `json:"powerOutage,omitempty"`
	WaterMainBreak     bool     `json:"waterMainBreak,omitempty"`
	DownedLines        bool     `json:"downedLines,omitempty"`
	TransitDisruption  bool     `json:"transitDisruption,omitempty"`
	MedicalNeed        bool     `json:"medicalNeed,omitempty"`
	EMSInbound         bool     `json:"emsInbound,omitempty"`
	MassCasualty       bool     `json:"massCasualty,omitempty"`
	ExpectedSurge      bool     `json:"expectedSurge,omitempty"`
	MultiJurisdiction  bool     `json:"multiJurisdiction,omitempty"`
	ShelterNeeded      bool     `json:"shelterNeeded,omitempty"`
	DisplacedPeople    *int     `json:"displacedPeople,omitempty"`
	AreaKm2            *float64 `json:"areaKm2,omitempty"`
	AffectedPopulation *int     `json:"affectedPopulation,omitempty"`

	// Явное переопределение маршрутизации: при наличии правила не вычисляются
	AgencyTargets []Agency `json:"agencyTargets,omitempty"`

	// Жизненный цикл - справочное состояние, выставляется командами
	Acknowledged bool   `json:"acknowledged,omitempty"`
	AssignedTo   string `json:"assignedTo,omitempty"`
	Escalated    bool   `json:"escalated,omitempty"`
	Resolved     bool   `json:"resolved,omitempty"`
}

// Kind возвращает нормализованную категорию инцидента
func (i *Incident) Kind() IncidentKind {
	return ParseIncidentKind(i.Type)
}

// SeverityLevel возвращает нормализованный уровень серьезности
func (i *Incident) SeverityLevel() Severity {
	return ParseSeverity(i.Severity)
}

// Title возвращает отображаемый заголовок: headline, затем summary, затем заглушка
func (i *Incident) Title() string {
	if i.Headline != "" {
		return i.Headline
	}
	if i.Summary != "" {
		return i.Summary
	}
	return "Incident"
}
