package models

// CommandType - тип исходящей команды оператора
type CommandType string

const (
	CommandAck      CommandType = "ack"
	CommandAssign   CommandType = "assign"
	CommandEscalate CommandType = "escalate"
	CommandResolve  CommandType = "resolve"
)

// Valid сообщает, является ли тип команды известным
func (t CommandType) Valid() bool {
	switch t {
	case CommandAck, CommandAssign, CommandEscalate, CommandResolve:
		return true
	}
	return false
}

// Command - исходящее действие оператора по инциденту.
// Публикуется в брокер по принципу fire-and-forget: система не отслеживает
// подтверждение доставки и не повторяет отправку.
type Command struct {
	Type       CommandType `json:"type"`
	IncidentID string      `json:"incidentId"`
	User       string      `json:"user,omitempty"`
	Note       string      `json:"note,omitempty"`
	At         string      `json:"at"` // ISO-8601
}
