package pubsub

import (
	"errors"
)

type EventType int

const (
	EventTypeAccountCreated EventType = iota
	EventTypeCSVUploaded
	EventTypeBudgetCreated
	EventTypeReportGenerated
	EventTypeGoalCreated
	EventTypePlanShared
	EventTypeHeartbeat
	EventTypeClientDeleted
)

// ReportKind is the type of report the suite generated.
type ReportKind string

const (
	ReportMonthly ReportKind = "monthly"
	ReportAnnual  ReportKind = "annual"
	ReportCustom  ReportKind = "custom"
)

// Event is an occurrence inside the financial planning suite.
//
// Params only ever carry the opaque client ID and non-sensitive values,
// raw figures are reduced before an event is constructed.
type Event struct {
	Type   EventType              `json:"type"`
	Params map[string]interface{} `json:"params"`
}

func NewAccountCreatedEvent(client, plan string) Event {
	return Event{
		Type:   EventTypeAccountCreated,
		Params: map[string]interface{}{"client": client, "plan": plan},
	}
}

func NewCSVUploadedEvent(client string, rows, successRate int) Event {
	return Event{
		Type:   EventTypeCSVUploaded,
		Params: map[string]interface{}{"client": client, "rows": rows, "success_rate": successRate},
	}
}

func NewBudgetCreatedEvent(client string, rows, categories int) Event {
	return Event{
		Type:   EventTypeBudgetCreated,
		Params: map[string]interface{}{"client": client, "rows": rows, "categories": categories},
	}
}

func NewReportGeneratedEvent(client string, kind ReportKind) Event {
	return Event{
		Type:   EventTypeReportGenerated,
		Params: map[string]interface{}{"client": client, "kind": string(kind)},
	}
}

func NewGoalCreatedEvent(client, kind string) Event {
	return Event{
		Type:   EventTypeGoalCreated,
		Params: map[string]interface{}{"client": client, "kind": kind},
	}
}

func NewPlanSharedEvent(client, medium string) Event {
	return Event{
		Type:   EventTypePlanShared,
		Params: map[string]interface{}{"client": client, "medium": medium},
	}
}

func NewHeartbeatEvent(client string) Event {
	return Event{
		Type:   EventTypeHeartbeat,
		Params: map[string]interface{}{"client": client},
	}
}

func NewClientDeletedEvent(client string) Event {
	return Event{
		Type:   EventTypeClientDeleted,
		Params: map[string]interface{}{"client": client},
	}
}

// GetInt returns an integer parameter, json decoding turns numbers into floats.
func (e Event) GetInt(field string) (int, error) {
	switch val := e.Params[field].(type) {
	case int:
		return val, nil
	case float64:
		return int(val), nil
	default:
		return 0, errors.New("failed to recover int field: " + field)
	}
}

// GetString returns a string parameter.
func (e Event) GetString(field string) (string, error) {
	val, ok := e.Params[field].(string)
	if !ok {
		return "", errors.New("failed to recover string field: " + field)
	}

	return val, nil
}
