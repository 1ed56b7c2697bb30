package trackers

import (
	"time"

	"github.com/segmentio/ksuid"

	"github.com/marble-stack/financial-planning/pkg/pubsub"
	"github.com/marble-stack/financial-planning/pkg/tracking"
)

const (
	AccountCreated  = "account_created"
	CSVUploaded     = "csv_uploaded"
	BudgetCreated   = "budget_created"
	ReportGenerated = "report_generated"
	GoalCreated     = "goal_created"
	PlanShared      = "plan_shared"
	Heartbeat       = "heartbeat"
	ClientDeleted   = "client_deleted"
)

// Transform turns a suite event into a tracking event, bucketing precise
// figures and scrubbing properties on the way. Returns nil for events that
// cannot be tracked.
func Transform(event *pubsub.Event) *tracking.Event {
	client, err := event.GetString("client")
	if err != nil {
		return nil
	}

	switch event.Type {
	case pubsub.EventTypeAccountCreated:
		return newEvent(client, AccountCreated, map[string]interface{}{
			"plan": event.Params["plan"],
		})
	case pubsub.EventTypeCSVUploaded:
		rows, err := event.GetInt("rows")
		if err != nil {
			return nil
		}

		rate, err := event.GetInt("success_rate")
		if err != nil {
			return nil
		}

		return newEvent(client, CSVUploaded, map[string]interface{}{
			"rows":         tracking.BucketRows(rows),
			"success_rate": tracking.BucketRate(rate),
		})
	case pubsub.EventTypeBudgetCreated:
		rows, err := event.GetInt("rows")
		if err != nil {
			return nil
		}

		categories, err := event.GetInt("categories")
		if err != nil {
			return nil
		}

		return newEvent(client, BudgetCreated, map[string]interface{}{
			"rows":       tracking.BucketRows(rows),
			"categories": categories,
		})
	case pubsub.EventTypeReportGenerated:
		return newEvent(client, ReportGenerated, map[string]interface{}{
			"kind": event.Params["kind"],
		})
	case pubsub.EventTypeGoalCreated:
		return newEvent(client, GoalCreated, map[string]interface{}{
			"kind": event.Params["kind"],
		})
	case pubsub.EventTypePlanShared:
		return newEvent(client, PlanShared, map[string]interface{}{
			"medium": event.Params["medium"],
		})
	case pubsub.EventTypeHeartbeat:
		return newEvent(client, Heartbeat, map[string]interface{}{})
	case pubsub.EventTypeClientDeleted:
		return newEvent(client, ClientDeleted, map[string]interface{}{})
	}

	return nil
}

func newEvent(client, name string, properties map[string]interface{}) *tracking.Event {
	return &tracking.Event{
		ID:         ksuid.New().String(),
		Client:     client,
		Name:       name,
		Properties: tracking.Scrub(properties),
		Timestamp:  time.Now(),
	}
}
