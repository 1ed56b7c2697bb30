// Package analytics is the reporting side of the collector.
package analytics

import (
	"database/sql"
	"errors"

	"github.com/marble-stack/financial-planning/pkg/tracking/trackers"
)

// Funnel is an ordered sequence of event names, a dashboard reports the
// completion rate between steps.
type Funnel struct {
	Name  string   `json:"name"`
	Steps []string `json:"steps"`
}

var funnels = map[string]Funnel{
	"onboarding": {
		Name: "onboarding",
		Steps: []string{
			trackers.AccountCreated,
			trackers.CSVUploaded,
			trackers.BudgetCreated,
			trackers.ReportGenerated,
		},
	},
	"planning": {
		Name: "planning",
		Steps: []string{
			trackers.BudgetCreated,
			trackers.GoalCreated,
			trackers.PlanShared,
		},
	},
}

var ErrUnknownFunnel = errors.New("unknown funnel")

// StepCount is how many distinct clients reached a funnel step.
type StepCount struct {
	Step    string  `json:"step"`
	Clients int     `json:"clients"`
	Rate    float64 `json:"rate"`
}

// EventCount is how often an event was tracked in the window.
type EventCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Backend struct {
	db *sql.DB
}

func NewBackend(db *sql.DB) *Backend {
	return &Backend{db: db}
}

// FunnelCounts returns distinct client counts per step of a named funnel
// over the last days, with the completion rate relative to the first step.
func (b *Backend) FunnelCounts(name string, days int) ([]StepCount, error) {
	funnel, ok := funnels[name]
	if !ok {
		return nil, ErrUnknownFunnel
	}

	stmt, err := b.db.Prepare("SELECT COUNT(DISTINCT client) FROM events WHERE name = $1 AND received_at > NOW() - ($2 * INTERVAL '1 day');")
	if err != nil {
		return nil, err
	}

	result := make([]StepCount, 0)

	for _, step := range funnel.Steps {
		var clients int

		err := stmt.QueryRow(step, days).Scan(&clients)
		if err != nil {
			return nil, err
		}

		count := StepCount{Step: step, Clients: clients}

		if len(result) == 0 {
			if clients > 0 {
				count.Rate = 1
			}
		} else if first := result[0].Clients; first > 0 {
			count.Rate = float64(clients) / float64(first)
		}

		result = append(result, count)
	}

	return result, nil
}

// EventCounts returns per event name totals over the last days.
func (b *Backend) EventCounts(days int) ([]EventCount, error) {
	stmt, err := b.db.Prepare("SELECT name, COUNT(*) FROM events WHERE received_at > NOW() - ($1 * INTERVAL '1 day') GROUP BY name ORDER BY name;")
	if err != nil {
		return nil, err
	}

	rows, err := stmt.Query(days)
	if err != nil {
		return nil, err
	}

	result := make([]EventCount, 0)

	for rows.Next() {
		count := EventCount{}

		err := rows.Scan(&count.Name, &count.Count)
		if err != nil {
			return nil, err
		}

		result = append(result, count)
	}

	return result, nil
}
