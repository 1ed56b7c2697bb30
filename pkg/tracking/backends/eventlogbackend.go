package backends

import (
	"database/sql"
	"encoding/json"

	"github.com/marble-stack/financial-planning/pkg/tracking"
)

// EventLogBackend persists tracked events. Only scrubbed, bucketed events
// reach this table.
type EventLogBackend struct {
	db *sql.DB
}

func NewEventLogBackend(db *sql.DB) *EventLogBackend {
	return &EventLogBackend{db: db}
}

func (b *EventLogBackend) Store(event *tracking.Event) error {
	properties, err := json.Marshal(event.Properties)
	if err != nil {
		return err
	}

	stmt, err := b.db.Prepare("INSERT INTO events (id, client, name, properties, received_at) VALUES ($1, $2, $3, $4, $5);")
	if err != nil {
		return err
	}

	_, err = stmt.Exec(event.ID, event.Client, event.Name, properties, event.Timestamp)
	return err
}

// StoreBatch writes a batch in one transaction, either the whole batch lands
// or none of it does.
func (b *EventLogBackend) StoreBatch(events []*tracking.Event) error {
	tx, err := b.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO events (id, client, name, properties, received_at) VALUES ($1, $2, $3, $4, $5);")
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, event := range events {
		properties, err := json.Marshal(event.Properties)
		if err != nil {
			_ = tx.Rollback()
			return err
		}

		_, err = stmt.Exec(event.ID, event.Client, event.Name, properties, event.Timestamp)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
