// Package apps manages the suite applications allowed to report events.
package apps

import (
	"database/sql"

	"github.com/google/uuid"
)

// App is a suite application with a write key for the collector.
type App struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Key  string `json:"key"`
}

type Backend struct {
	db *sql.DB
}

func NewBackend(db *sql.DB) *Backend {
	return &Backend{db: db}
}

// CreateApp registers an app and mints its write key.
func (b *Backend) CreateApp(name string) (*App, error) {
	key := uuid.New().String()

	stmt, err := b.db.Prepare("INSERT INTO apps (name, write_key) VALUES ($1, $2) RETURNING id;")
	if err != nil {
		return nil, err
	}

	var id int
	err = stmt.QueryRow(name, key).Scan(&id)
	if err != nil {
		return nil, err
	}

	return &App{ID: id, Name: name, Key: key}, nil
}

// GetAppForKey returns the app a write key belongs to.
func (b *Backend) GetAppForKey(key string) (*App, error) {
	stmt, err := b.db.Prepare("SELECT id, name, write_key FROM apps WHERE write_key = $1;")
	if err != nil {
		return nil, err
	}

	app := &App{}
	err = stmt.QueryRow(key).Scan(&app.ID, &app.Name, &app.Key)
	if err != nil {
		return nil, err
	}

	return app, nil
}
