package backends_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/marble-stack/financial-planning/pkg/tracking"
	"github.com/marble-stack/financial-planning/pkg/tracking/backends"
)

func event(id string) *tracking.Event {
	return &tracking.Event{
		ID:         id,
		Client:     "client-1",
		Name:       "budget_created",
		Properties: map[string]interface{}{"rows": "1-100"},
		Timestamp:  time.Now(),
	}
}

func TestEventLogBackend_Store(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	backend := backends.NewEventLogBackend(db)

	mock.ExpectPrepare("^INSERT (.+)").
		ExpectExec().
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = backend.Store(event("a"))
	if err != nil {
		t.Fatal(err)
	}
}

func TestEventLogBackend_StoreBatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	backend := backends.NewEventLogBackend(db)

	mock.ExpectBegin()
	prepare := mock.ExpectPrepare("^INSERT (.+)")
	prepare.ExpectExec().WillReturnResult(sqlmock.NewResult(1, 1))
	prepare.ExpectExec().WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err = backend.StoreBatch([]*tracking.Event{event("a"), event("b")})
	if err != nil {
		t.Fatal(err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
