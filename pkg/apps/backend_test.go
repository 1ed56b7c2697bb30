package apps_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/marble-stack/financial-planning/pkg/apps"
)

func TestBackend_CreateApp(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	backend := apps.NewBackend(db)

	mock.ExpectPrepare("^INSERT (.+)").
		ExpectQuery().
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(1))

	app, err := backend.CreateApp("web")
	if err != nil {
		t.Fatal(err)
	}

	if app.ID != 1 {
		t.Fatalf("expected 1 got %d", app.ID)
	}

	if app.Key == "" {
		t.Fatal("expected a write key")
	}
}

func TestBackend_GetAppForKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	backend := apps.NewBackend(db)

	key := "26700e33-b116-46a5-9686-6d83eb172324"

	mock.ExpectPrepare("^SELECT (.+)").
		ExpectQuery().
		WithArgs(key).
		WillReturnRows(mock.NewRows([]string{"id", "name", "write_key"}).AddRow(1, "web", key))

	app, err := backend.GetAppForKey(key)
	if err != nil {
		t.Fatal(err)
	}

	if app.Name != "web" {
		t.Fatalf("expected web got %s", app.Name)
	}
}
