package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/marble-stack/financial-planning/pkg/apps"
	httputil "github.com/marble-stack/financial-planning/pkg/http"
	"github.com/marble-stack/financial-planning/pkg/http/middlewares"
)

func TestWriteKeyMiddleware(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	mw := middlewares.NewWriteKeyMiddleware(apps.NewBackend(db))

	key := "12345"

	mock.ExpectPrepare("^SELECT (.+)").
		ExpectQuery().
		WithArgs(key).
		WillReturnRows(mock.NewRows([]string{"id", "name", "write_key"}).AddRow(1, "web", key))

	handler := mw.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := httputil.GetAppIDFromContext(r.Context())
		if !ok {
			t.Fatal("no app ID in context")
		}

		if id != 1 {
			t.Fatalf("expected 1 got %d", id)
		}
	}))

	req, err := http.NewRequest("POST", "/v1/events", nil)
	if err != nil {
		t.Fatal(err)
	}

	req.Header.Set("Authorization", key)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}
}

func TestWriteKeyMiddleware_MissingKey(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	mw := middlewares.NewWriteKeyMiddleware(apps.NewBackend(db))

	handler := mw.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req, err := http.NewRequest("POST", "/v1/events", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusUnauthorized {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusUnauthorized)
	}
}
