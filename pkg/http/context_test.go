package http_test

import (
	"context"
	"testing"

	"github.com/marble-stack/financial-planning/pkg/http"
)

func TestWithAppID(t *testing.T) {
	ctx := http.WithAppID(context.Background(), 12)

	id, ok := http.GetAppIDFromContext(ctx)
	if !ok {
		t.Fatal("no app ID in context")
	}

	if id != 12 {
		t.Fatalf("expected 12 got %d", id)
	}
}

func TestGetAppIDFromContext_Empty(t *testing.T) {
	_, ok := http.GetAppIDFromContext(context.Background())
	if ok {
		t.Fatal("expected no app ID")
	}
}
