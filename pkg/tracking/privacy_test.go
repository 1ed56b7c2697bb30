package tracking_test

import (
	"testing"

	"github.com/marble-stack/financial-planning/pkg/tracking"
)

func TestIsSensitiveKey(t *testing.T) {
	var tests = []struct {
		key      string
		expected bool
	}{
		{"amount", true},
		{"total_amount", true},
		{"AccountNumber", true},
		{"balance", true},
		{"email", true},
		{"rows", false},
		{"success_rate", false},
		{"kind", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result := tracking.IsSensitiveKey(tt.key)
			if result != tt.expected {
				t.Fatalf("expected %v got %v", tt.expected, result)
			}
		})
	}
}

func TestIsSensitiveValue(t *testing.T) {
	var tests = []struct {
		name     string
		value    interface{}
		expected bool
	}{
		{"number", 1234, false},
		{"label", "70-89%", false},
		{"freetext", "monthly groceries at the corner store on 5th", true},
		{"long", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tracking.IsSensitiveValue(tt.value)
			if result != tt.expected {
				t.Fatalf("expected %v got %v", tt.expected, result)
			}
		})
	}
}

func TestScrub(t *testing.T) {
	properties := map[string]interface{}{
		"rows":   "101-1000",
		"amount": 1234.56,
		"memo":   "rent for march",
		"kind":   "monthly",
	}

	scrubbed := tracking.Scrub(properties)

	if len(scrubbed) != 2 {
		t.Fatalf("expected 2 properties got %d", len(scrubbed))
	}

	if _, ok := scrubbed["amount"]; ok {
		t.Fatal("amount should have been dropped")
	}

	if _, ok := scrubbed["memo"]; ok {
		t.Fatal("memo should have been dropped")
	}
}
