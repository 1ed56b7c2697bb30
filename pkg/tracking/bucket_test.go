package tracking_test

import (
	"testing"

	"github.com/marble-stack/financial-planning/pkg/tracking"
)

func TestBucketRate(t *testing.T) {
	var tests = []struct {
		rate     int
		expected string
	}{
		{0, "0-49%"},
		{49, "0-49%"},
		{50, "50-69%"},
		{69, "50-69%"},
		{70, "70-89%"},
		{85, "70-89%"},
		{90, "90-100%"},
		{100, "90-100%"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tracking.BucketRate(tt.rate)
			if result != tt.expected {
				t.Fatalf("expected %s got %s", tt.expected, result)
			}
		})
	}
}

func TestBucketRows(t *testing.T) {
	var tests = []struct {
		rows     int
		expected string
	}{
		{1, "1-100"},
		{100, "1-100"},
		{101, "101-1000"},
		{1234, "1001-10000"},
		{50000, "10000+"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tracking.BucketRows(tt.rows)
			if result != tt.expected {
				t.Fatalf("expected %s got %s", tt.expected, result)
			}
		})
	}
}
