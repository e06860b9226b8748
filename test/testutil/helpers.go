// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/travel-booking/flight-booking/internal/infrastructure/webhook"
)

// PaymentSessionPlaceholder is replaced by LoadWebhook with the payment session id.
const PaymentSessionPlaceholder = "{{PAYMENT_SESSION_ID}}"

// LoadTestJSON loads a JSON file from the testdata directory.
// The filename should be relative to the testdata directory.
func LoadTestJSON(t *testing.T, filename string) []byte {
	t.Helper()

	// Get the path to testdata relative to this file
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	testDataPath := filepath.Join(projectRoot, "test", "testdata", filename)

	data, err := os.ReadFile(testDataPath)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// LoadWebhook loads a webhook payload from testdata bound to paymentSessionID.
func LoadWebhook(t *testing.T, filename, paymentSessionID string) []byte {
	t.Helper()
	raw := LoadTestJSON(t, filename)
	return []byte(strings.ReplaceAll(string(raw), PaymentSessionPlaceholder, paymentSessionID))
}

// SignWebhook returns the signature header value for payload signed at ts.
func SignWebhook(secret string, payload []byte, ts time.Time) string {
	return webhook.Sign(secret, payload, ts)
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
