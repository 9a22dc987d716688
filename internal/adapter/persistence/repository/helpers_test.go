package repository

import (
	"testing"
	"time"
)

func TestGetenvDefault(t *testing.T) {
	t.Setenv("HELPERS_TEST_KEY", "custom")
	if got := getenvDefault("HELPERS_TEST_KEY", "fallback"); got != "custom" {
		t.Fatalf("expected custom, got %q", got)
	}
	if got := getenvDefault("HELPERS_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestStampCreated(t *testing.T) {
	before := time.Now().UTC()
	got := stampCreated(time.Time{})
	if got.Before(before) || got.Location() != time.UTC {
		t.Fatalf("expected fresh UTC stamp, got %v", got)
	}

	loc := time.FixedZone("BRT", -3*60*60)
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, loc)
	got = stampCreated(at)
	if !got.Equal(at) || got.Location() != time.UTC {
		t.Fatalf("expected same instant in UTC, got %v", got)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 30, 45, 123456789, time.UTC)
	if got := parseTime(formatTime(at)); !got.Equal(at) {
		t.Fatalf("round trip changed the instant: %v != %v", got, at)
	}

	if got := formatTimePtr(nil); got != "" {
		t.Fatalf("expected empty for nil, got %q", got)
	}
	if got := parseTimePtr(""); got != nil {
		t.Fatalf("expected nil for empty, got %v", got)
	}
	s := formatTimePtr(&at)
	got := parseTimePtr(s)
	if got == nil || !got.Equal(at) {
		t.Fatalf("pointer round trip changed the instant: %v != %v", got, at)
	}
}

func TestMachineLabelKey(t *testing.T) {
	if got := machineLabelKey("m-1", "lbl-1"); got != "m-1#lbl-1" {
		t.Fatalf("unexpected key %q", got)
	}
}
