package repository

import (
	"os"
	"time"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// stampCreated applies the create-side audit timestamp. Every repository
// Create calls it explicitly; entities arriving with a zero CreatedAt get
// stamped at write time by the persistence layer.
func stampCreated(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

// machineLabelKey builds the composite GSI key used by tables partitioned on
// a (machine, label) pair.
func machineLabelKey(machineID, labelID string) string {
	return machineID + "#" + labelID
}
