package utils

import (
	"testing"
	"time"
)

func TestZoneName(t *testing.T) {
	tests := []struct {
		offset int
		want   string
	}{
		{0, "UTC+00:00"},
		{3600, "UTC+01:00"},
		{19800, "UTC+05:30"},
		{-18000, "UTC-05:00"},
		{-9000, "UTC-02:30"},
	}

	for _, tt := range tests {
		if got := ZoneName(tt.offset); got != tt.want {
			t.Errorf("ZoneName(%d) = %q, want %q", tt.offset, got, tt.want)
		}
	}
}

func TestFromUnix(t *testing.T) {
	got := FromUnix(1485789600, nil)
	if got.Location() != time.UTC {
		t.Errorf("Expected UTC for nil zone, got %v", got.Location())
	}
	if !got.Equal(time.Date(2017, 1, 30, 15, 20, 0, 0, time.UTC)) {
		t.Errorf("Unexpected time %v", got)
	}

	zoned := FromUnix(1485789600, FixedZone(3600))
	if zoned.Hour() != 16 {
		t.Errorf("Expected hour 16 in UTC+01:00, got %d", zoned.Hour())
	}
	if !zoned.Equal(got) {
		t.Error("Zone must not change the instant")
	}
}

func TestGetUnixString(t *testing.T) {
	ts := time.Date(2017, 1, 30, 15, 20, 0, 0, time.UTC)
	if got := GetUnixString(ts); got != "1485789600" {
		t.Errorf("Expected 1485789600, got %q", got)
	}
}
