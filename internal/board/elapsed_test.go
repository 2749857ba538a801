package board

import (
	"testing"
	"time"
)

func TestElapsedInfoZero(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	got := ElapsedInfo(now, now)
	if got.Text != "0m 0s" {
		t.Errorf("Text = %q, want %q", got.Text, "0m 0s")
	}
	if got.OverSLA {
		t.Error("OverSLA = true for a brand-new order")
	}
}

func TestElapsedInfoSLABoundary(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	// One second short of the threshold.
	under := ElapsedInfo(created, created.Add(15*time.Minute-time.Second))
	if under.OverSLA {
		t.Error("OverSLA = true at 14m 59s")
	}

	// Exactly 15 minutes breaches.
	at := ElapsedInfo(created, created.Add(15*time.Minute))
	if !at.OverSLA {
		t.Error("OverSLA = false at exactly 15m")
	}
	if at.Text != "15m 0s" {
		t.Errorf("Text = %q, want %q", at.Text, "15m 0s")
	}
}

func TestElapsedInfoClockSkew(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	// Backend clock ahead of ours: floor at zero, never negative.
	got := ElapsedInfo(created, created.Add(-30*time.Second))
	if got.Minutes != 0 || got.Seconds != 0 {
		t.Errorf("ElapsedInfo with skew = %dm %ds, want 0m 0s", got.Minutes, got.Seconds)
	}
	if got.OverSLA {
		t.Error("OverSLA = true under clock skew")
	}
}

func TestElapsedInfoText(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	got := ElapsedInfo(created, created.Add(3*time.Minute+42*time.Second))
	if got.Text != "3m 42s" {
		t.Errorf("Text = %q, want %q", got.Text, "3m 42s")
	}
	if got.Minutes != 3 || got.Seconds != 42 {
		t.Errorf("got %dm %ds, want 3m 42s", got.Minutes, got.Seconds)
	}
}
