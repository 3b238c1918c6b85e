package cmd

import (
	"testing"
	"time"
)

func TestResolveClock(t *testing.T) {
	if got := resolveClock("09:30"); got != "09:30" {
		t.Errorf("resolveClock(09:30) = %q, want passthrough", got)
	}
	if got := resolveClock(""); got != "" {
		t.Errorf("resolveClock(\"\") = %q, want \"\"", got)
	}

	got := resolveClock("now")
	if _, err := time.Parse("15:04", got); err != nil {
		t.Errorf("resolveClock(now) = %q, not a valid HH:MM time", got)
	}
}
