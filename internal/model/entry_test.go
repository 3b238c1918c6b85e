package model_test

import (
	"testing"

	"github.com/mhartig/tsheet/internal/model"
)

func TestCanonicalDay(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"Monday", "Monday", true},
		{"monday", "Monday", true},
		{"MONDAY", "Monday", true},
		{"mon", "Monday", true},
		{"fri", "Friday", true},
		{"  tuesday ", "Tuesday", true},
		{"t", "", false},  // Tuesday or Thursday
		{"s", "", false},  // Saturday or Sunday
		{"su", "Sunday", true},
		{"sa", "Saturday", true},
		{"Funday", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := model.CanonicalDay(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("CanonicalDay(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIsWeekday(t *testing.T) {
	for _, day := range model.Weekdays {
		if !model.IsWeekday(day) {
			t.Errorf("IsWeekday(%q) = false", day)
		}
	}
	for _, bad := range []string{"monday", "Funday", "", "Mon"} {
		if model.IsWeekday(bad) {
			t.Errorf("IsWeekday(%q) = true", bad)
		}
	}
}
