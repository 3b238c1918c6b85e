package timecalc_test

import (
	"math/rand"
	"testing"

	"github.com/mhartig/tsheet/internal/model"
	"github.com/mhartig/tsheet/internal/timecalc"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9:30", 0, true},
		{"09:5", 0, true},
		{"0930", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}
	for _, tt := range tests {
		got, err := timecalc.ParseClock(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q) expected error, got %d", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestDurationHours(t *testing.T) {
	tests := []struct {
		in, out string
		want    float64
	}{
		{"09:00", "17:00", 8},
		{"09:00", "17:30", 8.5},
		{"09:00", "09:00", 0},
		{"00:00", "23:59", 1439.0 / 60},
		// Midnight rollover: out clock-earlier than in means next day.
		{"23:00", "01:00", 2},
		{"22:30", "06:15", 7.75},
		{"00:01", "00:00", 1439.0 / 60},
	}
	for _, tt := range tests {
		got, err := timecalc.DurationHours(tt.in, tt.out)
		if err != nil {
			t.Errorf("DurationHours(%q, %q): %v", tt.in, tt.out, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DurationHours(%q, %q) = %v, want %v", tt.in, tt.out, got, tt.want)
		}
	}
}

func TestDurationHoursInvalidInput(t *testing.T) {
	if _, err := timecalc.DurationHours("25:00", "09:00"); err == nil {
		t.Error("expected error for invalid time in")
	}
	if _, err := timecalc.DurationHours("09:00", "9am"); err == nil {
		t.Error("expected error for invalid time out")
	}
}

func TestRoundedHours(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "0.00"},
		{7.5, "7.50"},
		{8, "8.00"},
		{7.999, "8.00"},
		{0.004, "0.00"},
		{0.005, "0.01"},
		{23.983333333333334, "23.98"},
	}
	for _, tt := range tests {
		if got := timecalc.RoundedHours(tt.hours); got != tt.want {
			t.Errorf("RoundedHours(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	totals := timecalc.Aggregate(nil)
	if totals.Weekly != 0 {
		t.Errorf("weekly total = %v, want 0", totals.Weekly)
	}
	if len(totals.PerDay) != 7 {
		t.Fatalf("perDay has %d buckets, want 7", len(totals.PerDay))
	}
	for _, day := range model.Weekdays {
		if totals.PerDay[day] != 0 {
			t.Errorf("perDay[%s] = %v, want 0", day, totals.PerDay[day])
		}
	}
}

func TestAggregate(t *testing.T) {
	entries := []model.Entry{
		{Day: "Monday", TimeIn: "09:00", TimeOut: "17:00"},
		{Day: "Monday", TimeIn: "18:00", TimeOut: "19:30"},
		{Day: "Friday", TimeIn: "23:00", TimeOut: "01:00"},
	}
	totals := timecalc.Aggregate(entries)

	if totals.PerDay["Monday"] != 9.5 {
		t.Errorf("Monday = %v, want 9.5", totals.PerDay["Monday"])
	}
	if totals.PerDay["Friday"] != 2 {
		t.Errorf("Friday = %v, want 2", totals.PerDay["Friday"])
	}
	if totals.PerDay["Tuesday"] != 0 {
		t.Errorf("Tuesday = %v, want 0", totals.PerDay["Tuesday"])
	}

	var sum float64
	for _, day := range model.Weekdays {
		sum += totals.PerDay[day]
	}
	if totals.Weekly != sum {
		t.Errorf("weekly total %v != sum of per-day totals %v", totals.Weekly, sum)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	entries := []model.Entry{
		{Day: "Monday", TimeIn: "09:00", TimeOut: "12:00"},
		{Day: "Tuesday", TimeIn: "10:00", TimeOut: "16:00"},
		{Day: "Monday", TimeIn: "13:00", TimeOut: "17:30"},
		{Day: "Sunday", TimeIn: "22:00", TimeOut: "02:00"},
		{Day: "Wednesday", TimeIn: "08:15", TimeOut: "08:45"},
	}
	want := timecalc.Aggregate(entries)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]model.Entry, len(entries))
		copy(shuffled, entries)
		r.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := timecalc.Aggregate(shuffled)
		if got.Weekly != want.Weekly {
			t.Fatalf("weekly total changed under permutation: %v != %v", got.Weekly, want.Weekly)
		}
		for _, day := range model.Weekdays {
			if got.PerDay[day] != want.PerDay[day] {
				t.Fatalf("perDay[%s] changed under permutation: %v != %v", day, got.PerDay[day], want.PerDay[day])
			}
		}
	}
}
