package timecalc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mhartig/tsheet/internal/model"
)

const minutesPerDay = 24 * 60

// ParseClock parses a strict 24-hour "HH:MM" string (both components
// zero-padded to two digits) into minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid clock time %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid clock time %q: hour out of range", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock time %q: minute out of range", s)
	}
	return h*60 + m, nil
}

// Clock formats t's wall-clock time as "HH:MM".
func Clock(t time.Time) string {
	return t.Format("15:04")
}

// DurationHours computes the length of a shift in fractional hours. A
// timeOut clock-earlier than timeIn means the shift crossed midnight into
// the next day, so a day's worth of minutes is added back.
//
// Shifts of 24 hours or longer are not representable: they alias onto the
// sub-24-hour shift with the same clock values (a full 24-hour shift reads
// as zero). This is a documented boundary of the HH:MM data model, not
// something this function can detect.
func DurationHours(timeIn, timeOut string) (float64, error) {
	in, err := ParseClock(timeIn)
	if err != nil {
		return 0, err
	}
	out, err := ParseClock(timeOut)
	if err != nil {
		return 0, err
	}
	minutes := out - in
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return float64(minutes) / 60, nil
}

// RoundedHours formats hours with exactly two decimal places, rounding
// half away from zero ("7.50", "0.00").
func RoundedHours(hours float64) string {
	return fmt.Sprintf("%.2f", math.Round(hours*100)/100)
}

// Totals holds the aggregated hours for one week of entries.
type Totals struct {
	PerDay map[string]float64
	Weekly float64
}

// Aggregate sums entry durations into per-weekday buckets and a weekly
// total. Every weekday appears in PerDay, at 0 when it has no entries.
// Entry order never affects the result. Entries with an unknown day label
// or unparsable times contribute nothing; the store never admits such
// entries, but a hand-edited document may contain them.
func Aggregate(entries []model.Entry) Totals {
	perDay := make(map[string]float64, len(model.Weekdays))
	for _, d := range model.Weekdays {
		perDay[d] = 0
	}
	var weekly float64
	for _, e := range entries {
		if _, ok := perDay[e.Day]; !ok {
			continue
		}
		hours, err := DurationHours(e.TimeIn, e.TimeOut)
		if err != nil {
			continue
		}
		perDay[e.Day] += hours
		weekly += hours
	}
	return Totals{PerDay: perDay, Weekly: weekly}
}
