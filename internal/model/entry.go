package model

import "strings"

// Entry represents a single recorded work period.
type Entry struct {
	ID        string `json:"id"`
	Employee  string `json:"employee"`
	Day       string `json:"day"`
	TimeIn    string `json:"timeIn"`
	TimeOut   string `json:"timeOut"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"createdAt"`
}

// Document is the top-level structure persisted as a single JSON file.
// Entries keep their insertion order; nothing ever reorders them.
type Document struct {
	Entries []Entry `json:"entries"`
}

// EmptyDocument returns a fresh Document with no entries.
func EmptyDocument() Document {
	return Document{Entries: []Entry{}}
}

// Weekdays lists the seven fixed day labels, in display order.
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// CanonicalDay maps a case-insensitive day name or unambiguous prefix
// ("fri", "Friday") to its canonical label. The second result is false if
// the input matches no weekday.
func CanonicalDay(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	for _, d := range Weekdays {
		if strings.ToLower(d) == s {
			return d, true
		}
	}
	// Prefix match, only when unambiguous ("s" could be Saturday or Sunday
	// and is rejected).
	var match string
	for _, d := range Weekdays {
		if strings.HasPrefix(strings.ToLower(d), s) {
			if match != "" {
				return "", false
			}
			match = d
		}
	}
	return match, match != ""
}

// IsWeekday reports whether s is exactly one of the seven canonical labels.
func IsWeekday(s string) bool {
	for _, d := range Weekdays {
		if s == d {
			return true
		}
	}
	return false
}
