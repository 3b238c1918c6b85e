package view

import (
	"github.com/mhartig/tsheet/internal/model"
	"github.com/mhartig/tsheet/internal/timecalc"
)

// Row is one entry prepared for display.
type Row struct {
	ID       string
	ShortID  string
	Employee string
	TimeIn   string
	TimeOut  string
	Hours    string
	Notes    string
}

// DaySection groups the rows of one weekday with the day's total.
type DaySection struct {
	Day        string
	Rows       []Row
	TotalHours string
}

// Model is the presentation-ready shape of a Document: the seven weekday
// sections in fixed order plus the weekly total. It carries no behavior;
// any renderer can consume it.
type Model struct {
	Days        []DaySection
	WeeklyHours string
	EntryCount  int
}

// Build turns a Document into a view Model. Entries keep their insertion
// order within each weekday section.
func Build(doc model.Document) Model {
	totals := timecalc.Aggregate(doc.Entries)

	byDay := make(map[string][]Row, len(model.Weekdays))
	for _, e := range doc.Entries {
		hours, err := timecalc.DurationHours(e.TimeIn, e.TimeOut)
		if err != nil {
			continue
		}
		byDay[e.Day] = append(byDay[e.Day], Row{
			ID:       e.ID,
			ShortID:  shortID(e.ID),
			Employee: e.Employee,
			TimeIn:   e.TimeIn,
			TimeOut:  e.TimeOut,
			Hours:    timecalc.RoundedHours(hours),
			Notes:    e.Notes,
		})
	}

	vm := Model{
		Days:        make([]DaySection, 0, len(model.Weekdays)),
		WeeklyHours: timecalc.RoundedHours(totals.Weekly),
		EntryCount:  len(doc.Entries),
	}
	for _, day := range model.Weekdays {
		vm.Days = append(vm.Days, DaySection{
			Day:        day,
			Rows:       byDay[day],
			TotalHours: timecalc.RoundedHours(totals.PerDay[day]),
		})
	}
	return vm
}

// shortID returns the leading segment of a UUID, enough to address an
// entry from the command line.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
