package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mhartig/tsheet/internal/model"
	"github.com/mhartig/tsheet/internal/timecalc"
)

var (
	// ErrNotFound is reported when no entry matches the given id. Callers
	// treat it as a harmless condition, not a failure.
	ErrNotFound = errors.New("entry not found")
	// ErrAmbiguousID is reported when an id prefix matches several entries.
	ErrAmbiguousID = errors.New("id prefix matches more than one entry")
	// ErrBadFormat is reported when an imported document has no valid
	// entries sequence. The current Document is left untouched.
	ErrBadFormat = errors.New("not a timesheet document: missing entries list")
)

// Draft carries the fields of an entry pulled out of the Document by Edit,
// ready to prefill a resubmission.
type Draft struct {
	Employee string
	Day      string
	TimeIn   string
	TimeOut  string
	Notes    string
}

// Add validates candidate and appends it to doc with a fresh id and
// creation timestamp. Employee must be non-empty after trimming, Day must
// be one of the seven weekday labels, and both clock times must parse as
// HH:MM. On any validation failure doc is returned unchanged.
func Add(doc model.Document, candidate model.Entry) (model.Document, error) {
	employee := strings.TrimSpace(candidate.Employee)
	if employee == "" {
		return doc, errors.New("employee name is required")
	}
	if !model.IsWeekday(candidate.Day) {
		return doc, fmt.Errorf("invalid day %q: want Monday through Sunday", candidate.Day)
	}
	if candidate.TimeIn == "" || candidate.TimeOut == "" {
		return doc, errors.New("both time in and time out are required")
	}
	if _, err := timecalc.ParseClock(candidate.TimeIn); err != nil {
		return doc, fmt.Errorf("time in: %w", err)
	}
	if _, err := timecalc.ParseClock(candidate.TimeOut); err != nil {
		return doc, fmt.Errorf("time out: %w", err)
	}

	entry := model.Entry{
		ID:        uuid.NewString(),
		Employee:  employee,
		Day:       candidate.Day,
		TimeIn:    candidate.TimeIn,
		TimeOut:   candidate.TimeOut,
		Notes:     strings.TrimSpace(candidate.Notes),
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	doc.Entries = append(doc.Entries, entry)
	return doc, nil
}

// Remove drops the entry with the given id. An unknown id is a no-op.
func Remove(doc model.Document, id string) model.Document {
	kept := make([]model.Entry, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	doc.Entries = kept
	return doc
}

// Clear returns a fresh empty Document, discarding all entries. Confirming
// destructive intent is the caller's job.
func Clear() model.Document {
	return model.EmptyDocument()
}

// Edit removes the entry with the given id and hands its fields back as a
// Draft for resubmission. There is no in-place update: the entry is gone
// from the returned Document the moment Edit succeeds, even if the caller
// never resubmits. ErrNotFound leaves doc unchanged.
func Edit(doc model.Document, id string) (model.Document, Draft, error) {
	for _, e := range doc.Entries {
		if e.ID == id {
			draft := Draft{
				Employee: e.Employee,
				Day:      e.Day,
				TimeIn:   e.TimeIn,
				TimeOut:  e.TimeOut,
				Notes:    e.Notes,
			}
			return Remove(doc, id), draft, nil
		}
	}
	return doc, Draft{}, ErrNotFound
}

// ResolveID expands an id or unambiguous id prefix to a full entry id.
func ResolveID(doc model.Document, prefix string) (string, error) {
	var match string
	for _, e := range doc.Entries {
		if e.ID == prefix {
			return e.ID, nil
		}
		if strings.HasPrefix(e.ID, prefix) {
			if match != "" {
				return "", ErrAmbiguousID
			}
			match = e.ID
		}
	}
	if match == "" {
		return "", ErrNotFound
	}
	return match, nil
}

// ImportMerge parses raw as a timesheet document and appends its usable
// entries to doc. Candidates must carry a valid weekday label and
// non-empty employee, timeIn and timeOut; everything else is skipped.
// Missing ids and timestamps are filled in fresh. The merge is strictly
// additive: existing entries are never removed, rewritten, or deduplicated
// against, even on id collisions. Returns the merged Document and the
// number of entries actually imported.
func ImportMerge(doc model.Document, raw []byte) (model.Document, int, error) {
	var parsed struct {
		Entries []map[string]any `json:"entries"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil || parsed.Entries == nil {
		return doc, 0, ErrBadFormat
	}

	imported := 0
	for _, fields := range parsed.Entries {
		day := asText(fields["day"])
		employee := strings.TrimSpace(asText(fields["employee"]))
		timeIn := asText(fields["timeIn"])
		timeOut := asText(fields["timeOut"])
		if !model.IsWeekday(day) || employee == "" || timeIn == "" || timeOut == "" {
			continue
		}

		entry := model.Entry{
			ID:        asText(fields["id"]),
			Employee:  employee,
			Day:       day,
			TimeIn:    timeIn,
			TimeOut:   timeOut,
			Notes:     strings.TrimSpace(asText(fields["notes"])),
			CreatedAt: asText(fields["createdAt"]),
		}
		if entry.ID == "" {
			entry.ID = uuid.NewString()
		}
		if entry.CreatedAt == "" {
			entry.CreatedAt = time.Now().Format(time.RFC3339)
		}
		doc.Entries = append(doc.Entries, entry)
		imported++
	}
	return doc, imported, nil
}

// asText coerces a decoded JSON value to a string. Non-string scalars are
// stringified; null and missing values become "".
func asText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
