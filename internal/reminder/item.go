package reminder

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReminderInput holds the caller-supplied fields of a new reminder.
type ReminderInput struct {
	Title    string
	Category Category
	Date     string
	Time     string
}

// NoteInput holds the caller-supplied fields of a new note.
type NoteInput struct {
	Title    string
	Category Category
}

// NewReminder validates in and returns a reminder with a fresh ID,
// CreatedAt set to now and AlarmSent false.
func NewReminder(in ReminderInput, now time.Time) (*Reminder, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	category := in.Category
	if category == "" {
		category = CategoryGeneralReminders
	}
	if !category.ValidFor(KindReminder) {
		return nil, &ValidationError{Field: "category", Reason: fmt.Sprintf("%q is not a reminder category", category)}
	}

	date := strings.TrimSpace(in.Date)
	clock := strings.TrimSpace(in.Time)

	if date != "" {
		if _, _, _, err := parseDate(date); err != nil {
			return nil, &ValidationError{Field: "date", Reason: err.Error()}
		}
	}
	if clock != "" {
		if _, _, err := parseClock(clock); err != nil {
			return nil, &ValidationError{Field: "time", Reason: err.Error()}
		}
	}
	if category == CategoryGeneralReminders {
		if date == "" {
			return nil, &ValidationError{Field: "date", Reason: "required for " + string(category)}
		}
		if clock == "" {
			return nil, &ValidationError{Field: "time", Reason: "required for " + string(category)}
		}
	}

	return &Reminder{
		ID:        uuid.NewString(),
		Title:     title,
		Category:  category,
		Date:      date,
		Time:      clock,
		CreatedAt: now,
	}, nil
}

// NewNote validates in and returns a note with a fresh ID.
func NewNote(in NoteInput, now time.Time) (*Note, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	category := in.Category
	if category == "" {
		category = CategoryGeneralNotes
	}
	if !category.ValidFor(KindNote) {
		return nil, &ValidationError{Field: "category", Reason: fmt.Sprintf("%q is not a note category", category)}
	}

	return &Note{
		ID:        uuid.NewString(),
		Title:     title,
		Category:  category,
		CreatedAt: now,
	}, nil
}

// Target combines the reminder's date and time into an instant in loc,
// seconds zeroed.
func (r *Reminder) Target(loc *time.Location) (time.Time, error) {
	y, m, d, err := parseDate(r.Date)
	if err != nil {
		return time.Time{}, &ParseWarning{ItemID: r.ID, Field: "date", Value: r.Date, Err: err}
	}
	hour, minute, err := parseClock(r.Time)
	if err != nil {
		return time.Time{}, &ParseWarning{ItemID: r.ID, Field: "time", Value: r.Time, Err: err}
	}
	return time.Date(y, m, d, hour, minute, 0, 0, loc), nil
}

// parseDate accepts YYYY-MM-DD or an RFC3339 timestamp. For timestamps the
// calendar date as written is used, regardless of offset.
func parseDate(s string) (int, time.Month, int, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.Year(), t.Month(), t.Day(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Year(), t.Month(), t.Day(), nil
	}
	return 0, 0, 0, fmt.Errorf("expected YYYY-MM-DD, got %q", s)
}

// parseClock parses HH:MM with hour 0-23 and minute 0-59.
func parseClock(s string) (int, int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hh[0] == '+' || hh[0] == '-' {
		return 0, 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || mm[0] == '+' || mm[0] == '-' {
		return 0, 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	if hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("hour %d out of range 0-23", hour)
	}
	if minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("minute %d out of range 0-59", minute)
	}
	return hour, minute, nil
}
