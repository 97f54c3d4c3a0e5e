package reminder

import (
	"errors"
	"testing"
	"time"
)

func TestNewReminder(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	r, err := NewReminder(ReminderInput{Title: "  Call Bob ", Date: "2024-05-01", Time: "09:00"}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ID == "" {
		t.Error("expected generated ID")
	}
	if r.Title != "Call Bob" {
		t.Errorf("Title = %q, want trimmed", r.Title)
	}
	if r.Category != CategoryGeneralReminders {
		t.Errorf("Category = %q, want default", r.Category)
	}
	if !r.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", r.CreatedAt, now)
	}
	if r.AlarmSent {
		t.Error("expected AlarmSent false")
	}

	other, err := NewReminder(ReminderInput{Title: "Call Bob", Date: "2024-05-01", Time: "09:00"}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if other.ID == r.ID {
		t.Error("expected unique IDs")
	}
}

func TestNewReminder_Validation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		in    ReminderInput
		field string
	}{
		{"empty title", ReminderInput{Title: "  ", Date: "2024-05-01", Time: "09:00"}, "title"},
		{"note category", ReminderInput{Title: "x", Category: CategoryIdeas, Date: "2024-05-01", Time: "09:00"}, "category"},
		{"unknown category", ReminderInput{Title: "x", Category: "chores"}, "category"},
		{"missing date", ReminderInput{Title: "x", Time: "09:00"}, "date"},
		{"missing time", ReminderInput{Title: "x", Date: "2024-05-01"}, "time"},
		{"bad date", ReminderInput{Title: "x", Date: "01/05/2024", Time: "09:00"}, "date"},
		{"single digit hour", ReminderInput{Title: "x", Date: "2024-05-01", Time: "9:00"}, "time"},
		{"minute out of range", ReminderInput{Title: "x", Date: "2024-05-01", Time: "09:60"}, "time"},
		{"bad time on other category", ReminderInput{Title: "x", Category: CategoryBills, Time: "noon"}, "time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReminder(tt.in, now)

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tt.field {
				t.Errorf("Field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

func TestNewReminder_OptionalScheduleForOtherCategories(t *testing.T) {
	r, err := NewReminder(ReminderInput{Title: "Mum", Category: CategoryBirthdays}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Date != "" || r.Time != "" {
		t.Errorf("expected empty schedule, got %q %q", r.Date, r.Time)
	}
	if r.AlarmEligible() {
		t.Error("expected birthday reminder not to be alarm eligible")
	}
}

func TestNewNote(t *testing.T) {
	n, err := NewNote(NoteInput{Title: "Buy milk"}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Category != CategoryGeneralNotes {
		t.Errorf("Category = %q, want default", n.Category)
	}

	if _, err := NewNote(NoteInput{Title: "x", Category: CategoryBills}, time.Now()); err == nil {
		t.Error("expected reminder category to be rejected for a note")
	}
	if _, err := NewNote(NoteInput{Title: ""}, time.Now()); err == nil {
		t.Error("expected empty title to be rejected")
	}
}

func TestCategorySetsAreDisjoint(t *testing.T) {
	for _, c := range ReminderCategories() {
		if c.ValidFor(KindNote) {
			t.Errorf("%s is valid for both kinds", c)
		}
	}
	for _, c := range NoteCategories() {
		if c.ValidFor(KindReminder) {
			t.Errorf("%s is valid for both kinds", c)
		}
	}
}
