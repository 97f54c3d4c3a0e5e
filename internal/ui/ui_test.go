package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/notexe/reminders/internal/notify"
	"github.com/notexe/reminders/internal/reminder"
)

var listNow = time.Date(2024, 5, 1, 9, 0, 30, 0, time.UTC)

func TestFormatItems_EmptyStates(t *testing.T) {
	f := NewFormatter(false)

	if got := f.FormatItems(reminder.KindReminder, nil, listNow, time.Minute); got != "No reminders yet." {
		t.Errorf("reminders empty state = %q", got)
	}
	if got := f.FormatItems(reminder.KindNote, nil, listNow, time.Minute); got != "No notes yet." {
		t.Errorf("notes empty state = %q", got)
	}
}

func TestFormatItems_Plain(t *testing.T) {
	f := NewFormatter(false)
	items := []reminder.Item{
		&reminder.Reminder{
			ID:       "0123456789abcdef",
			Title:    "Call Bob",
			Category: reminder.CategoryGeneralReminders,
			Date:     "2024-05-01",
			Time:     "09:00",
		},
		&reminder.Reminder{
			ID:       "fedcba9876543210",
			Title:    "Mum",
			Category: reminder.CategoryBirthdays,
		},
	}

	out := f.FormatItems(reminder.KindReminder, items, listNow, time.Minute)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}

	want := "  01234567  [general-reminders]  2024-05-01 09:00  Call Bob  (due)"
	if lines[0] != want {
		t.Errorf("line 0 = %q\nwant     %q", lines[0], want)
	}
	if strings.Contains(lines[1], "(") {
		t.Errorf("expected no alarm state for birthdays, got %q", lines[1])
	}
}

func TestFormatPrompt(t *testing.T) {
	f := NewFormatter(false)

	if got := f.FormatPrompt(reminder.KindReminder, 0); got != "reminders > " {
		t.Errorf("prompt = %q", got)
	}
	if got := f.FormatPrompt(reminder.KindNote, 2); got != "⏰2 notes > " {
		t.Errorf("prompt = %q", got)
	}
}

func TestItemMarkdown(t *testing.T) {
	r := &reminder.Reminder{
		ID:        "r-1",
		Title:     "Call Bob",
		Category:  reminder.CategoryGeneralReminders,
		Date:      "2024-05-01",
		Time:      "09:00",
		AlarmSent: true,
	}

	md := ItemMarkdown(r, listNow, time.Minute)
	for _, want := range []string{"# Call Bob", "| Date | 2024-05-01 |", "| Alarm | sent |"} {
		if !strings.Contains(md, want) {
			t.Errorf("expected %q in markdown:\n%s", want, md)
		}
	}

	if got := NewFormatter(false).RenderMarkdown(md); got != strings.TrimSpace(md) {
		t.Errorf("plain formatter should not render markdown")
	}
}

func TestToaster_NotifyAndExpire(t *testing.T) {
	var buf bytes.Buffer
	toaster := NewToaster(&buf, NewFormatter(false))

	now := listNow
	toaster.now = func() time.Time { return now }

	err := toaster.Notify(notify.Alert{
		ItemID:     "r-1",
		Title:      "Call Bob",
		Message:    `"Call Bob" is scheduled for now.`,
		Visibility: 10 * time.Second,
	})
	if err != nil {
		t.Fatalf("Notify failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{AlarmHeader, "Call Bob", "is scheduled for now."} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in toast, got %q", want, out)
		}
	}

	if n := toaster.Active(); n != 1 {
		t.Errorf("Active() = %d, want 1", n)
	}
	now = now.Add(10 * time.Second)
	if n := toaster.Active(); n != 0 {
		t.Errorf("Active() after visibility = %d, want 0", n)
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestToaster_WriteError(t *testing.T) {
	toaster := NewToaster(brokenWriter{}, NewFormatter(false))
	if err := toaster.Notify(notify.Alert{ItemID: "x", Title: "x"}); err == nil {
		t.Error("expected write error")
	}
}

func TestToaster_Confirm(t *testing.T) {
	var buf bytes.Buffer
	NewToaster(&buf, NewFormatter(false)).Confirm("Reminder Added", "Call Bob")

	if got := strings.TrimSpace(buf.String()); got != "[Reminder Added] [Call Bob]" {
		t.Errorf("Confirm output = %q", got)
	}
}

func TestSelector_RunSimple(t *testing.T) {
	s := NewSelector("Delete which item?", []SelectorOption{{Label: "a"}, {Label: "b"}}, false)

	var out bytes.Buffer
	idx, err := s.runSimple(strings.NewReader("2\n"), &out)
	if err != nil || idx != 1 {
		t.Errorf("runSimple = %d, %v; want 1, nil", idx, err)
	}
	if !strings.Contains(out.String(), "[2] b") {
		t.Errorf("expected numbered options, got %q", out.String())
	}

	if _, err := s.runSimple(strings.NewReader("x\n"), &out); !errors.Is(err, ErrCancelled) {
		t.Errorf("expected ErrCancelled, got %v", err)
	}
}
