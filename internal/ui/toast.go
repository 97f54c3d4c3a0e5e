package ui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/notexe/reminders/internal/notify"
)

// AlarmHeader heads every alarm toast.
const AlarmHeader = "Reminder Alarm ⏰"

// Toaster prints alerts as toasts to a terminal writer and tracks which
// are still visible.
type Toaster struct {
	mu     sync.Mutex
	out    io.Writer
	f      *Formatter
	now    func() time.Time
	active map[string]time.Time // item id -> hide time
}

// NewToaster writes toasts to out, typically the readline stdout so they
// do not break the prompt line.
func NewToaster(out io.Writer, f *Formatter) *Toaster {
	return &Toaster{
		out:    out,
		f:      f,
		now:    time.Now,
		active: make(map[string]time.Time),
	}
}

func (t *Toaster) Notify(a notify.Alert) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	vis := a.Visibility
	if vis <= 0 {
		vis = notify.DefaultVisibility
	}
	t.active[a.ItemID] = t.now().Add(vis)

	if _, err := fmt.Fprintf(t.out, "\n%s\n", t.f.FormatToast(AlarmHeader, a.Title, a.Message)); err != nil {
		return fmt.Errorf("failed to show toast: %w", err)
	}
	return nil
}

// Confirm shows a short non-alarm toast such as "Reminder Added".
func (t *Toaster) Confirm(header, title string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintln(t.out, t.f.FormatToast(header, title, ""))
}

// Active returns the number of alarm toasts still within their
// visibility duration, forgetting expired ones.
func (t *Toaster) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	for id, until := range t.active {
		if !now.Before(until) {
			delete(t.active, id)
		}
	}
	return len(t.active)
}

var _ notify.Notifier = (*Toaster)(nil)
