package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/notexe/reminders/internal/notify"
	"github.com/notexe/reminders/internal/reminder"
)

// Options tunes a Scheduler. Zero values take the defaults.
type Options struct {
	Interval   time.Duration    // time between ticks
	Window     time.Duration    // due tolerance
	Visibility time.Duration    // display hint passed to the notifier
	Now        func() time.Time // clock, time.Now by default
}

func (o Options) withDefaults() Options {
	if o.Interval == 0 {
		o.Interval = reminder.DefaultPollInterval
	}
	if o.Window == 0 {
		o.Window = reminder.DefaultToleranceWindow
	}
	if o.Visibility == 0 {
		o.Visibility = notify.DefaultVisibility
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Scheduler runs periodic alarm checks over a reminder collection and
// notifies each due reminder once.
type Scheduler struct {
	items    *reminder.Collection
	notifier notify.Notifier
	opts     Options
	kick     chan struct{}

	tickMu sync.Mutex
	warned map[string]bool
}

// New creates a Scheduler over items delivering alerts to notifier.
func New(items *reminder.Collection, notifier notify.Notifier, opts Options) *Scheduler {
	return &Scheduler{
		items:    items,
		notifier: notifier,
		opts:     opts.withDefaults(),
		kick:     make(chan struct{}, 1),
		warned:   make(map[string]bool),
	}
}

// Run blocks and runs a tick on interval, immediately on start and on
// every Kick. It exits when ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.opts.Interval <= 0 {
		return fmt.Errorf("scheduler interval must be positive, got %s", s.opts.Interval)
	}

	log.Printf("[scheduler] Started. Interval: %s, window: %s", s.opts.Interval, s.opts.Window)

	s.Tick(ctx, s.opts.Now())

	ticker := time.NewTicker(s.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[scheduler] Shutting down...")
			return nil
		case <-ticker.C:
			s.Tick(ctx, s.opts.Now())
		case <-s.kick:
			s.Tick(ctx, s.opts.Now())
		}
	}
}

// Kick requests an extra tick as soon as the running loop is free.
// Requests made while one is pending collapse into it.
func (s *Scheduler) Kick() {
	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// Tick evaluates the collection at now, claims every due reminder and
// notifies it. It returns the number of reminders claimed. Ticks never
// overlap.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) int {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	if ctx.Err() != nil {
		return 0
	}

	var due []string
	for _, it := range s.items.Snapshot() {
		ok, err := reminder.Evaluate(it, now, s.opts.Window)
		if err != nil {
			s.warnOnce(err)
			continue
		}
		if ok {
			due = append(due, it.ItemID())
		}
	}
	if len(due) == 0 {
		return 0
	}

	claimed, err := s.items.MarkAlarmSent(ctx, due)
	if err != nil {
		log.Printf("[scheduler] Error: %v", err)
	}

	for _, r := range claimed {
		alert := notify.Alert{
			ItemID:     r.ID,
			Title:      r.Title,
			Message:    fmt.Sprintf("%q is scheduled for now.", r.Title),
			Visibility: s.opts.Visibility,
		}
		if err := s.deliver(alert); err != nil {
			log.Printf("[scheduler] Error: notify %s failed: %v", r.ID, err)
			continue
		}
		log.Printf("[scheduler] Alarm sent: %q (%s %s)", r.Title, r.Date, r.Time)
	}
	return len(claimed)
}

// deliver shields the tick from a failing or panicking notifier.
func (s *Scheduler) deliver(a notify.Alert) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("notifier panic: %v", p)
		}
	}()
	return s.notifier.Notify(a)
}

func (s *Scheduler) warnOnce(err error) {
	var pw *reminder.ParseWarning
	key := err.Error()
	if errors.As(err, &pw) {
		key = pw.ItemID + "|" + pw.Field + "|" + pw.Value
	}
	if s.warned[key] {
		return
	}
	s.warned[key] = true
	log.Printf("[scheduler] Warning: %v", err)
}
