// Package notify defines the alarm notification sink and its backends.
package notify

import (
	"errors"
	"log"
	"time"
)

// DefaultVisibility is how long an in-app alert stays on screen.
const DefaultVisibility = 10 * time.Second

// Alert is one alarm notification.
type Alert struct {
	ItemID     string
	Title      string
	Message    string
	Visibility time.Duration
}

// Notifier shows an alert. Delivery is fire-and-forget: callers log a
// returned error and move on.
type Notifier interface {
	Notify(a Alert) error
}

// Func adapts a function to Notifier.
type Func func(a Alert) error

func (f Func) Notify(a Alert) error {
	return f(a)
}

// Multi broadcasts alerts to several notifiers.
type Multi struct {
	notifiers []Notifier
}

// NewMulti creates a notifier that delivers to all backends in order. A
// failing backend does not stop delivery to the rest.
func NewMulti(notifiers ...Notifier) *Multi {
	return &Multi{notifiers: notifiers}
}

func (m *Multi) Notify(a Alert) error {
	var errs []error
	for _, n := range m.notifiers {
		if err := n.Notify(a); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Log writes alerts to a *log.Logger. A nil logger uses the standard one.
type Log struct {
	logger *log.Logger
}

// NewLog returns a notifier that logs each alert.
func NewLog(l *log.Logger) *Log {
	if l == nil {
		l = log.Default()
	}
	return &Log{logger: l}
}

func (l *Log) Notify(a Alert) error {
	l.logger.Printf("[alarm] %s: %s", a.Title, a.Message)
	return nil
}

var (
	_ Notifier = Func(nil)
	_ Notifier = (*Multi)(nil)
	_ Notifier = (*Log)(nil)
)
