package reminder

import "time"

// Default timing. The tolerance window must exceed the polling interval so
// no due reminder falls between two ticks.
const (
	DefaultPollInterval    = 30 * time.Second
	DefaultToleranceWindow = 60 * time.Second
)

// IsDue reports whether it is an alarm-eligible, not yet notified reminder
// whose target instant has arrived within window of now.
//
// A target further in the past than window is missed, whatever the date:
// stale reminders never fire after the process was asleep.
func IsDue(it Item, now time.Time, window time.Duration) bool {
	due, _ := Evaluate(it, now, window)
	return due
}

// Evaluate is IsDue that also returns a *ParseWarning when the stored date
// or time of an otherwise eligible reminder cannot be parsed.
func Evaluate(it Item, now time.Time, window time.Duration) (bool, error) {
	r, ok := it.(*Reminder)
	if !ok || r.AlarmSent || !r.AlarmEligible() {
		return false, nil
	}

	target, err := r.Target(now.Location())
	if err != nil {
		return false, err
	}

	if now.Before(target) {
		return false, nil
	}
	return now.Sub(target) < window, nil
}

// AlarmState describes a reminder relative to an evaluation instant.
type AlarmState string

const (
	StateNone    AlarmState = ""
	StatePending AlarmState = "pending"
	StateDue     AlarmState = "due"
	StateMissed  AlarmState = "missed"
	StateSent    AlarmState = "sent"
	StateInvalid AlarmState = "invalid"
)

// State classifies it for listings. Notes and reminders without alarms
// yield StateNone.
func State(it Item, now time.Time, window time.Duration) AlarmState {
	r, ok := it.(*Reminder)
	if !ok || !r.AlarmEligible() {
		return StateNone
	}
	if r.AlarmSent {
		return StateSent
	}
	target, err := r.Target(now.Location())
	if err != nil {
		return StateInvalid
	}
	switch {
	case now.Before(target):
		return StatePending
	case now.Sub(target) < window:
		return StateDue
	default:
		return StateMissed
	}
}
