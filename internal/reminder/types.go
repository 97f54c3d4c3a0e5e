package reminder

import "time"

// Kind discriminates the two item variants.
type Kind string

const (
	KindReminder Kind = "reminder"
	KindNote     Kind = "note"
)

// Wire formats for the optional reminder fields.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Item is either a *Reminder or a *Note. The interface is sealed; use a
// type switch to reach the variant-specific fields.
type Item interface {
	ItemID() string
	ItemKind() Kind
	ItemTitle() string
	ItemCategory() Category
	ItemCreatedAt() time.Time

	sealed()
}

// Reminder is a time-bound item. Only reminders carry alarm state.
type Reminder struct {
	ID        string
	Title     string
	Category  Category
	Date      string // YYYY-MM-DD, empty when unset
	Time      string // HH:MM, empty when unset
	CreatedAt time.Time
	AlarmSent bool
}

// Note is a free-form item with no schedule.
type Note struct {
	ID        string
	Title     string
	Category  Category
	CreatedAt time.Time
}

func (r *Reminder) ItemID() string           { return r.ID }
func (r *Reminder) ItemKind() Kind           { return KindReminder }
func (r *Reminder) ItemTitle() string        { return r.Title }
func (r *Reminder) ItemCategory() Category   { return r.Category }
func (r *Reminder) ItemCreatedAt() time.Time { return r.CreatedAt }
func (*Reminder) sealed()                    {}

func (n *Note) ItemID() string           { return n.ID }
func (n *Note) ItemKind() Kind           { return KindNote }
func (n *Note) ItemTitle() string        { return n.Title }
func (n *Note) ItemCategory() Category   { return n.Category }
func (n *Note) ItemCreatedAt() time.Time { return n.CreatedAt }
func (*Note) sealed()                    {}

// AlarmEligible reports whether the alarm logic applies to r at all:
// general-reminders category with both date and time set.
func (r *Reminder) AlarmEligible() bool {
	return r.Category == CategoryGeneralReminders && r.Date != "" && r.Time != ""
}

// withAlarmSent returns a copy of r with AlarmSent set.
func (r *Reminder) withAlarmSent() *Reminder {
	cp := *r
	cp.AlarmSent = true
	return &cp
}

// Clone returns a deep copy of it.
func Clone(it Item) Item {
	switch v := it.(type) {
	case *Reminder:
		cp := *v
		return &cp
	case *Note:
		cp := *v
		return &cp
	default:
		return it
	}
}
