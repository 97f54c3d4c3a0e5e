package reminder

// Category groups items for display. The reminder and note sets are
// disjoint; only CategoryGeneralReminders is alarm-eligible.
type Category string

// Reminder categories.
const (
	CategoryGeneralReminders Category = "general-reminders"
	CategoryAppointments     Category = "appointments"
	CategoryBirthdays        Category = "birthdays"
	CategoryBills            Category = "bills"
)

// Note categories.
const (
	CategoryGeneralNotes Category = "general-notes"
	CategoryIdeas        Category = "ideas"
	CategoryPersonal     Category = "personal"
	CategoryWork         Category = "work"
)

var (
	reminderCategories = []Category{
		CategoryGeneralReminders,
		CategoryAppointments,
		CategoryBirthdays,
		CategoryBills,
	}
	noteCategories = []Category{
		CategoryGeneralNotes,
		CategoryIdeas,
		CategoryPersonal,
		CategoryWork,
	}
)

// ReminderCategories returns the categories valid for reminders.
func ReminderCategories() []Category {
	return append([]Category(nil), reminderCategories...)
}

// NoteCategories returns the categories valid for notes.
func NoteCategories() []Category {
	return append([]Category(nil), noteCategories...)
}

// ValidFor reports whether c belongs to the category set of kind.
func (c Category) ValidFor(kind Kind) bool {
	set := noteCategories
	if kind == KindReminder {
		set = reminderCategories
	}
	for _, v := range set {
		if v == c {
			return true
		}
	}
	return false
}
