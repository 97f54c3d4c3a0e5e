package repl

import (
	"fmt"
	"strings"

	"github.com/notexe/reminders/internal/reminder"
	"github.com/notexe/reminders/internal/ui"
)

func (r *REPL) displayError(err error) {
	fmt.Fprintln(r.out, r.formatter.FormatError(err))
	fmt.Fprintln(r.out)
}

func (r *REPL) displayWelcome() {
	fmt.Fprint(r.out, r.formatter.FormatWelcome(r.storePath, r.items.Len()))
	fmt.Fprintln(r.out)
}

func (r *REPL) displayHelp() {
	r.displayMarkdown(ui.HelpMarkdown)
}

func (r *REPL) displayMarkdown(md string) {
	fmt.Fprintln(r.out, r.formatter.RenderMarkdown(md))
	fmt.Fprintln(r.out)
}

func (r *REPL) displayInfo(msg string) {
	fmt.Fprintln(r.out, r.formatter.FormatInfo(msg))
	fmt.Fprintln(r.out)
}

func (r *REPL) displaySystem(msg string) {
	fmt.Fprintln(r.out, r.formatter.FormatSystem(msg))
	fmt.Fprintln(r.out)
}

func (r *REPL) displayItems(kind reminder.Kind) {
	title := "Reminders"
	if kind == reminder.KindNote {
		title = "Notes"
	}

	items := r.tabItems(kind)
	fmt.Fprintln(r.out, r.formatter.FormatBox(
		fmt.Sprintf("%s (%d)", title, len(items)),
		r.formatter.FormatItems(kind, items, r.now(), r.window()),
	))
	fmt.Fprintln(r.out)
}

func (r *REPL) displayCategories() {
	join := func(cs []reminder.Category) string {
		names := make([]string, len(cs))
		for i, c := range cs {
			names[i] = string(c)
		}
		return strings.Join(names, ", ")
	}

	r.displayInfo(fmt.Sprintf("Reminder categories: %s\nNote categories: %s\nOnly %s raise alarms.",
		join(reminder.ReminderCategories()),
		join(reminder.NoteCategories()),
		reminder.CategoryGeneralReminders))
}
