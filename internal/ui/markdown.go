package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// HelpMarkdown documents the interactive commands.
const HelpMarkdown = `# Commands

## Items
- ` + "`/remind <YYYY-MM-DD> <HH:MM> [-c category] <title>`" + ` add a reminder
- ` + "`/remind -c <category> <title>`" + ` add a reminder without an alarm
- ` + "`/note [-c category] <title>`" + ` add a note
- ` + "`/list [reminders|notes]`" + ` list items, default is the active tab
- ` + "`/show <id>`" + ` show one item
- ` + "`/delete [id]`" + ` delete an item, pick from a menu when no id is given

## Navigation
- ` + "`/tab reminders|notes`" + ` switch tab
- ` + "`/categories`" + ` list categories
- ` + "`/help`" + ` show this help
- ` + "`/quit`" + ` exit

Only **general-reminders** with a date and time raise an alarm. IDs may be
shortened to a unique prefix of at least 4 characters.
`

// RenderMarkdown renders md for the terminal. Plain formatters return md
// unchanged.
func (f *Formatter) RenderMarkdown(md string) string {
	if !f.colored {
		return strings.TrimSpace(md)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}

	return strings.TrimSpace(rendered)
}
