package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/notexe/reminders/internal/reminder"
)

var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")). // Coral red
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("222")) // Warm yellow

	SystemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("183")). // Soft purple
			Italic(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")). // Medium gray
			Italic(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")). // Green
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("222")). // Yellow
			Bold(true)

	AccentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("147")) // Light purple

	ToastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("215")). // Orange
			Padding(0, 1)
)

// stateStyles colours the status column of item listings.
var stateStyles = map[reminder.AlarmState]lipgloss.Style{
	reminder.StatePending: InfoStyle,
	reminder.StateDue:     WarningStyle,
	reminder.StateMissed:  ErrorStyle,
	reminder.StateSent:    SuccessStyle,
	reminder.StateInvalid: ErrorStyle,
}

type Formatter struct {
	colored bool
}

func NewFormatter(colored bool) *Formatter {
	return &Formatter{colored: colored}
}

func (f *Formatter) FormatError(err error) string {
	prefix := "Error: "
	if f.colored {
		prefix = ErrorStyle.Render("Error: ")
	}
	return prefix + err.Error()
}

func (f *Formatter) FormatInfo(info string) string {
	if f.colored {
		return InfoStyle.Render(info)
	}
	return info
}

func (f *Formatter) FormatSystem(msg string) string {
	if f.colored {
		return SystemStyle.Render(msg)
	}
	return msg
}

func (f *Formatter) FormatStatus(msg string) string {
	if f.colored {
		return StatusStyle.Render(msg)
	}
	return msg
}

func (f *Formatter) FormatWelcome(storePath string, count int) string {
	title := "Reminders & Notes"
	storeLine := "Store: " + storePath
	countLine := fmt.Sprintf("Items: %d", count)
	helpLine := "Type /help for commands"

	if f.colored {
		titleStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

		subtitleStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

		labelStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

		valueStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

		content := strings.Join([]string{
			titleStyle.Render(title),
			labelStyle.Render("Store: ") + valueStyle.Render(storePath),
			labelStyle.Render("Items: ") + valueStyle.Render(fmt.Sprintf("%d", count)),
			"",
			subtitleStyle.Render(helpLine),
		}, "\n")

		return "\n" + box.Render(content) + "\n"
	}

	// Plain text fallback
	lines := []string{
		"",
		title,
		storeLine,
		countLine,
		helpLine,
		"",
	}

	return strings.Join(lines, "\n")
}

// FormatPrompt returns the input prompt for the active tab. A non-zero
// alarm count is shown in front of it.
func (f *Formatter) FormatPrompt(tab reminder.Kind, activeAlarms int) string {
	name := "reminders"
	if tab == reminder.KindNote {
		name = "notes"
	}

	alarm := ""
	if activeAlarms > 0 {
		alarm = fmt.Sprintf("⏰%d ", activeAlarms)
	}

	if f.colored {
		promptStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("62"))
		arrowStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")).
			Bold(true)
		return WarningStyle.Render(alarm) + promptStyle.Render(name) + arrowStyle.Render(" > ")
	}
	return alarm + name + " > "
}

// FormatItems renders one line per item with a short id, category,
// schedule and alarm state at now. An empty list renders the tab's
// empty-state message.
func (f *Formatter) FormatItems(kind reminder.Kind, items []reminder.Item, now time.Time, window time.Duration) string {
	if len(items) == 0 {
		if kind == reminder.KindNote {
			return f.FormatStatus("No notes yet.")
		}
		return f.FormatStatus("No reminders yet.")
	}

	var sb strings.Builder
	for i, it := range items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(f.formatItemLine(it, now, window))
	}
	return sb.String()
}

func (f *Formatter) formatItemLine(it reminder.Item, now time.Time, window time.Duration) string {
	id := ShortID(it.ItemID())
	category := fmt.Sprintf("[%s]", it.ItemCategory())

	schedule := ""
	state := reminder.StateNone
	if r, ok := it.(*reminder.Reminder); ok {
		schedule = strings.TrimSpace(r.Date + " " + r.Time)
		state = reminder.State(it, now, window)
	}

	if !f.colored {
		parts := []string{id, category}
		if schedule != "" {
			parts = append(parts, schedule)
		}
		parts = append(parts, it.ItemTitle())
		if state != reminder.StateNone {
			parts = append(parts, "("+string(state)+")")
		}
		return "  " + strings.Join(parts, "  ")
	}

	line := "  " + DimStyle.Render(id) + "  " + AccentStyle.Render(category)
	if schedule != "" {
		line += "  " + InfoStyle.Render(schedule)
	}
	line += "  " + it.ItemTitle()
	if state != reminder.StateNone {
		line += "  " + stateStyles[state].Render("("+string(state)+")")
	}
	return line
}

// ItemMarkdown describes it as a markdown document for /show.
func ItemMarkdown(it reminder.Item, now time.Time, window time.Duration) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", it.ItemTitle())
	fmt.Fprintf(&sb, "| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| ID | `%s` |\n", it.ItemID())
	fmt.Fprintf(&sb, "| Type | %s |\n", it.ItemKind())
	fmt.Fprintf(&sb, "| Category | %s |\n", it.ItemCategory())

	if r, ok := it.(*reminder.Reminder); ok {
		if r.Date != "" {
			fmt.Fprintf(&sb, "| Date | %s |\n", r.Date)
		}
		if r.Time != "" {
			fmt.Fprintf(&sb, "| Time | %s |\n", r.Time)
		}
		if state := reminder.State(r, now, window); state != reminder.StateNone {
			fmt.Fprintf(&sb, "| Alarm | %s |\n", state)
		}
	}

	fmt.Fprintf(&sb, "| Created | %s |\n", it.ItemCreatedAt().Local().Format("2006-01-02 15:04"))
	return sb.String()
}

// FormatToast renders an alarm alert as a bordered box.
func (f *Formatter) FormatToast(header, title, message string) string {
	content := header + "\n" + title
	if message != "" {
		content += "\n" + message
	}

	if f.colored {
		body := WarningStyle.Render(header) + "\n" + HeaderStyle.Render(title)
		if message != "" {
			body += "\n" + message
		}
		return ToastStyle.Render(body)
	}
	return "[" + strings.ReplaceAll(content, "\n", "] [") + "]"
}

// FormatBox wraps content in a styled box
func (f *Formatter) FormatBox(title, content string) string {
	if f.colored {
		borderStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

		return HeaderStyle.Render(title) + "\n" + borderStyle.Render(content)
	}
	return title + "\n" + content
}

// ShortID returns the first eight characters of id.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
