package repl

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/notexe/reminders/internal/reminder"
)

func (r *REPL) readInput() (string, error) {
	r.mu.Lock()
	rl := r.rl
	r.mu.Unlock()

	if rl == nil {
		return "", io.EOF
	}

	line, err := rl.Readline()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func (r *REPL) parseCommand(input string) (bool, string, string) {
	if !strings.HasPrefix(input, "/") {
		return false, "", ""
	}

	parts := strings.SplitN(input, " ", 2)
	command := strings.ToLower(parts[0])

	args := ""
	if len(parts) > 1 {
		args = strings.TrimSpace(parts[1])
	}

	return true, command, args
}

// splitCategory pulls a "-c <category>" flag out of args and returns the
// remaining words.
func splitCategory(args string) (reminder.Category, []string, error) {
	var category reminder.Category
	var rest []string

	fields := strings.Fields(args)
	for i := 0; i < len(fields); i++ {
		if fields[i] == "-c" || fields[i] == "--category" {
			if i+1 >= len(fields) {
				return "", nil, fmt.Errorf("%s needs a category name", fields[i])
			}
			category = reminder.Category(strings.ToLower(fields[i+1]))
			i++
			continue
		}
		rest = append(rest, fields[i])
	}
	return category, rest, nil
}

// parseReminderArgs reads "[date] [time] [-c category] title". Date and
// time are recognised by shape; validation is left to NewReminder.
func parseReminderArgs(args string) (reminder.ReminderInput, error) {
	category, words, err := splitCategory(args)
	if err != nil {
		return reminder.ReminderInput{}, err
	}
	if len(words) == 0 {
		return reminder.ReminderInput{}, fmt.Errorf("usage: /remind <YYYY-MM-DD> <HH:MM> [-c category] <title>")
	}

	in := reminder.ReminderInput{Category: category}
	if looksLikeDate(words[0]) {
		in.Date = words[0]
		words = words[1:]
	}
	if len(words) > 0 && looksLikeClock(words[0]) {
		in.Time = words[0]
		if len(in.Time) == len("9:00") {
			in.Time = "0" + in.Time
		}
		words = words[1:]
	}
	in.Title = strings.Join(words, " ")
	return in, nil
}

func parseNoteArgs(args string) (reminder.NoteInput, error) {
	category, words, err := splitCategory(args)
	if err != nil {
		return reminder.NoteInput{}, err
	}
	if len(words) == 0 {
		return reminder.NoteInput{}, fmt.Errorf("usage: /note [-c category] <title>")
	}
	return reminder.NoteInput{Title: strings.Join(words, " "), Category: category}, nil
}

func parseTab(s string) (reminder.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reminders", "reminder", "r":
		return reminder.KindReminder, nil
	case "notes", "note", "n":
		return reminder.KindNote, nil
	default:
		return "", fmt.Errorf("unknown tab: %s (available: reminders, notes)", s)
	}
}

// looksLikeDate matches NNNN-NN-NN, valid or not, so a bad date is
// reported instead of becoming part of the title.
func looksLikeDate(s string) bool {
	if len(s) != len(reminder.DateLayout) {
		_, err := time.Parse(time.RFC3339, s)
		return err == nil
	}
	for i, c := range s {
		if i == 4 || i == 7 {
			if c != '-' {
				return false
			}
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// looksLikeClock matches N:NN and NN:NN. A one-digit hour is padded by
// the caller.
func looksLikeClock(s string) bool {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 {
		return false
	}
	for _, c := range hh + mm {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func setupReadline() (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              "reminders > ",
		HistoryFile:         "",
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})

	return rl, err
}

func filterInput(r rune) (rune, bool) {
	switch r {
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func isEOF(err error) bool {
	return err == io.EOF || err == readline.ErrInterrupt
}
