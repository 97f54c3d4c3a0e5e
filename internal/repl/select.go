package repl

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/notexe/reminders/internal/ui"
)

// runSelector shows an interactive menu. Readline is closed while the
// selector owns the terminal and reopened afterwards.
func (r *REPL) runSelector(question string, options []ui.SelectorOption) (int, error) {
	r.mu.Lock()
	if r.rl != nil {
		r.rl.Close()
		r.rl = nil
	}
	r.mu.Unlock()

	defer func() {
		if newRl, err := setupReadline(); err == nil {
			r.mu.Lock()
			r.rl = newRl
			r.mu.Unlock()
		}
	}()

	fmt.Println()
	idx, err := ui.NewSelector(question, options, r.config.UI.ColoredOutput).Run()
	if err != nil {
		return -1, err
	}

	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	fmt.Println(selectedStyle.Render("→ " + options[idx].Label))
	return idx, nil
}
