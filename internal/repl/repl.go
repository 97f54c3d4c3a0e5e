package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/chzyer/readline"

	"github.com/notexe/reminders/internal/config"
	"github.com/notexe/reminders/internal/notify"
	"github.com/notexe/reminders/internal/reminder"
	"github.com/notexe/reminders/internal/ui"
)

// errQuit ends the read loop.
var errQuit = errors.New("quit")

type REPL struct {
	items     *reminder.Collection
	config    *config.Config
	formatter *ui.Formatter
	toaster   *ui.Toaster
	storePath string

	mu sync.Mutex
	rl *readline.Instance

	out  io.Writer
	tab  reminder.Kind
	now  func() time.Time
	pick func(question string, options []ui.SelectorOption) (int, error)
}

func NewREPL(items *reminder.Collection, cfg *config.Config) (*REPL, error) {
	rl, err := setupReadline()
	if err != nil {
		return nil, fmt.Errorf("failed to setup readline: %w", err)
	}

	r := newREPL(items, cfg, nil)
	r.rl = rl
	r.out = termWriter{r: r}
	r.toaster = ui.NewToaster(r.out, r.formatter)
	r.pick = r.runSelector
	return r, nil
}

// newREPL builds a REPL writing to out with no terminal attached.
func newREPL(items *reminder.Collection, cfg *config.Config, out io.Writer) *REPL {
	formatter := ui.NewFormatter(cfg.UI.ColoredOutput)

	r := &REPL{
		items:     items,
		config:    cfg,
		formatter: formatter,
		storePath: cfg.Storage.Path,
		out:       out,
		tab:       reminder.KindReminder,
		now:       time.Now,
	}
	if out != nil {
		r.toaster = ui.NewToaster(out, formatter)
	}
	r.pick = func(string, []ui.SelectorOption) (int, error) { return -1, ui.ErrCancelled }
	return r
}

func (r *REPL) Start(ctx context.Context) error {
	defer r.Stop()

	r.displayWelcome()

	for {
		if ctx.Err() != nil {
			return nil
		}
		r.refreshPrompt()

		input, err := r.readInput()
		if err != nil {
			if isEOF(err) {
				r.println("\nGoodbye!")
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		if input == "" {
			continue
		}

		if err := r.handleInput(ctx, input); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			r.displayError(err)
		}
	}
}

func (r *REPL) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rl != nil {
		r.rl.Close()
		r.rl = nil
	}
}

// Notify shows an alarm toast and keeps the prompt's alarm count current
// while the toast is visible.
func (r *REPL) Notify(a notify.Alert) error {
	if err := r.toaster.Notify(a); err != nil {
		return err
	}
	r.refreshPrompt()

	vis := a.Visibility
	if vis <= 0 {
		vis = notify.DefaultVisibility
	}
	time.AfterFunc(vis, r.refreshPrompt)
	return nil
}

func (r *REPL) handleInput(ctx context.Context, input string) error {
	isCommand, command, args := r.parseCommand(input)
	if !isCommand {
		if r.tab == reminder.KindNote {
			return r.addNote(ctx, input)
		}
		return fmt.Errorf("commands start with / (type /help for available commands)")
	}
	return r.handleCommand(ctx, command, args)
}

func (r *REPL) handleCommand(ctx context.Context, command, args string) error {
	switch command {
	case "/help", "/h":
		r.displayHelp()
		return nil

	case "/remind", "/r":
		return r.handleRemindCommand(ctx, args)

	case "/note", "/n":
		return r.addNote(ctx, args)

	case "/list", "/ls", "/l":
		return r.handleListCommand(args)

	case "/tab", "/t":
		return r.handleTabCommand(args)

	case "/show":
		return r.handleShowCommand(args)

	case "/delete", "/del", "/rm":
		return r.handleDeleteCommand(ctx, args)

	case "/categories":
		r.displayCategories()
		return nil

	case "/quit", "/exit", "/q":
		r.println("\nGoodbye!")
		return errQuit

	default:
		return fmt.Errorf("unknown command: %s (type /help for available commands)", command)
	}
}

func (r *REPL) handleRemindCommand(ctx context.Context, args string) error {
	in, err := parseReminderArgs(args)
	if err != nil {
		return err
	}

	rem, err := reminder.NewReminder(in, r.now())
	if err != nil {
		return err
	}
	if err := r.items.Add(ctx, rem); err != nil {
		return err
	}

	r.toaster.Confirm("Reminder Added", rem.Title)
	r.setTab(reminder.KindReminder)
	return nil
}

func (r *REPL) addNote(ctx context.Context, args string) error {
	in, err := parseNoteArgs(args)
	if err != nil {
		return err
	}

	n, err := reminder.NewNote(in, r.now())
	if err != nil {
		return err
	}
	if err := r.items.Add(ctx, n); err != nil {
		return err
	}

	r.toaster.Confirm("Note Added", n.Title)
	r.setTab(reminder.KindNote)
	return nil
}

func (r *REPL) handleListCommand(args string) error {
	kind := r.tab
	if args != "" {
		k, err := parseTab(args)
		if err != nil {
			return err
		}
		kind = k
	}
	r.displayItems(kind)
	return nil
}

func (r *REPL) handleTabCommand(args string) error {
	if args == "" {
		return fmt.Errorf("usage: /tab reminders|notes")
	}
	kind, err := parseTab(args)
	if err != nil {
		return err
	}
	r.setTab(kind)
	r.displayItems(kind)
	return nil
}

func (r *REPL) handleShowCommand(args string) error {
	if args == "" {
		return fmt.Errorf("usage: /show <id>")
	}
	it, err := r.items.Find(args)
	if err != nil {
		return err
	}
	r.displayMarkdown(ui.ItemMarkdown(it, r.now(), r.window()))
	return nil
}

func (r *REPL) handleDeleteCommand(ctx context.Context, args string) error {
	id := args
	if id == "" {
		picked, err := r.pickItem("Delete which item?")
		if err != nil {
			if errors.Is(err, ui.ErrCancelled) {
				r.displaySystem("Nothing deleted.")
				return nil
			}
			return err
		}
		id = picked
	}

	it, err := r.items.Find(id)
	if err != nil {
		return err
	}
	if _, err := r.items.Delete(ctx, it.ItemID()); err != nil {
		return err
	}

	r.toaster.Confirm("Item Deleted", it.ItemTitle())
	return nil
}

// pickItem lets the user choose an item of the active tab.
func (r *REPL) pickItem(question string) (string, error) {
	items := r.tabItems(r.tab)
	if len(items) == 0 {
		return "", ui.ErrCancelled
	}

	options := make([]ui.SelectorOption, len(items))
	for i, it := range items {
		options[i] = ui.SelectorOption{Label: it.ItemTitle(), Description: ui.ShortID(it.ItemID())}
	}

	idx, err := r.pick(question, options)
	if err != nil {
		return "", err
	}
	return items[idx].ItemID(), nil
}

func (r *REPL) tabItems(kind reminder.Kind) []reminder.Item {
	var out []reminder.Item
	for _, it := range r.items.Snapshot() {
		if it.ItemKind() == kind {
			out = append(out, it)
		}
	}
	return out
}

func (r *REPL) window() time.Duration {
	if w := r.config.Scheduler.ToleranceDuration(); w > 0 {
		return w
	}
	return reminder.DefaultToleranceWindow
}

// setTab switches the active tab. Only the input loop writes tab; the
// prompt refresh reads it from timer goroutines.
func (r *REPL) setTab(kind reminder.Kind) {
	r.mu.Lock()
	r.tab = kind
	r.mu.Unlock()
}

func (r *REPL) refreshPrompt() {
	// Toaster writes take r.mu, so count before locking.
	active := r.toaster.Active()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rl == nil {
		return
	}
	r.rl.SetPrompt(r.formatter.FormatPrompt(r.tab, active))
	r.rl.Refresh()
}

// termWriter writes above the readline prompt, falling back to stdout
// while readline is closed.
type termWriter struct {
	r *REPL
}

func (w termWriter) Write(p []byte) (int, error) {
	w.r.mu.Lock()
	rl := w.r.rl
	w.r.mu.Unlock()

	if rl == nil {
		return os.Stdout.Write(p)
	}
	return rl.Stdout().Write(p)
}

func (r *REPL) println(s string) {
	fmt.Fprintln(r.out, strings.TrimRight(s, "\n"))
}
