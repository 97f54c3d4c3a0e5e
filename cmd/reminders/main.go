// Command reminders is an interactive shell for reminders and notes with
// in-terminal alarm toasts.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/notexe/reminders/internal/config"
	"github.com/notexe/reminders/internal/logs"
	"github.com/notexe/reminders/internal/notify"
	"github.com/notexe/reminders/internal/reminder"
	"github.com/notexe/reminders/internal/repl"
	"github.com/notexe/reminders/internal/scheduler"
)

func main() {
	configPath := flag.String("config", config.GetDefaultConfigPath(), "Path to configuration file")
	driver := flag.String("driver", "", "Storage driver: file or sqlite (overrides config)")
	storePath := flag.String("store", "", "Path to the item store (overrides config)")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Apply CLI flag overrides
	if *driver != "" {
		cfg.Storage.Driver = *driver
	}
	if *storePath != "" {
		cfg.Storage.Path = *storePath
	}
	if *noColor {
		cfg.UI.ColoredOutput = false
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if err := logs.Initialize(cfg.Log.File); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (logging to stderr)\n", err)
	}
	defer logs.Close()

	store, err := reminder.OpenStore(cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	items, err := reminder.LoadCollection(ctx, store)
	if err != nil {
		return fmt.Errorf("failed to load items: %w", err)
	}

	replInstance, err := repl.NewREPL(items, cfg)
	if err != nil {
		return fmt.Errorf("failed to create REPL: %w", err)
	}

	sched := scheduler.New(items, notify.NewMulti(replInstance, notify.NewLog(nil)), scheduler.Options{
		Interval:   cfg.Scheduler.IntervalDuration(),
		Window:     cfg.Scheduler.ToleranceDuration(),
		Visibility: cfg.Scheduler.VisibilityDuration(),
	})

	var handle scheduler.Handle
	handle.Start(ctx, sched)
	defer handle.Stop()

	items.OnChange(handle.Kick)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			cancel()
			replInstance.Stop()
		case <-ctx.Done():
		}
	}()

	return replInstance.Start(ctx)
}
