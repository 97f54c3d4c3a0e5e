// Command mcp-reminder provides an MCP server for reminder and note
// management.
//
// The server exposes tools for adding, listing and deleting items and runs
// the alarm scheduler in-process: due reminders are pushed to connected
// clients as log message notifications.
//
// Usage:
//
//	./mcp-reminder                    # Start MCP server (stdio)
//	./mcp-reminder --config path.yaml # Use a specific config file
//	./mcp-reminder --help             # Show help
//
// Environment:
//
//	REMINDERS_STORAGE_DRIVER  file or sqlite (default: file)
//	REMINDERS_STORAGE_PATH    Path to the item store (default: ~/.reminders/items.json)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/notexe/reminders/internal/config"
	"github.com/notexe/reminders/internal/logs"
	"github.com/notexe/reminders/internal/notify"
	"github.com/notexe/reminders/internal/reminder"
	"github.com/notexe/reminders/internal/scheduler"
)

func main() {
	flag.Usage = printHelp
	configPath := flag.String("config", config.GetDefaultConfigPath(), "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	// stdout carries the protocol, keep logs off it
	if err := logs.Initialize(cfg.Log.File); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (logging to stderr)\n", err)
	}
	defer logs.Close()

	store, err := reminder.OpenStore(cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	items, err := reminder.LoadCollection(ctx, store)
	if err != nil {
		return fmt.Errorf("failed to load items: %w", err)
	}

	s := reminder.NewServer(items, cfg.Scheduler.ToleranceDuration())

	sched := scheduler.New(items, notify.NewMulti(notify.NewMCP(s.MCPServer()), notify.NewLog(nil)), scheduler.Options{
		Interval:   cfg.Scheduler.IntervalDuration(),
		Window:     cfg.Scheduler.ToleranceDuration(),
		Visibility: cfg.Scheduler.VisibilityDuration(),
	})

	var handle scheduler.Handle
	handle.Start(ctx, sched)
	defer handle.Stop()

	items.OnChange(handle.Kick)

	return server.ServeStdio(s.MCPServer())
}

func printHelp() {
	fmt.Println(`MCP Reminder Server - Reminders and notes via MCP protocol

USAGE:
    mcp-reminder                 Start MCP server (communicates via stdio)
    mcp-reminder --config PATH   Use a config file (default: ~/.reminders/config.yaml)
    mcp-reminder --help          Show this help

ENVIRONMENT:
    REMINDERS_STORAGE_DRIVER     file or sqlite (default: file)
    REMINDERS_STORAGE_PATH       Path to the item store
                                 Default: ~/.reminders/items.json
    REMINDERS_SCHEDULER_INTERVAL Seconds between alarm checks (default: 30)

TOOLS:
    add_reminder       Add a reminder (title, date, time, category)
    add_note           Add a note (title, category)
    list_items         List items (optional type filter: reminder, note)
    get_due_reminders  Get reminders whose alarm is due now
    delete_item        Delete an item by id or unique id prefix

NOTIFICATIONS:
    Due alarms are sent as notifications/message with level "alert".

CONFIGURATION:
    Add to your MCP client config:
    {
      "mcpServers": {
        "reminder": {
          "command": "/path/to/mcp-reminder",
          "args": []
        }
      }
    }`)
}
