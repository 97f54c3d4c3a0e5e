package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "reminder"
	serverVersion = "1.0.0"
)

// Server is the MCP server for reminder and note management.
type Server struct {
	mcpServer *server.MCPServer
	items     *Collection
	window    time.Duration
	now       func() time.Time
}

// NewServer creates a new MCP server backed by the given collection.
// window is the tolerance used to report due reminders.
func NewServer(items *Collection, window time.Duration) *Server {
	s := &Server{
		items:  items,
		window: window,
		now:    time.Now,
	}

	s.mcpServer = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithLogging(),
	)

	s.registerTools()
	return s
}

// MCPServer returns the underlying MCP server for serving.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("add_reminder",
			mcp.WithDescription("Add a reminder. general-reminders fire an alarm at the given date and time and require both."),
			mcp.WithString("title", mcp.Required(), mcp.Description("Reminder title")),
			mcp.WithString("date", mcp.Description("Date as YYYY-MM-DD")),
			mcp.WithString("time", mcp.Description("Local time of day as HH:MM")),
			mcp.WithString("category", mcp.Description("general-reminders (default), appointments, birthdays, bills")),
		),
		s.handleAddReminder,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("add_note",
			mcp.WithDescription("Add a free-form note"),
			mcp.WithString("title", mcp.Required(), mcp.Description("Note text")),
			mcp.WithString("category", mcp.Description("general-notes (default), ideas, personal, work")),
		),
		s.handleAddNote,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list_items",
			mcp.WithDescription("List reminders and notes, optionally filtered by type"),
			mcp.WithString("type", mcp.Description("Filter by type: reminder, note, or empty for all")),
		),
		s.handleListItems,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_due_reminders",
			mcp.WithDescription("Get reminders whose alarm is due now and has not been sent"),
		),
		s.handleGetDueReminders,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("delete_item",
			mcp.WithDescription("Delete a reminder or note permanently"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Item ID or a unique prefix of at least 4 characters")),
		),
		s.handleDeleteItem,
	)
}

func (s *Server) handleAddReminder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r, err := NewReminder(ReminderInput{
		Title:    req.GetString("title", ""),
		Category: Category(req.GetString("category", "")),
		Date:     req.GetString("date", ""),
		Time:     req.GetString("time", ""),
	}, s.now())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.items.Add(ctx, r); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to add reminder: %v", err)), nil
	}

	return jsonResult(toRecord(r))
}

func (s *Server) handleAddNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := NewNote(NoteInput{
		Title:    req.GetString("title", ""),
		Category: Category(req.GetString("category", "")),
	}, s.now())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.items.Add(ctx, n); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to add note: %v", err)), nil
	}

	return jsonResult(toRecord(n))
}

func (s *Server) handleListItems(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind := Kind(req.GetString("type", ""))
	if kind != "" && kind != KindReminder && kind != KindNote {
		return mcp.NewToolResultError(fmt.Sprintf("unknown type: %s (use reminder or note)", kind)), nil
	}

	var recs []record
	for _, it := range s.items.Snapshot() {
		if kind == "" || it.ItemKind() == kind {
			recs = append(recs, toRecord(it))
		}
	}

	if len(recs) == 0 {
		return mcp.NewToolResultText("No items found."), nil
	}
	return jsonResult(recs)
}

func (s *Server) handleGetDueReminders(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	now := s.now()

	var recs []record
	for _, it := range s.items.Snapshot() {
		if IsDue(it, now, s.window) {
			recs = append(recs, toRecord(it))
		}
	}

	if len(recs) == 0 {
		return mcp.NewToolResultText("No due reminders."), nil
	}
	return jsonResult(recs)
}

func (s *Server) handleDeleteItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("id is required"), nil
	}

	it, err := s.items.Find(id)
	if err != nil {
		if errors.Is(err, ErrAmbiguousID) {
			return mcp.NewToolResultError(fmt.Sprintf("multiple items match %q, please be more specific", id)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete item: %v", err)), nil
	}

	if _, err := s.items.Delete(ctx, it.ItemID()); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete item: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Item %s deleted.", it.ItemID())), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(output)), nil
}
