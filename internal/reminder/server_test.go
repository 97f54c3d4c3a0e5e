package reminder

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/afero"
)

func newCallToolRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) == 0 {
		t.Fatal("expected content in result")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return tc.Text
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	c, err := LoadCollection(context.Background(), NewFileStore(afero.NewMemMapFs(), "/items.json"))
	if err != nil {
		t.Fatal(err)
	}
	s := NewServer(c, DefaultToleranceWindow)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 9, 0, 10, 0, time.UTC) }
	return s
}

func TestServer_AddReminderAndListDue(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	res, err := s.handleAddReminder(ctx, newCallToolRequest("add_reminder", map[string]any{
		"title": "Call Bob",
		"date":  "2024-05-01",
		"time":  "09:00",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}

	var added record
	if err := json.Unmarshal([]byte(resultText(t, res)), &added); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if added.ID == "" || added.Type != KindReminder {
		t.Errorf("unexpected record %+v", added)
	}

	res, _ = s.handleGetDueReminders(ctx, newCallToolRequest("get_due_reminders", nil))
	if !strings.Contains(resultText(t, res), "Call Bob") {
		t.Errorf("expected Call Bob to be due, got %s", resultText(t, res))
	}
}

func TestServer_AddReminderValidation(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleAddReminder(context.Background(), newCallToolRequest("add_reminder", map[string]any{
		"title": "Call Bob",
		"date":  "2024-05-01",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Error("expected tool error for missing time")
	}
	if s.items.Len() != 0 {
		t.Errorf("expected nothing stored, got %d", s.items.Len())
	}
}

func TestServer_ListAndDelete(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	res, _ := s.handleListItems(ctx, newCallToolRequest("list_items", nil))
	if resultText(t, res) != "No items found." {
		t.Errorf("unexpected empty listing %q", resultText(t, res))
	}

	res, _ = s.handleAddNote(ctx, newCallToolRequest("add_note", map[string]any{"title": "Buy milk"}))
	var added record
	if err := json.Unmarshal([]byte(resultText(t, res)), &added); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}

	res, _ = s.handleListItems(ctx, newCallToolRequest("list_items", map[string]any{"type": "reminder"}))
	if resultText(t, res) != "No items found." {
		t.Errorf("expected no reminders, got %q", resultText(t, res))
	}

	res, _ = s.handleListItems(ctx, newCallToolRequest("list_items", map[string]any{"type": "todo"}))
	if !res.IsError {
		t.Error("expected error for unknown type")
	}

	res, _ = s.handleDeleteItem(ctx, newCallToolRequest("delete_item", map[string]any{"id": added.ID[:8]}))
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}
	if s.items.Len() != 0 {
		t.Errorf("expected note deleted, %d left", s.items.Len())
	}
}
