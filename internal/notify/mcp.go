package notify

import (
	"github.com/mark3labs/mcp-go/server"
)

const logMessageMethod = "notifications/message"

// MCP forwards alerts to every connected MCP client as a log message
// notification.
type MCP struct {
	srv *server.MCPServer
}

// NewMCP returns a notifier that broadcasts through srv.
func NewMCP(srv *server.MCPServer) *MCP {
	return &MCP{srv: srv}
}

func (m *MCP) Notify(a Alert) error {
	m.srv.SendNotificationToAllClients(logMessageMethod, map[string]any{
		"level":  "alert",
		"logger": "reminder",
		"data": map[string]any{
			"id":                   a.ItemID,
			"title":                a.Title,
			"message":              a.Message,
			"visibilityDurationMs": a.Visibility.Milliseconds(),
		},
	})
	return nil
}

var _ Notifier = (*MCP)(nil)
