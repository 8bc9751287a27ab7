package mcp_test

import (
	"context"
	"testing"
	"time"

	"github.com/huangsam/rolodex/internal/contract"
	mcp_internal "github.com/huangsam/rolodex/internal/mcp"
	"github.com/huangsam/rolodex/internal/store"
	"github.com/huangsam/rolodex/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *server.MCPServer {
	t.Helper()
	cfg := &contract.Config{
		Output:       schema.TextOut,
		ExportFormat: schema.CSVExport,
		Today:        schema.Date(2024, time.June, 10),
	}
	return mcp_internal.NewMCPServer(store.NewContactsInmem(), cfg, nil)
}

// call invokes a tool and returns its text and error flag.
func call(t *testing.T, s *server.MCPServer, name string, args map[string]any) (string, bool) {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	require.NotEmpty(t, res.Content)
	return res.Content[0].(mcp.TextContent).Text, res.IsError
}

func TestMCPServerTools(t *testing.T) {
	s := newTestServer(t)

	text, isErr := call(t, s, "add_contact", map[string]any{"name": "Ann Lee", "phone": "0123456789"})
	assert.False(t, isErr)
	assert.Equal(t, "Contact added.", text)

	text, isErr = call(t, s, "change_phone", map[string]any{"name": "Ann Lee", "old_phone": "0123456789", "new_phone": "1111111111"})
	assert.False(t, isErr)
	assert.Equal(t, "Contact updated.", text)

	text, _ = call(t, s, "show_phone", map[string]any{"name": "Ann Lee"})
	assert.Equal(t, "Ann Lee: 1111111111", text)

	text, isErr = call(t, s, "add_birthday", map[string]any{"name": "Ann Lee", "birthday": "15.06.1990"})
	assert.False(t, isErr)
	assert.Equal(t, "Birthday set.", text)

	text, _ = call(t, s, "show_birthday", map[string]any{"name": "Ann Lee"})
	assert.Equal(t, "Ann Lee: 15.06.1990", text)

	text, _ = call(t, s, "list_contacts", nil)
	assert.Equal(t, "Contact name: Ann Lee, phones: 1111111111, birthday: 15.06.1990", text)

	text, _ = call(t, s, "upcoming_birthdays", nil)
	assert.Equal(t, "17.06.2024: Ann Lee", text)
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		tool string
		args map[string]any
		want string
	}{
		{"add_contact missing phone", "add_contact", map[string]any{"name": "Ann"}, "Give me name and phone please."},
		{"add_contact bad phone", "add_contact", map[string]any{"name": "Ann", "phone": "12"}, "Phone must be 10 digits"},
		{"show_phone unknown", "show_phone", map[string]any{"name": "Nobody"}, "Contact not found."},
		{"show_phone blank", "show_phone", map[string]any{"name": "  "}, "Enter user name."},
		{"add_birthday bad date", "add_birthday", map[string]any{"name": "Ann", "birthday": "1990-06-15"}, "Invalid date format. Use DD.MM.YYYY"},
		{"change_phone unknown", "change_phone", map[string]any{"name": "Ann", "old_phone": "0123456789", "new_phone": "1111111111"}, "Contact not found."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isErr := call(t, s, tt.tool, tt.args)
			assert.True(t, isErr, "The response should indicate an error state")
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestMCPServerEmptyListings(t *testing.T) {
	s := newTestServer(t)

	text, isErr := call(t, s, "list_contacts", nil)
	assert.False(t, isErr)
	assert.Equal(t, "No contacts found.", text)

	text, isErr = call(t, s, "upcoming_birthdays", nil)
	assert.False(t, isErr)
	assert.Equal(t, "No upcoming birthdays within 7 days.", text)
}
