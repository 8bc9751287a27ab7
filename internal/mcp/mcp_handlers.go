package mcp

import (
	"context"
	"strings"

	"github.com/huangsam/rolodex/internal/dispatch"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	dispatcher *dispatch.Dispatcher
}

// command returns a handler that runs a dispatcher command with the named
// string parameters as positional arguments.
// Blank parameters are dropped so the dispatcher reports its usage message.
func (h *toolHandler) command(name string, params ...string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := make([]string, 0, len(params))
		for _, p := range params {
			if v := strings.TrimSpace(request.GetString(p, "")); v != "" {
				args = append(args, v)
			}
		}

		resp := h.dispatcher.Execute(ctx, name, args)
		if resp.Failed {
			return mcp.NewToolResultError(resp.Text), nil
		}
		return mcp.NewToolResultText(resp.Text), nil
	}
}
