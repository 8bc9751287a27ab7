// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/rolodex/internal/contract"
	"github.com/huangsam/rolodex/internal/dispatch"
	"github.com/huangsam/rolodex/internal/logger"
	"github.com/huangsam/rolodex/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the rolodex MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(store contract.ContactStore, baseCfg *contract.Config, log *logger.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"Rolodex Contacts Server",
		"1.0.0",
		server.WithLogging(),
	)

	// Tables are meant for terminals; agents get one line per contact instead.
	cfg := baseCfg.Clone()
	if cfg.Output == schema.TextOut || cfg.Output == "" {
		cfg.Output = schema.PlainOut
	}
	h := &toolHandler{dispatcher: dispatch.New(store, cfg, log)}

	s.AddTool(mcp.NewTool("add_contact",
		mcp.WithDescription("Add a phone number to a contact, creating the contact if it does not exist."),
		mcp.WithString("name", mcp.Description("Contact name."), mcp.Required()),
		mcp.WithString("phone", mcp.Description("Phone number made of exactly 10 digits."), mcp.Required()),
	), h.command("add", "name", "phone"))

	s.AddTool(mcp.NewTool("change_phone",
		mcp.WithDescription("Replace one phone number of an existing contact."),
		mcp.WithString("name", mcp.Description("Contact name."), mcp.Required()),
		mcp.WithString("old_phone", mcp.Description("Phone number to replace."), mcp.Required()),
		mcp.WithString("new_phone", mcp.Description("New phone number made of exactly 10 digits."), mcp.Required()),
	), h.command("change", "name", "old_phone", "new_phone"))

	s.AddTool(mcp.NewTool("show_phone",
		mcp.WithDescription("Show the phone numbers of a contact."),
		mcp.WithString("name", mcp.Description("Contact name."), mcp.Required()),
	), h.command("phone", "name"))

	s.AddTool(mcp.NewTool("list_contacts",
		mcp.WithDescription("List every contact with phones and birthday."),
	), h.command("all"))

	s.AddTool(mcp.NewTool("add_birthday",
		mcp.WithDescription("Set the birthday of a contact, creating the contact if it does not exist."),
		mcp.WithString("name", mcp.Description("Contact name."), mcp.Required()),
		mcp.WithString("birthday", mcp.Description("Birthday in DD.MM.YYYY format."), mcp.Required()),
	), h.command("add-birthday", "name", "birthday"))

	s.AddTool(mcp.NewTool("show_birthday",
		mcp.WithDescription("Show the birthday of a contact."),
		mcp.WithString("name", mcp.Description("Contact name."), mcp.Required()),
	), h.command("show-birthday", "name"))

	s.AddTool(mcp.NewTool("upcoming_birthdays",
		mcp.WithDescription("List birthdays in the next 7 days grouped by the weekday to send greetings on."),
	), h.command("birthdays"))

	return s
}

// StartMCPServer starts the rolodex MCP server over stdio.
func StartMCPServer(_ context.Context, store contract.ContactStore, baseCfg *contract.Config, log *logger.Logger) error {
	s := NewMCPServer(store, baseCfg, log)
	return server.ServeStdio(s)
}
