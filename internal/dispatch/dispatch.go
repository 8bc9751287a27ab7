// Package dispatch turns text commands into contact store operations and replies.
package dispatch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/huangsam/rolodex/internal/contract"
	"github.com/huangsam/rolodex/internal/logger"
	"github.com/huangsam/rolodex/internal/outwriter"
)

// Reply messages shared by every command surface.
const (
	MsgGreeting        = "How can I help you?"
	MsgGoodbye         = "Goodbye!"
	MsgInvalidCommand  = "Invalid command."
	MsgContactAdded    = "Contact added."
	MsgContactUpdated  = "Contact updated."
	MsgBirthdaySet     = "Birthday set."
	MsgBirthdayNotSet  = "Birthday not set."
	MsgNoPhones        = "No phones"
	MsgNoContacts      = "No contacts found."
	MsgNoBirthdays     = "No upcoming birthdays within 7 days."
	MsgContactNotFound = "Contact not found."
	MsgPhoneNotFound   = "Old phone not found for this contact."
	MsgPhoneExists     = "Phone already exists."
	MsgInvalidPhone    = "Phone must be 10 digits"
	MsgInvalidDate     = "Invalid date format. Use DD.MM.YYYY"
	MsgEnterName       = "Enter user name."
)

// Response is the outcome of one command.
type Response struct {
	Text   string // Reply to show the user; empty for a blank line
	Exit   bool   // The session should end
	Failed bool   // The command was rejected
}

// handlerFunc runs a command and returns its reply text.
type handlerFunc func(ctx context.Context, args []string) (string, error)

// command binds a handler to the reply shown when it gets the wrong number of arguments.
type command struct {
	usage string
	help  string
	run   handlerFunc
}

// Dispatcher routes commands to handlers and maps their errors to replies.
// It keeps no state of its own, so one Dispatcher may serve concurrent callers
// when the store allows it.
type Dispatcher struct {
	store    contract.ContactStore
	cfg      *contract.Config
	clock    contract.Clock
	writer   *outwriter.OutWriter
	log      *logger.Logger
	commands map[string]*command
	order    []string
}

// New creates a dispatcher over store. A nil log discards diagnostics.
func New(store contract.ContactStore, cfg *contract.Config, log *logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Nop()
	}
	d := &Dispatcher{
		store:  store,
		cfg:    cfg,
		clock:  cfg.Clock(),
		writer: outwriter.NewOutWriter(),
		log:    log.With("component", "dispatch"),
	}
	d.register()
	return d
}

// ParseInput splits a line into a lowercased command and its arguments.
// Arguments keep their case.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Handle parses and executes one input line.
func (d *Dispatcher) Handle(ctx context.Context, line string) Response {
	name, args := ParseInput(line)
	if name == "" {
		return Response{}
	}
	return d.Execute(ctx, name, args)
}

// Execute runs a command that is already split into name and arguments.
func (d *Dispatcher) Execute(ctx context.Context, name string, args []string) Response {
	switch name {
	case "close", "exit":
		return Response{Text: MsgGoodbye, Exit: true}
	case "hello", "hi", "hey":
		return Response{Text: MsgGreeting}
	}

	cmd, ok := d.commands[name]
	if !ok {
		d.log.Debug("unknown command", "command", name)
		return Response{Text: MsgInvalidCommand, Failed: true}
	}

	d.log.Debug("running command", "command", name, "args", len(args))
	text, err := cmd.run(ctx, args)
	if err != nil {
		return Response{Text: d.errorMessage(name, cmd, err), Failed: true}
	}
	return Response{Text: text}
}

// errorMessage renders the fixed reply for err.
func (d *Dispatcher) errorMessage(name string, cmd *command, err error) string {
	var nfe *contract.NotFoundError
	switch {
	case contract.IsValidationKind(err, contract.InvalidPhone):
		return MsgInvalidPhone
	case contract.IsValidationKind(err, contract.InvalidDate):
		return MsgInvalidDate
	case errors.Is(err, contract.ErrValidation):
		return cmd.usage
	case errors.As(err, &nfe):
		if nfe.Phone != "" {
			return MsgPhoneNotFound
		}
		return MsgContactNotFound
	case errors.Is(err, contract.ErrDuplicate):
		return MsgPhoneExists
	default:
		d.log.Error("command failed", "command", name, "error", err)
		return fmt.Sprintf("Error: %v", err)
	}
}

// render collects writer output into a reply without the trailing newline.
func render(write func(*bytes.Buffer) error) (string, error) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// argCount is the error for a command called with the wrong number of arguments.
func argCount(args []string) error {
	return &contract.ValidationError{Kind: contract.ArgCount, Value: strings.Join(args, " ")}
}

func notFoundPhone(name, phone string) error {
	return &contract.NotFoundError{Name: name, Phone: phone}
}
