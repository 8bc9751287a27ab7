package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/rolodex/internal/contract"
	"github.com/huangsam/rolodex/internal/dispatch"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	welcomeMessage = "Welcome to the assistant bot!"
	promptText     = "Enter a command: "
)

// shellCmd starts the interactive assistant.
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive assistant.",
	Long: `Read commands one line at a time and reply to each.

Commands:
  hello                                 Greet the assistant
  add <name> <phone>                    Add a contact or another phone
  change <name> <old phone> <new phone> Replace a phone
  phone <name>                          Show a contact's phones
  all                                   List every contact
  add-birthday <name> <DD.MM.YYYY>      Set a birthday
  show-birthday <name>                  Show a birthday
  birthdays                             Birthdays in the next 7 days
  export [path]                         Write contacts to a file
  help                                  List commands
  close | exit                          Leave

Examples:
  # Start with a fixed date to preview reminders
  rolodex shell --today 10.06.2024

  # Use the SQLite-backed store and JSON listings
  rolodex shell --store-backend sqlite --output json`,
	Args:     cobra.NoArgs,
	PreRunE:  sharedSetupWrapper,
	PostRunE: sharedTeardownWrapper,
	RunE:     runShellCommand,
}

func runShellCommand(_ *cobra.Command, _ []string) error {
	d := dispatch.New(contactStore, cfg, log)

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return runSession(rootCtx, newScannerReader(os.Stdin, os.Stdout, promptText), os.Stdout, d)
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, promptText)
	if w, h, err := term.GetSize(fd); err == nil {
		_ = t.SetSize(w, h)
	}
	return runSession(rootCtx, t, t, d)
}

// lineReader yields one line of input per call and io.EOF when input ends.
type lineReader interface {
	ReadLine() (string, error)
}

// scannerReader is a lineReader over a plain stream that prints the prompt itself.
type scannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

func newScannerReader(in io.Reader, out io.Writer, prompt string) *scannerReader {
	return &scannerReader{scanner: bufio.NewScanner(in), out: out, prompt: prompt}
}

func (r *scannerReader) ReadLine() (string, error) {
	if r.prompt != "" {
		if _, err := fmt.Fprint(r.out, r.prompt); err != nil {
			return "", err
		}
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

// runSession greets the user and answers lines until exit or end of input.
func runSession(ctx context.Context, in lineReader, out io.Writer, d *dispatch.Dispatcher) error {
	if _, err := fmt.Fprintln(out, welcomeMessage); err != nil {
		return err
	}
	for {
		line, err := in.ReadLine()
		if errors.Is(err, io.EOF) {
			_, err = fmt.Fprintln(out, "\n"+dispatch.MsgGoodbye)
			return err
		}
		if err != nil {
			return fmt.Errorf("failed to read command: %w", err)
		}

		resp := d.Handle(ctx, line)
		if err := writeResponse(out, resp); err != nil {
			return err
		}
		if resp.Exit {
			return nil
		}
	}
}

// writeResponse prints a reply, coloring rejected commands when colors are on.
func writeResponse(out io.Writer, resp dispatch.Response) error {
	if resp.Text == "" {
		return nil
	}
	text := resp.Text
	if resp.Failed && cfg.UseColors {
		text = contract.ErrorColor.Sprint(text)
	}
	_, err := fmt.Fprintln(out, text)
	return err
}
