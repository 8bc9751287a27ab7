package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/huangsam/rolodex/internal/dispatch"
	"github.com/spf13/cobra"
)

// runCmd executes a command script without prompts.
var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Run assistant commands from a file or stdin.",
	Long: `Execute one assistant command per line and print each reply.

Blank lines and lines starting with # are skipped. Reading stops at the
first close or exit command. With no script, or "-", commands are read
from stdin.

Examples:
  # Replay a prepared session
  rolodex run contacts.txt --today 10.06.2024

  # Pipe commands in
  printf 'add Ann 0123456789\nall\n' | rolodex run`,
	Args:     cobra.MaximumNArgs(1),
	PreRunE:  sharedSetupWrapper,
	PostRunE: sharedTeardownWrapper,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := io.Reader(os.Stdin)
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open script: %w", err)
			}
			defer func() { _ = f.Close() }()
			in = f
		}
		return runScript(rootCtx, in, cmd.OutOrStdout(), dispatch.New(contactStore, cfg, log))
	},
}

// runScript feeds every command in r to the dispatcher.
func runScript(ctx context.Context, r io.Reader, out io.Writer, d *dispatch.Dispatcher) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		resp := d.Handle(ctx, line)
		if resp.Failed {
			log.Debug("command rejected", "line", lineNo, "reply", resp.Text)
		}
		if err := writeResponse(out, resp); err != nil {
			return err
		}
		if resp.Exit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	return nil
}
