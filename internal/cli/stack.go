package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/shdbg/shdbg/internal/shell"
)

// StackCmd normalizes a raw dialect stack and prints it as a table.
// Handy for checking what a hook actually captured without opening a
// full session.
type StackCmd struct {
	Dialect string `arg:"" help:"Shell dialect the stack came from (bash, zsh, fish)."`
	Raw     string `arg:"" optional:"" help:"Raw stack text; read from stdin when omitted."`
}

func (s *StackCmd) Run(globals *Globals) error {
	dialect, err := shell.ParseDialect(s.Dialect)
	if err != nil {
		hint := ""
		var unknown *shell.UnknownDialectError
		if errors.As(err, &unknown) && unknown.Suggestion != "" {
			hint = fmt.Sprintf("did you mean %q?", unknown.Suggestion)
		}
		return outputError(globals, errUnknownDialect, err.Error(), hint)
	}

	raw := s.Raw
	if raw == "" {
		data, err := io.ReadAll(globals.Stdin)
		if err != nil {
			return outputError(globals, errStackInvalid, fmt.Sprintf("read stack from stdin: %v", err))
		}
		raw = string(data)
	}

	stack, parseErrs := shell.ParseStack(dialect, raw)
	for _, perr := range parseErrs {
		if !globals.Quiet {
			fmt.Fprintf(globals.Stderr, "Warning: %v\n", perr)
		}
	}

	if len(stack) == 0 {
		fmt.Fprintln(globals.Stdout, "No frames (empty stack, or every record was malformed).")
		return nil
	}

	table := tablewriter.NewTable(globals.Stdout)
	table.Header([]string{"#", "Function", "File", "Line"})
	for i, frame := range stack {
		table.Append([]string{
			strconv.Itoa(i),
			frame.Function,
			frame.File,
			strconv.Itoa(frame.Line),
		})
	}
	if err := table.Render(); err != nil {
		return outputError(globals, errEmitFailed, fmt.Sprintf("render stack table: %v", err))
	}
	return nil
}
