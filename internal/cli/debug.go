package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/shdbg/shdbg/internal/shell"
	"github.com/shdbg/shdbg/internal/tui"
)

// DebugCmd suspends the calling script in the interactive debugger. The
// hook invokes it from inside the tracepoint function with the captured
// stack, waits for the process to finish, and evals whatever it printed.
// That contract is why stdout carries exactly the generated resume code
// and nothing else, ever.
type DebugCmd struct {
	Dialect    string `arg:"" help:"Shell dialect of the calling script (bash, zsh, fish)."`
	Tracepoint string `arg:"" help:"Name of the tracepoint that fired."`
	Stack      string `short:"s" help:"Raw call stack captured by the hook." placeholder:"RAW"`
}

// isTerminalFn is swappable for tests, which never have a TTY.
var isTerminalFn = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stderr.Fd())
}

func (d *DebugCmd) Run(globals *Globals) error {
	log := newSessionLogger(globals)
	defer log.Sync()

	dialect, err := shell.ParseDialect(d.Dialect)
	if err != nil {
		hint := ""
		var unknown *shell.UnknownDialectError
		if errors.As(err, &unknown) && unknown.Suggestion != "" {
			hint = fmt.Sprintf("did you mean %q?", unknown.Suggestion)
		}
		return outputError(globals, errUnknownDialect, err.Error(), hint)
	}

	mode, stop := shell.ResolveMode(os.Getenv(shell.ControlVar), d.Tracepoint)
	log.Debugf("tracepoint %q fired under mode %s (stop=%v)", d.Tracepoint, mode, stop)
	if !stop {
		// Not a stop for this tracepoint: emit nothing and let the
		// script carry on at full speed.
		return nil
	}

	stack, parseErrs := shell.ParseStack(dialect, d.Stack)
	for _, perr := range parseErrs {
		log.Infof("dropped stack record: %v", perr)
		if !globals.Quiet {
			fmt.Fprintf(globals.Stderr, "Warning: %v\n", perr)
		}
	}

	if !isTerminalFn() {
		return outputError(globals, errNoTTY,
			"the debugger needs a terminal on stdin and stderr",
			"run the script interactively or unset "+shell.ControlVar)
	}

	model, err := buildModel(tui.Options{
		Tracepoint:    d.Tracepoint,
		Dialect:       dialect,
		Stack:         stack,
		Mode:          mode,
		Environ:       os.Environ(),
		SourceContext: globals.Config.SourceContext,
		Theme:         tui.NewTheme(globals.Config.AccentColor),
		Logf:          log.Debugf,
	})
	if err != nil {
		return outputError(globals, errDuplicateBinding, err.Error())
	}

	// The interface renders on stderr; stdout stays reserved for the
	// resume code the hook will eval.
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	final, err := program.Run()
	if err != nil {
		return outputError(globals, errSessionFailed, err.Error())
	}
	m, ok := final.(tui.Model)
	if !ok {
		return outputError(globals, errSessionFailed, "session loop returned an unexpected model")
	}

	code, err := shell.GenerateResume(dialect, m.Decision(), mode, m.Armed())
	if err != nil {
		return outputError(globals, errCodegenFailed, err.Error())
	}
	log.Infof("session ended: decision=%s armed=%v emitted=%d bytes", m.Decision(), m.Armed(), len(code))

	if code != "" {
		if _, err := fmt.Fprint(globals.Stdout, code); err != nil {
			return outputError(globals, errEmitFailed, err.Error())
		}
	}
	return nil
}

// buildModel converts a keymap construction panic into an error. A
// conflicting binding table is a programmer mistake, but it has to surface
// as an orderly failure before the terminal is put into raw mode.
func buildModel(opts tui.Options) (m tui.Model, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return tui.New(opts), nil
}
