package shell

import (
	"fmt"
	"strings"

	"al.essio.dev/pkg/shellescape"
)

// Decision is a session's terminal outcome: let the suspended script
// continue, or stop it entirely.
type Decision int

const (
	Resume Decision = iota
	Terminate
)

func (d Decision) String() string {
	if d == Terminate {
		return "terminate"
	}
	return "resume"
}

// GenerateResume produces the shell source the wrapper evaluates in the
// caller's own scope. Everything this process wants to happen in the
// suspended script travels through the returned text:
//
//   - Terminate emits an unconditional exit directive.
//   - An armed mode transition emits the export (or unset, for disarm)
//     that installs the new control variable value.
//   - Next-mode one-shot consumption emits the unset that keeps later
//     tracepoints from stopping.
//   - Otherwise the emission is empty and the script resumes untouched.
//
// A combination this function cannot express for the dialect is a
// synthesis failure: callers must abort without printing anything, since
// partially-correct text would be evaluated by the caller.
func GenerateResume(d Dialect, decision Decision, mode TraceMode, armed *TraceMode) (string, error) {
	if _, ok := dialectNames[d]; !ok {
		return "", fmt.Errorf("cannot generate resume code for unsupported dialect %s", d)
	}
	if decision == Terminate {
		return exitDirective(d), nil
	}
	if armed != nil {
		if armed.Kind == ModeDisabled {
			return unsetDirective(d), nil
		}
		if armed.Kind == ModeNamed && armed.Name == "" {
			return "", fmt.Errorf("cannot arm a named tracepoint with an empty name")
		}
		return exportDirective(d, armed.Raw()), nil
	}
	if mode.Kind == ModeNext {
		return unsetDirective(d), nil
	}
	return "", nil
}

// exitDirective stops the calling script's entire process.
func exitDirective(d Dialect) string {
	return "exit 1\n"
}

// unsetDirective clears the control variable in the caller's scope so
// later tracepoints read it as absent.
func unsetDirective(d Dialect) string {
	if d == Fish {
		return "set -e " + ControlVar + "\n"
	}
	return "unset " + ControlVar + "\n"
}

// exportDirective installs a new control variable value in the caller's
// scope, exported so child invocations inherit it.
func exportDirective(d Dialect, value string) string {
	if d == Fish {
		return "set -gx " + ControlVar + " " + Quote(d, value) + "\n"
	}
	return "export " + ControlVar + "=" + Quote(d, value) + "\n"
}

// Quote renders a value safe for inclusion in generated source. bash and
// zsh share POSIX single-quote escaping; fish backslash-escapes quotes
// and backslashes inside single quotes instead.
func Quote(d Dialect, s string) string {
	if d == Fish {
		return fishQuote(s)
	}
	return shellescape.Quote(s)
}

var fishEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func fishQuote(s string) string {
	return "'" + fishEscaper.Replace(s) + "'"
}
