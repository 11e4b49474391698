package cli

import (
	"errors"
	"fmt"
)

// Stable error codes, so hook scripts and humans can tell failures apart
// without parsing prose.
const (
	errUnknownDialect   = "unknown-dialect"
	errNoTTY            = "no-tty"
	errDuplicateBinding = "duplicate-binding"
	errCodegenFailed    = "codegen-failed"
	errEmitFailed       = "emit-failed"
	errSessionFailed    = "session-failed"
	errConfigInvalid    = "config-invalid"
	errStackInvalid     = "stack-invalid"
	errHookInvalid      = "hook-invalid"
)

// outputError normalizes error emission across commands. Everything goes
// to stderr: stdout belongs to the generated resume code, and a failure
// must never leave half a directive there for the hook to eval.
func outputError(globals *Globals, code, message string, hint ...string) error {
	if globals != nil {
		fmt.Fprintf(globals.Stderr, "Error [%s]: %s", code, message)
		if len(hint) > 0 && hint[0] != "" {
			fmt.Fprintf(globals.Stderr, " (hint: %s)", hint[0])
		}
		fmt.Fprintln(globals.Stderr)
	}
	return errors.New(message)
}
