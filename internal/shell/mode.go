package shell

import "fmt"

// ModeKind enumerates the trace mode variants.
type ModeKind int

const (
	// ModeDisabled means the control variable is absent or empty; no
	// tracepoint stops.
	ModeDisabled ModeKind = iota
	// ModeNamed means the variable selects one tracepoint by name. The
	// mode persists after resuming, so a named tracepoint inside a loop
	// fires on every pass.
	ModeNamed
	// ModeNext is the one-shot mode: the next tracepoint to fire stops,
	// and resuming clears the variable so later ones do not.
	ModeNext
	// ModeAll stops at every tracepoint and persists unchanged.
	ModeAll
)

// TraceMode is the resolved interpretation of the control variable. It is
// built once per invocation and never mutated in place: transitions are
// expressed as a new value exported through generated resume code.
type TraceMode struct {
	Kind ModeKind
	// Name holds the selected tracepoint for ModeNamed.
	Name string
}

// Disabled, Next, and All are the fixed mode values; Named builds the
// name-carrying variant.
var (
	Disabled = TraceMode{Kind: ModeDisabled}
	Next     = TraceMode{Kind: ModeNext}
	All      = TraceMode{Kind: ModeAll}
)

func Named(name string) TraceMode {
	return TraceMode{Kind: ModeNamed, Name: name}
}

func (m TraceMode) String() string {
	switch m.Kind {
	case ModeDisabled:
		return "disabled"
	case ModeNamed:
		return fmt.Sprintf("named(%s)", m.Name)
	case ModeNext:
		return "next"
	case ModeAll:
		return "all"
	}
	return fmt.Sprintf("mode(%d)", int(m.Kind))
}

// Raw returns the control variable value that selects this mode, the
// inverse of ResolveMode's interpretation.
func (m TraceMode) Raw() string {
	switch m.Kind {
	case ModeNamed:
		return m.Name
	case ModeNext:
		return "next"
	case ModeAll:
		return "all"
	}
	return ""
}

// ResolveMode interprets the raw control variable value against the
// current call site's tracepoint name and decides whether this invocation
// stops. The wrappers pre-filter with the same comparison, but the full
// decision table lives here so direct invocations behave identically.
//
//	absent/empty  -> Disabled, never stops
//	"all"         -> All, stops; persists for later tracepoints
//	"next"        -> Next, stops; resume code clears the variable
//	== tracepoint -> Named, stops; variable left untouched
//	anything else -> Named (some other tracepoint), does not stop
func ResolveMode(raw, tracepoint string) (TraceMode, bool) {
	switch raw {
	case "":
		return Disabled, false
	case "all":
		return All, true
	case "next":
		return Next, true
	case tracepoint:
		return Named(raw), true
	default:
		return Named(raw), false
	}
}
