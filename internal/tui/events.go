package tui

import "fmt"

// Event is a semantic input action produced by the keymap router. Screens
// and the session reducer consume events, never raw key presses, so the
// same binding table drives behavior, footer help, and tests.
type Event interface {
	fmt.Stringer
	isEvent()
}

// AppEvent is a session-level action available on every screen.
type AppEvent int

const (
	// AppExitRequested asks for the exit confirmation modal.
	AppExitRequested AppEvent = iota
	// AppResumeRequested ends the session and lets the script continue.
	AppResumeRequested
	// AppNextTab moves to the next screen, wrapping at the end.
	AppNextTab
	// AppPrevTab moves to the previous screen, wrapping at the start.
	AppPrevTab
)

func (AppEvent) isEvent() {}

func (e AppEvent) String() string {
	switch e {
	case AppExitRequested:
		return "app:exit-requested"
	case AppResumeRequested:
		return "app:resume-requested"
	case AppNextTab:
		return "app:next-tab"
	case AppPrevTab:
		return "app:prev-tab"
	}
	return fmt.Sprintf("app:%d", int(e))
}

// NavEvent is a directional action. Only the exit modal consumes these;
// the reducer ignores them whenever the modal is closed.
type NavEvent int

const (
	NavUp NavEvent = iota
	NavDown
	NavLeft
	NavRight
	NavSelect
)

func (NavEvent) isEvent() {}

func (e NavEvent) String() string {
	switch e {
	case NavUp:
		return "nav:up"
	case NavDown:
		return "nav:down"
	case NavLeft:
		return "nav:left"
	case NavRight:
		return "nav:right"
	case NavSelect:
		return "nav:select"
	}
	return fmt.Sprintf("nav:%d", int(e))
}

// TraceEvent moves the frame cursor on the trace screen.
type TraceEvent int

const (
	TraceNextFrame TraceEvent = iota
	TracePrevFrame
)

func (TraceEvent) isEvent() {}

func (e TraceEvent) String() string {
	switch e {
	case TraceNextFrame:
		return "trace:next-frame"
	case TracePrevFrame:
		return "trace:prev-frame"
	}
	return fmt.Sprintf("trace:%d", int(e))
}

// VarsEvent drives the environment inspector.
type VarsEvent int

const (
	VarsNextVar VarsEvent = iota
	VarsPrevVar
	VarsFocusList
	VarsFocusDetail
	VarsRawDetail
	VarsSplitDetail
)

func (VarsEvent) isEvent() {}

func (e VarsEvent) String() string {
	switch e {
	case VarsNextVar:
		return "vars:next-var"
	case VarsPrevVar:
		return "vars:prev-var"
	case VarsFocusList:
		return "vars:focus-list"
	case VarsFocusDetail:
		return "vars:focus-detail"
	case VarsRawDetail:
		return "vars:raw-detail"
	case VarsSplitDetail:
		return "vars:split-detail"
	}
	return fmt.Sprintf("vars:%d", int(e))
}

// OutputEvent scrolls the resume-code preview.
type OutputEvent int

const (
	OutputScrollDown OutputEvent = iota
	OutputScrollUp
)

func (OutputEvent) isEvent() {}

func (e OutputEvent) String() string {
	switch e {
	case OutputScrollDown:
		return "output:scroll-down"
	case OutputScrollUp:
		return "output:scroll-up"
	}
	return fmt.Sprintf("output:%d", int(e))
}

// BreakpointsEvent drives the trace-mode arming screen.
type BreakpointsEvent int

const (
	BreakpointsNextRow BreakpointsEvent = iota
	BreakpointsPrevRow
	BreakpointsSelect
)

func (BreakpointsEvent) isEvent() {}

func (e BreakpointsEvent) String() string {
	switch e {
	case BreakpointsNextRow:
		return "breakpoints:next-row"
	case BreakpointsPrevRow:
		return "breakpoints:prev-row"
	case BreakpointsSelect:
		return "breakpoints:select"
	}
	return fmt.Sprintf("breakpoints:%d", int(e))
}
