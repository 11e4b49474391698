package tui

import (
	"fmt"

	"github.com/shdbg/shdbg/internal/shell"
)

// Screen identifies one of the debugger tabs.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenBreakpoints
	ScreenVars
	ScreenTrace
	ScreenOutput

	screenCount
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "Home"
	case ScreenBreakpoints:
		return "Breakpoints"
	case ScreenVars:
		return "Vars"
	case ScreenTrace:
		return "Trace"
	case ScreenOutput:
		return "Output"
	}
	return fmt.Sprintf("screen(%d)", int(s))
}

// next cycles forward through the tabs, wrapping after the last one.
func (s Screen) next() Screen {
	return (s + 1) % screenCount
}

// prev cycles backward, wrapping before the first tab.
func (s Screen) prev() Screen {
	return (s + screenCount - 1) % screenCount
}

// screens lists the tabs in display order.
func screens() []Screen {
	out := make([]Screen, 0, screenCount)
	for s := ScreenHome; s < screenCount; s++ {
		out = append(out, s)
	}
	return out
}

// ExitOption is one of the two exit modal buttons.
type ExitOption int

const (
	ExitOk ExitOption = iota
	ExitCancel
)

func (o ExitOption) String() string {
	if o == ExitOk {
		return "Ok"
	}
	return "Cancel"
}

// other returns the opposite button. With exactly two options Left and
// Right collapse to the same toggle, which keeps repeated presses at an
// edge from doing anything surprising.
func (o ExitOption) other() ExitOption {
	if o == ExitOk {
		return ExitCancel
	}
	return ExitOk
}

// ExitState tracks the exit confirmation modal. The zero value means no
// modal; while Presenting is set the modal owns all input routing.
type ExitState struct {
	Presenting  bool
	Highlighted ExitOption
}

// presentExitModal opens the modal with Cancel highlighted, so a reflexive
// double-press of enter resumes the session instead of killing the script.
func presentExitModal() ExitState {
	return ExitState{Presenting: true, Highlighted: ExitCancel}
}

// Session is the small state machine every key press is reduced against.
// Screen-local concerns such as cursors and scroll offsets live in the
// screen models, not here.
type Session struct {
	Screen Screen
	Exit   ExitState

	Tracepoint string
	Stack      shell.CallStack
	Mode       shell.TraceMode
}

// NewSession starts on the home screen with no modal presented.
func NewSession(tracepoint string, stack shell.CallStack, mode shell.TraceMode) Session {
	return Session{
		Screen:     ScreenHome,
		Tracepoint: tracepoint,
		Stack:      stack,
		Mode:       mode,
	}
}
