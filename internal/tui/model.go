package tui

import (
	"time"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shdbg/shdbg/internal/shell"
)

// Options configures one debugger session.
type Options struct {
	// Tracepoint is the name of the tracepoint that fired.
	Tracepoint string
	// Dialect of the suspended script, used for resume-code previews.
	Dialect shell.Dialect
	// Stack is the normalized call stack captured at the tracepoint.
	Stack shell.CallStack
	// Mode is the trace mode the session was entered under.
	Mode shell.TraceMode
	// Environ is the suspended script's environment, in os.Environ form.
	Environ []string
	// SourceContext is the number of lines shown around the frame line on
	// the trace screen. Zero picks a default.
	SourceContext int
	// Theme styles the whole interface.
	Theme Theme
	// Clock feeds the paused-for readout. Nil means the wall clock.
	Clock clock.Clock
	// Logf receives debug lines. Nil discards them.
	Logf func(format string, args ...any)
}

// Model is the bubbletea model for one suspended-script session. All
// updates are synchronous key handling; Init schedules no commands and no
// ticks, so the screen only changes in response to input.
type Model struct {
	session Session
	keymap  *Keymap
	theme   Theme
	dialect shell.Dialect

	clk       clock.Clock
	startedAt time.Time
	logf      func(format string, args ...any)

	width  int
	height int

	breakpoints breakpointsModel
	vars        varsModel
	trace       traceModel
	output      outputModel

	// armed is the mode transition chosen on the breakpoints screen, nil
	// until the user picks one.
	armed *shell.TraceMode

	done     bool
	decision shell.Decision
}

// New builds the model. The keymap is constructed here, so an invalid
// binding table aborts before the terminal is ever touched.
func New(opts Options) Model {
	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}
	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	if opts.SourceContext <= 0 {
		opts.SourceContext = defaultSourceContext
	}

	m := Model{
		session:     NewSession(opts.Tracepoint, opts.Stack, opts.Mode),
		keymap:      NewKeymap(),
		theme:       opts.Theme,
		dialect:     opts.Dialect,
		clk:         clk,
		startedAt:   clk.Now(),
		logf:        logf,
		breakpoints: newBreakpointsModel(opts.Tracepoint),
		vars:        newVarsModel(opts.Environ),
		trace:       newTraceModel(opts.Stack, opts.SourceContext, opts.Theme),
		output:      newOutputModel(opts.Theme),
	}
	m.syncOutput()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Session exposes the current machine state, mainly for tests.
func (m Model) Session() Session { return m.session }

// Decision reports how the session ended. It is meaningful once the
// program loop has returned.
func (m Model) Decision() shell.Decision { return m.decision }

// Armed returns the trace-mode transition picked on the breakpoints
// screen, or nil when the mode is left alone.
func (m Model) Armed() *shell.TraceMode { return m.armed }

func (m *Model) setArmed(armed *shell.TraceMode) {
	m.armed = armed
	if armed == nil {
		m.logf("armed mode cleared")
	} else {
		m.logf("armed mode %s", *armed)
	}
	m.syncOutput()
}

// syncOutput regenerates the resume-code preview after anything that can
// change it.
func (m *Model) syncOutput() {
	resume, err := shell.GenerateResume(m.dialect, shell.Resume, m.session.Mode, m.armed)
	if err != nil {
		m.output = m.output.setError(err)
		return
	}
	terminate, err := shell.GenerateResume(m.dialect, shell.Terminate, m.session.Mode, m.armed)
	if err != nil {
		m.output = m.output.setError(err)
		return
	}
	m.output = m.output.setPreview(resume, terminate)
}

// layout propagates the terminal size to the screen models.
func (m *Model) layout() {
	w, h := m.width, m.contentHeight()
	m.trace = m.trace.resize(w, h)
	m.output = m.output.resize(w, h)
}
