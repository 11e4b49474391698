package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shdbg/shdbg/internal/shell"
)

// reduce applies one event to the session machine and reports whether the
// user confirmed exit. It is total: every event in every state produces a
// successor, and combinations without a listed meaning are identity
// transitions. A routing bug can therefore degrade to a dead key but never
// to a failure mid-session.
func reduce(s Session, ev Event) (Session, bool) {
	switch ev := ev.(type) {
	case AppEvent:
		if s.Exit.Presenting {
			// The modal owns input until it is dismissed.
			return s, false
		}
		switch ev {
		case AppExitRequested:
			s.Exit = presentExitModal()
		case AppNextTab:
			s.Screen = s.Screen.next()
		case AppPrevTab:
			s.Screen = s.Screen.prev()
		case AppResumeRequested:
			// Resume ends the program loop, not the session state.
		}
		return s, false
	case NavEvent:
		if !s.Exit.Presenting {
			// Navigation only has meaning inside the modal.
			return s, false
		}
		switch ev {
		case NavLeft, NavRight:
			s.Exit.Highlighted = s.Exit.Highlighted.other()
		case NavSelect:
			confirmed := s.Exit.Highlighted == ExitOk
			s.Exit = ExitState{}
			return s, confirmed
		case NavUp, NavDown:
		}
		return s, false
	}
	return s, false
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The breakpoint name prompt is a second focus trap: while it is
	// editing, keys feed the text input instead of the router.
	if m.session.Screen == ScreenBreakpoints && !m.session.Exit.Presenting && m.breakpoints.editing() {
		var armed *shell.TraceMode
		var committed bool
		m.breakpoints, armed, committed = m.breakpoints.handleEditKey(msg)
		if committed {
			m.setArmed(armed)
		}
		return m, nil
	}

	ev := m.keymap.Route(msg, m.session.Screen, m.session.Exit)
	if ev == nil {
		return m, nil
	}
	m.logf("key %q routed to %s", msg.String(), ev)

	switch ev := ev.(type) {
	case AppEvent, NavEvent:
		if app, ok := ev.(AppEvent); ok && app == AppResumeRequested && !m.session.Exit.Presenting {
			m.done = true
			m.decision = shell.Resume
			return m, tea.Quit
		}
		var confirmed bool
		m.session, confirmed = reduce(m.session, ev)
		if confirmed {
			m.done = true
			m.decision = shell.Terminate
			return m, tea.Quit
		}
	case TraceEvent:
		m.trace = m.trace.apply(ev)
	case VarsEvent:
		m.vars = m.vars.apply(ev)
	case OutputEvent:
		m.output = m.output.apply(ev)
	case BreakpointsEvent:
		var armed *shell.TraceMode
		var committed bool
		m.breakpoints, armed, committed = m.breakpoints.apply(ev)
		if committed {
			m.setArmed(armed)
		}
	}
	return m, nil
}
