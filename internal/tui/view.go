package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Fallback terminal size used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

func (m Model) View() string {
	if m.done {
		return ""
	}
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	header := m.renderHeader(width)
	footer := m.renderFooter(width)
	bodyHeight := height - 2
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	body := fitHeight(m.renderBody(width, bodyHeight), bodyHeight)

	view := header + "\n" + body + "\n" + footer
	if m.session.Exit.Presenting {
		view = overlayCentered(view, m.renderExitModal(), width, height)
	}
	return view
}

// contentHeight is the body height between the one-line header and footer.
func (m Model) contentHeight() int {
	h := m.height - 2
	if h < 3 {
		return 3
	}
	return h
}

func (m Model) renderHeader(width int) string {
	var b strings.Builder
	b.WriteString(m.theme.HeaderApp.Render("shdbg"))
	for _, s := range screens() {
		if s == m.session.Screen {
			b.WriteString(m.theme.TabActive.Render(s.String()))
		} else {
			b.WriteString(m.theme.TabInactive.Render(s.String()))
		}
	}
	return truncate(b.String(), width)
}

func (m Model) renderFooter(width int) string {
	bindings := m.keymap.HelpBindings(m.session.Screen, m.session.Exit)
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, m.theme.FooterKey.Render(h.Key)+" "+m.theme.FooterDesc.Render(h.Desc))
	}
	sep := m.theme.FooterSep.Render(" · ")
	return " " + truncate(strings.Join(parts, sep), width-1)
}

func (m Model) renderBody(width, height int) string {
	switch m.session.Screen {
	case ScreenBreakpoints:
		return m.breakpoints.view(m.theme, m.session.Mode, m.armed, width)
	case ScreenVars:
		return m.vars.view(m.theme, width, height)
	case ScreenTrace:
		return m.trace.view(m.theme, width)
	case ScreenOutput:
		return m.output.view()
	default:
		return m.renderHome(width)
	}
}

func (m Model) renderExitModal() string {
	t := m.theme
	ok, cancel := t.Button, t.Button
	if m.session.Exit.Highlighted == ExitOk {
		ok = t.ButtonActive
	} else {
		cancel = t.ButtonActive
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, ok.Render("Ok"), "   ", cancel.Render("Cancel"))

	content := lipgloss.JoinVertical(lipgloss.Center,
		t.ModalTitle.Render("Stop the suspended script?"),
		"",
		t.Muted.Render("Ok terminates it with exit status 1."),
		"",
		buttons,
	)
	return t.ModalBox.Render(content)
}

// fitHeight pads or trims s to exactly height lines so the footer stays
// pinned to the bottom row.
func fitHeight(s string, height int) string {
	lines := splitLines(s)
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
