package tui

import (
	"fmt"
	"strings"
	"time"
)

// renderHome is the landing screen: what fired, where, under which mode,
// and how long the script has been suspended.
func (m Model) renderHome(width int) string {
	s := m.session
	paused := m.clk.Now().Sub(m.startedAt).Truncate(time.Second)

	frames := "top level, no frames"
	switch n := len(s.Stack); {
	case n == 1:
		frames = "1 frame"
	case n > 1:
		frames = fmt.Sprintf("%d frames", n)
	}

	rows := [][2]string{
		{"Tracepoint", s.Tracepoint},
		{"Dialect", m.dialect.String()},
		{"Trace mode", s.Mode.String()},
		{"Call stack", frames},
		{"Paused for", paused.String()},
	}

	var out strings.Builder
	out.WriteString("\n")
	for _, row := range rows {
		out.WriteString("  " + m.theme.Label.Render(padRight(row[0], 12)) + m.theme.Value.Render(row[1]))
		out.WriteString("\n")
	}
	if m.armed != nil {
		out.WriteString("  " + m.theme.Label.Render(padRight("Armed", 12)) + m.theme.Value.Render(m.armed.String()))
		out.WriteString("\n")
	}
	out.WriteString("\n")
	hint := "The script is suspended inside its tracepoint hook and waits for this session. " +
		"Press c to let it continue, or q to stop it."
	out.WriteString("  " + m.theme.Muted.Width(width-4).Render(hint))
	out.WriteString("\n")
	return out.String()
}
