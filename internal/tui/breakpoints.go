package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shdbg/shdbg/internal/shell"
)

// Rows on the breakpoints screen, in display order. The safe choice leads
// so the cursor starts on it.
const (
	rowKeepMode = iota
	rowDisarm
	rowNext
	rowAll
	rowNamed
	rowCount
)

func rowLabel(row int) string {
	switch row {
	case rowKeepMode:
		return "Leave mode unchanged"
	case rowDisarm:
		return "Disarm tracing"
	case rowNext:
		return "Break on next tracepoint"
	case rowAll:
		return "Break on all tracepoints"
	case rowNamed:
		return "Break on a named tracepoint…"
	}
	return ""
}

// breakpointsModel is the trace-mode arming screen. It only chooses the
// transition; the chosen value lives on the session model so the output
// preview can see it.
type breakpointsModel struct {
	cursor int
	input  textinput.Model
}

func newBreakpointsModel(tracepoint string) breakpointsModel {
	ti := textinput.New()
	ti.Prompt = "tracepoint name: "
	ti.Placeholder = tracepoint
	ti.CharLimit = 96
	ti.Width = 32
	return breakpointsModel{input: ti}
}

// editing reports whether the name prompt currently owns key input.
func (b breakpointsModel) editing() bool { return b.input.Focused() }

// apply moves the cursor or commits the highlighted row. The returned mode
// is the transition to arm; committed reports whether it replaces the
// current one. A nil mode with committed set clears any armed change.
func (b breakpointsModel) apply(e BreakpointsEvent) (breakpointsModel, *shell.TraceMode, bool) {
	switch e {
	case BreakpointsPrevRow:
		if b.cursor > 0 {
			b.cursor--
		}
	case BreakpointsNextRow:
		if b.cursor < rowCount-1 {
			b.cursor++
		}
	case BreakpointsSelect:
		switch b.cursor {
		case rowKeepMode:
			return b, nil, true
		case rowDisarm:
			m := shell.Disabled
			return b, &m, true
		case rowNext:
			m := shell.Next
			return b, &m, true
		case rowAll:
			m := shell.All
			return b, &m, true
		case rowNamed:
			// Focus would normally schedule a cursor blink command; the
			// render loop stays synchronous, so a steady cursor it is.
			b.input.Focus()
		}
	}
	return b, nil, false
}

// handleEditKey feeds one key to the name prompt. Enter with a non-empty
// value commits a named transition, esc abandons the prompt. Everything
// else is ordinary text editing.
func (b breakpointsModel) handleEditKey(msg tea.KeyMsg) (breakpointsModel, *shell.TraceMode, bool) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(b.input.Value())
		b.input.Blur()
		b.input.SetValue("")
		if name == "" {
			return b, nil, false
		}
		m := shell.Named(name)
		return b, &m, true
	case "esc":
		b.input.Blur()
		b.input.SetValue("")
		return b, nil, false
	}
	b.input, _ = b.input.Update(msg)
	return b, nil, false
}

func (b breakpointsModel) view(t Theme, mode shell.TraceMode, armed *shell.TraceMode, width int) string {
	var out strings.Builder
	out.WriteString(t.Title.Render("Trace mode on resume"))
	out.WriteString("\n\n")
	for row := 0; row < rowCount; row++ {
		label := rowLabel(row)
		if row == b.cursor && !b.editing() {
			out.WriteString(t.Cursor.Render(" " + label + " "))
		} else {
			out.WriteString(t.Value.Render("  " + label))
		}
		out.WriteString("\n")
	}
	if b.editing() {
		out.WriteString("\n")
		out.WriteString(b.input.View())
		out.WriteString("\n")
	}
	out.WriteString("\n")
	out.WriteString(t.Label.Render("Current mode  ") + t.Value.Render(mode.String()))
	out.WriteString("\n")
	if armed == nil {
		out.WriteString(t.Label.Render("Armed change  ") + t.Muted.Render("none"))
	} else {
		out.WriteString(t.Label.Render("Armed change  ") + t.Value.Render(armed.String()))
	}
	out.WriteString("\n")
	return out.String()
}
