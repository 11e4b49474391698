package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/shdbg/shdbg/internal/shell"
)

const (
	defaultSourceContext = 6
	maxFrameRows         = 8
)

// traceModel is the call-stack browser: one row per frame, innermost
// first, with a source excerpt for the highlighted frame underneath.
type traceModel struct {
	frames  shell.CallStack
	cursor  int
	context int
	theme   Theme

	source viewport.Model
	// files caches file contents by path. A nil entry records a read
	// failure, so the placeholder renders without hitting the disk again
	// on every cursor move.
	files map[string][]string

	width  int
	height int
}

func newTraceModel(stack shell.CallStack, context int, theme Theme) traceModel {
	return traceModel{
		frames:  stack,
		context: context,
		theme:   theme,
		source:  viewport.New(0, 0),
		files:   make(map[string][]string),
	}
}

func (tm traceModel) apply(e TraceEvent) traceModel {
	switch e {
	case TraceNextFrame:
		if tm.cursor < len(tm.frames)-1 {
			tm.cursor++
		}
	case TracePrevFrame:
		if tm.cursor > 0 {
			tm.cursor--
		}
	}
	return tm.refresh()
}

func (tm traceModel) resize(width, height int) traceModel {
	tm.width, tm.height = width, height
	tm.source.Width = width
	tm.source.Height = height - tm.frameRows() - 3
	if tm.source.Height < 3 {
		tm.source.Height = 3
	}
	return tm.refresh()
}

func (tm traceModel) frameRows() int {
	if len(tm.frames) < maxFrameRows {
		return len(tm.frames)
	}
	return maxFrameRows
}

// refresh rebuilds the source excerpt for the highlighted frame.
func (tm traceModel) refresh() traceModel {
	if len(tm.frames) == 0 {
		return tm
	}
	frame := tm.frames[tm.cursor]
	lines, ok := tm.loadFile(frame.File)
	switch {
	case !ok:
		tm.source.SetContent(tm.theme.Error.Render("cannot read " + frame.File))
	case frame.Line > len(lines):
		tm.source.SetContent(tm.theme.Error.Render(fmt.Sprintf(
			"line %d is past the end of %s (%d lines); the file changed since the script started",
			frame.Line, frame.File, len(lines))))
	default:
		tm.source.SetContent(tm.excerpt(frame, lines))
	}
	tm.source.GotoTop()
	return tm
}

func (tm traceModel) loadFile(path string) ([]string, bool) {
	if lines, cached := tm.files[path]; cached {
		return lines, lines != nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		tm.files[path] = nil
		return nil, false
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	tm.files[path] = lines
	return lines, true
}

func (tm traceModel) excerpt(frame shell.Frame, lines []string) string {
	start := frame.Line - tm.context
	if start < 1 {
		start = 1
	}
	end := frame.Line + tm.context
	if end > len(lines) {
		end = len(lines)
	}

	var out strings.Builder
	for n := start; n <= end; n++ {
		text := strings.ReplaceAll(lines[n-1], "\t", "    ")
		out.WriteString(tm.theme.LineNumber.Render(fmt.Sprintf("%5d ", n)))
		if n == frame.Line {
			out.WriteString(tm.theme.Marker.Render("▶ "))
			out.WriteString(tm.theme.CurrentLine.Render(text))
		} else {
			out.WriteString("  ")
			out.WriteString(highlightLine(text, frame.File, tm.theme.Chroma))
		}
		out.WriteString("\n")
	}
	return strings.TrimSuffix(out.String(), "\n")
}

func (tm traceModel) view(t Theme, width int) string {
	if len(tm.frames) == 0 {
		return t.Muted.Render("call stack is empty: the tracepoint fired at the top level of the script")
	}

	var out strings.Builder
	label := fmt.Sprintf("  %d frames, innermost first", len(tm.frames))
	if len(tm.frames) == 1 {
		label = "  1 frame"
	}
	out.WriteString(t.Title.Render("Call stack") + t.Muted.Render(label))
	out.WriteString("\n")

	rows := tm.frameRows()
	first := 0
	if tm.cursor >= rows {
		first = tm.cursor - rows + 1
	}
	for i := first; i < len(tm.frames) && i < first+rows; i++ {
		f := tm.frames[i]
		row := truncate(fmt.Sprintf("#%d %s  %s:%d", i, f.Function, f.File, f.Line), width-4)
		if i == tm.cursor {
			out.WriteString(t.Cursor.Render(" " + row + " "))
		} else {
			out.WriteString(t.Value.Render("  " + row))
		}
		out.WriteString("\n")
	}

	cur := tm.frames[tm.cursor]
	out.WriteString("\n")
	out.WriteString(t.Label.Render("Source  ") + t.Value.Render(fmt.Sprintf("%s:%d", cur.File, cur.Line)))
	out.WriteString("\n")
	out.WriteString(tm.source.View())
	return out.String()
}
