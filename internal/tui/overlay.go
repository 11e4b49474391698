package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayCentered composites a box over the backdrop, centered in the
// given terminal size. Only the rows the box covers are patched, so the
// backdrop stays visible around it. Widths are visual widths; ANSI escape
// sequences in either string survive the splice.
func overlayCentered(backdrop, box string, width, height int) string {
	boxLines := splitLines(box)
	boxWidth := maxLineWidth(boxLines)
	x := max((width-boxWidth)/2, 0)
	y := max((height-len(boxLines))/2, 0)

	rows := splitLines(backdrop)
	for i, line := range boxLines {
		row := y + i
		if row >= len(rows) || row >= height {
			break
		}
		base := padRight(rows[row], width)
		left := ansi.Truncate(base, x, "")
		if lw := ansi.StringWidth(left); lw < x {
			left += strings.Repeat(" ", x-lw)
		}
		line = padRight(line, boxWidth)
		right := ansi.TruncateLeft(base, x+ansi.StringWidth(line), "")
		rows[row] = left + line + right
	}
	return strings.Join(rows, "\n")
}

func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

// padRight pads s with spaces until its visual width reaches width.
func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// truncate shortens s to width, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
