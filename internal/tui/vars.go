package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

type envVar struct {
	Name  string
	Value string
}

// varsModel is the environment inspector: a sorted name list on the left
// and the highlighted variable's value on the right. The detail pane shows
// the value raw or split on colons, which is the difference between a wall
// of text and a readable PATH.
type varsModel struct {
	vars        []envVar
	cursor      int
	detailFocus bool
	split       bool
}

func newVarsModel(environ []string) varsModel {
	vars := lo.FilterMap(environ, func(kv string, _ int) (envVar, bool) {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return envVar{}, false
		}
		return envVar{Name: name, Value: value}, true
	})
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return varsModel{vars: vars}
}

func (v varsModel) apply(e VarsEvent) varsModel {
	switch e {
	case VarsNextVar:
		if v.cursor < len(v.vars)-1 {
			v.cursor++
		}
	case VarsPrevVar:
		if v.cursor > 0 {
			v.cursor--
		}
	case VarsFocusList:
		v.detailFocus = false
	case VarsFocusDetail:
		v.detailFocus = true
	case VarsRawDetail:
		v.split = false
	case VarsSplitDetail:
		v.split = true
	}
	return v
}

// selected returns the highlighted variable, mainly for tests.
func (v varsModel) selected() (envVar, bool) {
	if len(v.vars) == 0 {
		return envVar{}, false
	}
	return v.vars[v.cursor], true
}

func (v varsModel) view(t Theme, width, height int) string {
	if len(v.vars) == 0 {
		return t.Muted.Render("environment is empty")
	}

	listWidth := min(32, width/3)
	if listWidth < 12 {
		listWidth = 12
	}
	detailWidth := width - listWidth - 4
	if detailWidth < 16 {
		detailWidth = 16
	}
	rows := height - 2
	if rows < 3 {
		rows = 3
	}

	first := 0
	if v.cursor >= rows {
		first = v.cursor - rows + 1
	}
	var names []string
	for i := first; i < len(v.vars) && i < first+rows; i++ {
		name := truncate(v.vars[i].Name, listWidth)
		if i == v.cursor {
			names = append(names, t.Cursor.Render(padRight(name, listWidth)))
		} else {
			names = append(names, t.Value.Render(name))
		}
	}

	listBorder, detailBorder := t.PaneBorderFocus, t.PaneBorder
	if v.detailFocus {
		listBorder, detailBorder = t.PaneBorder, t.PaneBorderFocus
	}
	listPane := listBorder.Width(listWidth).Height(rows).Render(strings.Join(names, "\n"))

	cur := v.vars[v.cursor]
	head := t.Title.Render(truncate(cur.Name, detailWidth))
	mode := "raw"
	if v.split {
		mode = "split on :"
	}
	head += "  " + t.Muted.Render("("+mode+")")

	var body string
	if v.split {
		segments := strings.Split(cur.Value, ":")
		if len(segments) > rows-2 {
			segments = append(segments[:rows-3], "…")
		}
		items := make([]string, len(segments))
		for i, seg := range segments {
			items[i] = "• " + truncate(seg, detailWidth-2)
		}
		body = strings.Join(items, "\n")
	} else {
		body = lipgloss.NewStyle().Width(detailWidth).Render(cur.Value)
	}
	detailPane := detailBorder.Width(detailWidth).Height(rows).Render(head + "\n\n" + body)

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}
