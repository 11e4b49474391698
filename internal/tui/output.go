package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

// outputModel previews the shell text the debugger hands back to the
// suspended script. Both outcomes render side by side in time, so the user
// sees what continue and terminate will each do before picking one.
type outputModel struct {
	theme     Theme
	vp        viewport.Model
	resume    string
	terminate string
	err       error
}

func newOutputModel(theme Theme) outputModel {
	return outputModel{theme: theme, vp: viewport.New(0, 0)}
}

func (o outputModel) apply(e OutputEvent) outputModel {
	switch e {
	case OutputScrollDown:
		o.vp.LineDown(1)
	case OutputScrollUp:
		o.vp.LineUp(1)
	}
	return o
}

func (o outputModel) setPreview(resume, terminate string) outputModel {
	o.resume, o.terminate, o.err = resume, terminate, nil
	o.vp.SetContent(o.content())
	return o
}

func (o outputModel) setError(err error) outputModel {
	o.err = err
	o.vp.SetContent(o.content())
	return o
}

func (o outputModel) resize(width, height int) outputModel {
	o.vp.Width = width
	o.vp.Height = height
	if o.vp.Height < 3 {
		o.vp.Height = 3
	}
	o.vp.SetContent(o.content())
	return o
}

func (o outputModel) content() string {
	if o.err != nil {
		return o.theme.Error.Render("cannot generate resume code: " + o.err.Error())
	}
	var out strings.Builder
	out.WriteString(o.theme.Title.Render("On continue") + o.theme.Muted.Render("  (c)"))
	out.WriteString("\n")
	out.WriteString(o.renderCode(o.resume))
	out.WriteString("\n\n")
	out.WriteString(o.theme.Title.Render("On terminate") + o.theme.Muted.Render("  (q, then Ok)"))
	out.WriteString("\n")
	out.WriteString(o.renderCode(o.terminate))
	return out.String()
}

func (o outputModel) renderCode(code string) string {
	if code == "" {
		return o.theme.Muted.Render("  (nothing is emitted; the script continues untouched)")
	}
	lines := strings.Split(strings.TrimSuffix(code, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "  " + highlightLine(line, "resume.sh", o.theme.Chroma)
	}
	return strings.Join(lines, "\n")
}

func (o outputModel) view() string {
	return o.vp.View()
}
