package tui

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/lipgloss"
)

// highlightLine colors one line of source in the style of the file's
// language. Unknown extensions fall back to the bash lexer, which covers
// the extensionless executables most tracepoints live in. Any tokenizer
// trouble returns the line unstyled.
func highlightLine(line, path string, style *chroma.Style) string {
	if style == nil || line == "" {
		return line
	}
	lexer := lexers.Match(path)
	if lexer == nil {
		lexer = lexers.Get("bash")
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}
	var b strings.Builder
	for _, token := range it.Tokens() {
		if token.Value == "" {
			continue
		}
		b.WriteString(tokenStyle(token.Type, style).Render(token.Value))
	}
	return b.String()
}

func tokenStyle(t chroma.TokenType, style *chroma.Style) lipgloss.Style {
	entry := style.Get(t)
	s := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		s = s.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		s = s.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		s = s.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		s = s.Underline(true)
	}
	return s
}
