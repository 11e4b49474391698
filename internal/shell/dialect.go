package shell

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ControlVar is the session control variable read by the wrappers and
// mutated only through generated code, never by this process directly.
const ControlVar = "SHDBG_TRACEPOINT"

// Dialect identifies one of the supported shell families. Every
// dialect-specific constant in this package (stack record delimiter,
// plumbing skip offset, quoting rules, resume directives) hangs off it.
type Dialect int

const (
	Bash Dialect = iota
	Zsh
	Fish
)

var dialectNames = map[Dialect]string{
	Bash: "bash",
	Zsh:  "zsh",
	Fish: "fish",
}

func (d Dialect) String() string {
	if name, ok := dialectNames[d]; ok {
		return name
	}
	return fmt.Sprintf("dialect(%d)", int(d))
}

// Dialects returns the supported dialect names in stable order.
func Dialects() []string {
	return []string{Bash.String(), Zsh.String(), Fish.String()}
}

// UnknownDialectError reports a dialect tag outside the supported set.
// There is no safe default dialect, so callers must treat this as fatal.
type UnknownDialectError struct {
	Value      string
	Suggestion string
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("unknown shell dialect %q", e.Value)
}

// ParseDialect maps a dialect tag to its Dialect value. Unknown tags fail
// with an UnknownDialectError carrying a did-you-mean suggestion when a
// supported name is within editing distance.
func ParseDialect(s string) (Dialect, error) {
	tag := strings.ToLower(strings.TrimSpace(s))
	for d, name := range dialectNames {
		if tag == name {
			return d, nil
		}
	}
	return 0, &UnknownDialectError{Value: s, Suggestion: suggestDialect(tag)}
}

// suggestDialect returns the closest supported name, or "" when nothing is
// plausibly close (distance > 2). Ties go to the name sharing the input's
// first letter, so "fsh" suggests fish rather than zsh.
func suggestDialect(tag string) string {
	best := ""
	bestDist := 3
	for _, name := range Dialects() {
		dist := levenshtein.ComputeDistance(tag, name)
		if dist > 2 {
			continue
		}
		better := dist < bestDist
		if dist == bestDist && best != "" {
			better = tag != "" && best[0] != tag[0] && name[0] == tag[0]
		}
		if better {
			best = name
			bestDist = dist
		}
	}
	return best
}
