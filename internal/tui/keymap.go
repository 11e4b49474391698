package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// scope groups bindings by where they apply. Global bindings work on every
// screen, modal bindings only while the exit modal presents, and each
// screen contributes its own scope on top of the globals.
type scope int

const (
	scopeGlobal scope = iota
	scopeModal
	scopeHome
	scopeBreakpoints
	scopeVars
	scopeTrace
	scopeOutput
)

func (s scope) String() string {
	switch s {
	case scopeGlobal:
		return "global"
	case scopeModal:
		return "modal"
	case scopeHome:
		return "home"
	case scopeBreakpoints:
		return "breakpoints"
	case scopeVars:
		return "vars"
	case scopeTrace:
		return "trace"
	case scopeOutput:
		return "output"
	}
	return fmt.Sprintf("scope(%d)", int(s))
}

func scopeForScreen(s Screen) scope {
	switch s {
	case ScreenBreakpoints:
		return scopeBreakpoints
	case ScreenVars:
		return scopeVars
	case ScreenTrace:
		return scopeTrace
	case ScreenOutput:
		return scopeOutput
	default:
		return scopeHome
	}
}

type boundEvent struct {
	binding key.Binding
	event   Event
}

// Keymap routes raw terminal keys to semantic events. Routing is a pure
// function of the pressed key, the active screen, and the modal state; the
// map itself is immutable after construction.
//
// A chord may be bound at most once per reachable scope pair. Because
// screen scopes layer on top of the global scope, a screen chord that
// shadows a global one is a conflict too. register panics on any conflict
// so a bad table is caught the moment the keymap is built rather than
// surfacing as a key that silently does the wrong thing.
type Keymap struct {
	entries map[scope][]boundEvent
	index   map[scope]map[string]Event
}

// NewKeymap builds the default binding table.
func NewKeymap() *Keymap {
	k := &Keymap{
		entries: make(map[scope][]boundEvent),
		index:   make(map[scope]map[string]Event),
	}

	// The modal is a focus trap: these three bindings are the only input
	// it reacts to, and nothing else routes while it presents.
	k.register(scopeModal, []string{"left"}, "←/→", "choose", NavLeft)
	k.register(scopeModal, []string{"right"}, "", "", NavRight)
	k.register(scopeModal, []string{"enter"}, "enter", "confirm", NavSelect)

	k.register(scopeGlobal, []string{"q", "esc", "ctrl+c"}, "q", "quit script", AppExitRequested)
	k.register(scopeGlobal, []string{"c"}, "c", "continue", AppResumeRequested)
	k.register(scopeGlobal, []string{"tab"}, "tab", "next tab", AppNextTab)
	k.register(scopeGlobal, []string{"shift+tab"}, "shift+tab", "prev tab", AppPrevTab)

	k.register(scopeBreakpoints, []string{"up", "k"}, "↑/↓", "choose", BreakpointsPrevRow)
	k.register(scopeBreakpoints, []string{"down", "j"}, "", "", BreakpointsNextRow)
	k.register(scopeBreakpoints, []string{"enter"}, "enter", "arm", BreakpointsSelect)

	k.register(scopeVars, []string{"up", "k"}, "↑/↓", "variable", VarsPrevVar)
	k.register(scopeVars, []string{"down", "j"}, "", "", VarsNextVar)
	k.register(scopeVars, []string{"left"}, "←/→", "pane", VarsFocusList)
	k.register(scopeVars, []string{"right"}, "", "", VarsFocusDetail)
	k.register(scopeVars, []string{"r"}, "r", "raw value", VarsRawDetail)
	k.register(scopeVars, []string{"s"}, "s", "split value", VarsSplitDetail)

	k.register(scopeTrace, []string{"up", "k"}, "↑/↓", "frame", TracePrevFrame)
	k.register(scopeTrace, []string{"down", "j"}, "", "", TraceNextFrame)

	k.register(scopeOutput, []string{"down", "j"}, "↑/↓", "scroll", OutputScrollDown)
	k.register(scopeOutput, []string{"up", "k"}, "", "", OutputScrollUp)

	return k
}

// register binds chords to an event within a scope. helpKey and helpDesc
// feed the footer; an empty helpKey hides the entry there, which lets a
// paired chord like down/j ride on its partner's "↑/↓" label.
func (k *Keymap) register(sc scope, chords []string, helpKey, helpDesc string, ev Event) {
	for _, chord := range chords {
		if prev, ok := k.index[sc][chord]; ok {
			panic(fmt.Sprintf("tui: key %q bound twice in %s scope (%s and %s)", chord, sc, prev, ev))
		}
		switch sc {
		case scopeGlobal:
			for other, idx := range k.index {
				if other == scopeGlobal || other == scopeModal {
					continue
				}
				if prev, ok := idx[chord]; ok {
					panic(fmt.Sprintf("tui: global key %q shadowed by %s binding %s", chord, other, prev))
				}
			}
		case scopeModal:
			// The modal suppresses every other scope, so its chords
			// cannot collide with them.
		default:
			if prev, ok := k.index[scopeGlobal][chord]; ok {
				panic(fmt.Sprintf("tui: %s key %q shadows global binding %s", sc, chord, prev))
			}
		}
		if k.index[sc] == nil {
			k.index[sc] = make(map[string]Event)
		}
		k.index[sc][chord] = ev
	}

	opts := []key.BindingOpt{key.WithKeys(chords...)}
	if helpKey != "" {
		opts = append(opts, key.WithHelp(helpKey, helpDesc))
	}
	k.entries[sc] = append(k.entries[sc], boundEvent{binding: key.NewBinding(opts...), event: ev})
}

// Route maps one key press to at most one event. While the exit modal
// presents, only the modal scope is consulted; otherwise the active
// screen's scope is tried first and the global scope second. Unbound keys
// return nil and are dropped by the caller.
func (k *Keymap) Route(msg tea.KeyMsg, screen Screen, exit ExitState) Event {
	chord := msg.String()
	if exit.Presenting {
		return k.index[scopeModal][chord]
	}
	if ev, ok := k.index[scopeForScreen(screen)][chord]; ok {
		return ev
	}
	return k.index[scopeGlobal][chord]
}

// HelpBindings returns the footer entries for the current state, screen
// bindings first and globals after, modal bindings alone while it is up.
func (k *Keymap) HelpBindings(screen Screen, exit ExitState) []key.Binding {
	if exit.Presenting {
		return k.helpFor(scopeModal)
	}
	out := k.helpFor(scopeForScreen(screen))
	return append(out, k.helpFor(scopeGlobal)...)
}

func (k *Keymap) helpFor(sc scope) []key.Binding {
	var out []key.Binding
	for _, e := range k.entries[sc] {
		if e.binding.Help().Key == "" {
			continue
		}
		out = append(out, e.binding)
	}
	return out
}
