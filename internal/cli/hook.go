package cli

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/shdbg/shdbg/internal/shell"
)

// HookCmd prints the tracepoint hook for one dialect. The hook defines
// the function scripts call at interesting spots; it captures the call
// stack in the dialect's native form, hands it to `shdbg debug`, and
// evals whatever comes back on stdout.
type HookCmd struct {
	Dialect  string `arg:"" help:"Shell dialect to generate the hook for (bash, zsh, fish)."`
	Function string `help:"Name of the tracepoint function." default:"tracepoint"`
}

var functionNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func (h *HookCmd) Run(globals *Globals) error {
	dialect, err := shell.ParseDialect(h.Dialect)
	if err != nil {
		hint := ""
		var unknown *shell.UnknownDialectError
		if errors.As(err, &unknown) && unknown.Suggestion != "" {
			hint = fmt.Sprintf("did you mean %q?", unknown.Suggestion)
		}
		return outputError(globals, errUnknownDialect, err.Error(), hint)
	}
	if !functionNamePattern.MatchString(h.Function) {
		return outputError(globals, errHookInvalid,
			fmt.Sprintf("%q is not a valid shell function name", h.Function))
	}

	switch dialect {
	case shell.Zsh:
		_, err = fmt.Fprintf(globals.Stdout, zshHook, h.Function, shell.ControlVar)
	case shell.Fish:
		_, err = fmt.Fprintf(globals.Stdout, fishHook, h.Function, shell.ControlVar)
	default:
		_, err = fmt.Fprintf(globals.Stdout, bashHook, h.Function, shell.ControlVar)
	}
	return err
}

// The bash stack is rebuilt gdb-style inside the hook: row i pairs
// FUNCNAME[i] with the call site recorded one slot lower, so every line
// reads "this function, currently at this file and line". The loop starts
// at 1 to leave the hook function itself out. The case filter must match
// the resolver's stop set; a value that cannot stop returns before any
// capture or spawn.
const bashHook = `# shdbg bash hook
# Install by adding this line near the top of your script:
#   eval "$(shdbg hook bash)"
#
# Then mark interesting spots with:
#   %[1]s step_name

%[1]s() {
    local __shdbg_name="${1:?%[1]s needs a name}"
    case "${%[2]s:-}" in
        "${__shdbg_name}"|all|next) ;;
        *) return 0 ;;
    esac
    local __shdbg_stack="" __shdbg_i
    for ((__shdbg_i=1; __shdbg_i < ${#FUNCNAME[@]}; __shdbg_i++)); do
        __shdbg_stack+="${BASH_SOURCE[__shdbg_i]}:${BASH_LINENO[__shdbg_i-1]}:${FUNCNAME[__shdbg_i]}"$'\n'
    done
    local __shdbg_out
    __shdbg_out="$(shdbg debug bash "${__shdbg_name}" --stack "${__shdbg_stack}")" || return 0
    [ -n "${__shdbg_out}" ] && eval "${__shdbg_out}"
    return 0
}
`

// zsh keeps funcfiletrace and funcstack aligned, so the helper emits them
// as-is; the debugger knows to drop the helper and hook frames.
const zshHook = `# shdbg zsh hook
# Install by adding this line near the top of your script:
#   eval "$(shdbg hook zsh)"
#
# Then mark interesting spots with:
#   %[1]s step_name

__shdbg_frames() {
    local i
    for ((i=1; i <= ${#funcstack[@]}; i++)); do
        print -r -- "${funcfiletrace[i]}:${funcstack[i]}"
    done
}

%[1]s() {
    local __shdbg_name="${1:?%[1]s needs a name}"
    case "${%[2]s:-}" in
        "${__shdbg_name}"|all|next) ;;
        *) return 0 ;;
    esac
    local __shdbg_stack __shdbg_out
    __shdbg_stack="$(__shdbg_frames)"
    __shdbg_out="$(shdbg debug zsh "${__shdbg_name}" --stack "${__shdbg_stack}")" || return 0
    [[ -n "${__shdbg_out}" ]] && eval "${__shdbg_out}"
    return 0
}
`

// fish multiline output would be space-joined by eval, which is fine
// because every directive the debugger emits is a single line.
const fishHook = `# shdbg fish hook
# Install by adding this line near the top of your script:
#   eval (shdbg hook fish | string collect)
#
# Then mark interesting spots with:
#   %[1]s step_name

function %[1]s --argument-names __shdbg_name
    if test -z "$__shdbg_name"
        echo "%[1]s needs a name" >&2
        return 1
    end
    if not contains -- "$%[2]s" "$__shdbg_name" all next
        return 0
    end
    set -l __shdbg_stack (status stack-trace | string join ';')
    set -l __shdbg_out (shdbg debug fish "$__shdbg_name" --stack "$__shdbg_stack")
    or return 0
    if test -n "$__shdbg_out"
        eval "$__shdbg_out"
    end
    return 0
end
`
