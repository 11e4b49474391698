package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResumeTerminate(t *testing.T) {
	for _, d := range []Dialect{Bash, Zsh, Fish} {
		t.Run(d.String(), func(t *testing.T) {
			code, err := GenerateResume(d, Terminate, All, nil)
			require.NoError(t, err)
			assert.Equal(t, "exit 1\n", code)
		})
	}
}

func TestGenerateResumeNextClearsControlVariable(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    string
	}{
		{Bash, "unset SHDBG_TRACEPOINT\n"},
		{Zsh, "unset SHDBG_TRACEPOINT\n"},
		{Fish, "set -e SHDBG_TRACEPOINT\n"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect.String(), func(t *testing.T) {
			code, err := GenerateResume(tt.dialect, Resume, Next, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestGenerateResumeQuietModes(t *testing.T) {
	for _, mode := range []TraceMode{Disabled, All, Named("start")} {
		t.Run(mode.String(), func(t *testing.T) {
			for _, d := range []Dialect{Bash, Zsh, Fish} {
				code, err := GenerateResume(d, Resume, mode, nil)
				require.NoError(t, err)
				assert.Empty(t, code, "resuming in %s mode must not touch the caller", mode)
			}
		})
	}
}

func TestGenerateResumeArming(t *testing.T) {
	named := Named("deploy_step")
	all := All
	next := Next
	disarm := Disabled

	tests := []struct {
		name    string
		dialect Dialect
		armed   *TraceMode
		want    string
	}{
		{"bash named", Bash, &named, "export SHDBG_TRACEPOINT=deploy_step\n"},
		{"zsh named", Zsh, &named, "export SHDBG_TRACEPOINT=deploy_step\n"},
		{"fish named", Fish, &named, "set -gx SHDBG_TRACEPOINT 'deploy_step'\n"},
		{"bash all", Bash, &all, "export SHDBG_TRACEPOINT=all\n"},
		{"bash next", Bash, &next, "export SHDBG_TRACEPOINT=next\n"},
		{"bash disarm", Bash, &disarm, "unset SHDBG_TRACEPOINT\n"},
		{"fish disarm", Fish, &disarm, "set -e SHDBG_TRACEPOINT\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := GenerateResume(tt.dialect, Resume, Named("current"), tt.armed)
			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestGenerateResumeArmedOverridesNextClear(t *testing.T) {
	armed := All
	code, err := GenerateResume(Bash, Resume, Next, &armed)
	require.NoError(t, err)
	assert.Equal(t, "export SHDBG_TRACEPOINT=all\n", code,
		"the export overwrites the variable, which also consumes the one-shot")
}

func TestGenerateResumeTerminateIgnoresArming(t *testing.T) {
	armed := Named("later")
	code, err := GenerateResume(Fish, Terminate, Next, &armed)
	require.NoError(t, err)
	assert.Equal(t, "exit 1\n", code)
}

func TestGenerateResumeSynthesisFailures(t *testing.T) {
	t.Run("unsupported dialect", func(t *testing.T) {
		code, err := GenerateResume(Dialect(99), Resume, Next, nil)
		require.Error(t, err)
		assert.Empty(t, code, "a failed synthesis must not leave partial text behind")
	})

	t.Run("armed named with empty name", func(t *testing.T) {
		armed := Named("")
		code, err := GenerateResume(Bash, Resume, Disabled, &armed)
		require.Error(t, err)
		assert.Empty(t, code)
	})
}

func TestNextModeOneShotAcrossInvocations(t *testing.T) {
	// First hit: the variable holds "next", so the call stops.
	mode, stop := ResolveMode("next", "start")
	require.True(t, stop)

	code, err := GenerateResume(Bash, Resume, mode, nil)
	require.NoError(t, err)
	require.Equal(t, "unset SHDBG_TRACEPOINT\n", code)

	// The wrapper evaluates the unset, so the second hit reads an empty
	// value, whatever its tracepoint name.
	_, stop = ResolveMode("", "start")
	assert.False(t, stop)
	_, stop = ResolveMode("", "finish")
	assert.False(t, stop)
}

func TestAllModePersistsAcrossInvocations(t *testing.T) {
	for _, tracepoint := range []string{"start", "end"} {
		mode, stop := ResolveMode("all", tracepoint)
		require.True(t, stop, tracepoint)

		code, err := GenerateResume(Bash, Resume, mode, nil)
		require.NoError(t, err)
		assert.Empty(t, code, "all mode must not mutate the control variable")
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantPosix string
		wantFish  string
	}{
		{"bare word", "deploy", "deploy", "'deploy'"},
		{"space", "a b", "'a b'", "'a b'"},
		{"single quote", "it's", `'it'"'"'s'`, `'it\'s'`},
		{"dollar", "$HOME", `'$HOME'`, `'$HOME'`},
		{"semicolon", "a;rm -rf", `'a;rm -rf'`, `'a;rm -rf'`},
		{"backslash", `a\b`, `'a\b'`, `'a\\b'`},
		{"empty", "", "''", "''"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPosix, Quote(Bash, tt.value))
			assert.Equal(t, tt.wantPosix, Quote(Zsh, tt.value))
			assert.Equal(t, tt.wantFish, Quote(Fish, tt.value))
		})
	}
}
