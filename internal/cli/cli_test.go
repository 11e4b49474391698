package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shdbg/shdbg/internal/config"
	"github.com/shdbg/shdbg/internal/shell"
	"github.com/shdbg/shdbg/internal/tui"
)

// testGlobals creates a Globals struct with captured stdout/stderr
func testGlobals() (*Globals, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &Globals{
		Stdout: stdout,
		Stderr: stderr,
		Stdin:  strings.NewReader(""),
		Config: config.Default(),
	}, stdout, stderr
}

// --- Error Output Tests ---

func TestOutputError(t *testing.T) {
	t.Run("writes code and message to stderr only", func(t *testing.T) {
		globals, stdout, stderr := testGlobals()

		err := outputError(globals, errNoTTY, "no terminal")
		require.Error(t, err)

		assert.Equal(t, "no terminal", err.Error())
		assert.Equal(t, "Error [no-tty]: no terminal\n", stderr.String())
		assert.Empty(t, stdout.String())
	})

	t.Run("appends the hint when present", func(t *testing.T) {
		globals, _, stderr := testGlobals()

		outputError(globals, errUnknownDialect, `unknown shell dialect "bsh"`, `did you mean "bash"?`)

		assert.Equal(t, "Error [unknown-dialect]: unknown shell dialect \"bsh\" (hint: did you mean \"bash\"?)\n", stderr.String())
	})
}

// --- Debug Command Tests ---

func TestDebugCmd_Run(t *testing.T) {
	t.Run("fails on an unknown dialect before touching stdout", func(t *testing.T) {
		globals, stdout, stderr := testGlobals()
		cmd := &DebugCmd{Dialect: "bsh", Tracepoint: "deploy_step"}

		err := cmd.Run(globals)
		require.Error(t, err)

		assert.Contains(t, stderr.String(), "Error [unknown-dialect]")
		assert.Contains(t, stderr.String(), `did you mean "bash"?`)
		assert.Empty(t, stdout.String())
	})

	t.Run("exits silently when tracing is disabled", func(t *testing.T) {
		t.Setenv(shell.ControlVar, "")
		globals, stdout, stderr := testGlobals()
		cmd := &DebugCmd{Dialect: "bash", Tracepoint: "deploy_step"}

		err := cmd.Run(globals)
		require.NoError(t, err)

		assert.Empty(t, stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("exits silently when armed for a different tracepoint", func(t *testing.T) {
		t.Setenv(shell.ControlVar, "migrate_db")
		globals, stdout, stderr := testGlobals()
		cmd := &DebugCmd{Dialect: "bash", Tracepoint: "deploy_step"}

		err := cmd.Run(globals)
		require.NoError(t, err)

		assert.Empty(t, stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("fails without a terminal, stdout untouched", func(t *testing.T) {
		t.Setenv(shell.ControlVar, "all")
		orig := isTerminalFn
		isTerminalFn = func() bool { return false }
		defer func() { isTerminalFn = orig }()

		globals, stdout, stderr := testGlobals()
		cmd := &DebugCmd{Dialect: "bash", Tracepoint: "deploy_step", Stack: "/deploy.sh:12:main\n"}

		err := cmd.Run(globals)
		require.Error(t, err)

		assert.Contains(t, stderr.String(), "Error [no-tty]")
		assert.Contains(t, stderr.String(), shell.ControlVar)
		assert.Empty(t, stdout.String())
	})

	t.Run("warns about malformed stack records", func(t *testing.T) {
		t.Setenv(shell.ControlVar, "all")
		orig := isTerminalFn
		isTerminalFn = func() bool { return false }
		defer func() { isTerminalFn = orig }()

		globals, stdout, stderr := testGlobals()
		cmd := &DebugCmd{Dialect: "bash", Tracepoint: "deploy_step", Stack: "garbage\n/deploy.sh:12:main\n"}

		err := cmd.Run(globals)
		require.Error(t, err)

		assert.Contains(t, stderr.String(), "Warning:")
		assert.Empty(t, stdout.String())
	})

	t.Run("quiet suppresses stack warnings", func(t *testing.T) {
		t.Setenv(shell.ControlVar, "all")
		orig := isTerminalFn
		isTerminalFn = func() bool { return false }
		defer func() { isTerminalFn = orig }()

		globals, _, stderr := testGlobals()
		globals.Quiet = true
		cmd := &DebugCmd{Dialect: "bash", Tracepoint: "deploy_step", Stack: "garbage\n"}

		err := cmd.Run(globals)
		require.Error(t, err)

		assert.NotContains(t, stderr.String(), "Warning:")
	})
}

func TestBuildModel(t *testing.T) {
	opts := tui.Options{
		Tracepoint: "deploy_step",
		Dialect:    shell.Bash,
		Mode:       shell.All,
		Theme:      tui.NewTheme(""),
	}

	m, err := buildModel(opts)
	require.NoError(t, err)
	assert.Equal(t, shell.Resume, m.Decision())
}

// --- Hook Command Tests ---

func TestHookCmd_Run(t *testing.T) {
	t.Run("generates the bash hook", func(t *testing.T) {
		globals, stdout, _ := testGlobals()
		cmd := &HookCmd{Dialect: "bash", Function: "tracepoint"}

		err := cmd.Run(globals)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, `eval "$(shdbg hook bash)"`)
		assert.Contains(t, output, "tracepoint() {")
		assert.Contains(t, output, shell.ControlVar)
		assert.Contains(t, output, `"${__shdbg_name}"|all|next`, "the hook must pre-filter on the stop set")
		assert.Contains(t, output, "BASH_SOURCE")
		assert.Contains(t, output, "BASH_LINENO")
		assert.Contains(t, output, `shdbg debug bash "${__shdbg_name}" --stack "${__shdbg_stack}"`)
		assert.Contains(t, output, "|| return 0")
	})

	t.Run("generates the zsh hook", func(t *testing.T) {
		globals, stdout, _ := testGlobals()
		cmd := &HookCmd{Dialect: "zsh", Function: "tracepoint"}

		err := cmd.Run(globals)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "__shdbg_frames()")
		assert.Contains(t, output, "funcfiletrace")
		assert.Contains(t, output, "funcstack")
		assert.Contains(t, output, `"${__shdbg_name}"|all|next`)
		assert.Contains(t, output, "shdbg debug zsh")
	})

	t.Run("generates the fish hook", func(t *testing.T) {
		globals, stdout, _ := testGlobals()
		cmd := &HookCmd{Dialect: "fish", Function: "tracepoint"}

		err := cmd.Run(globals)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "function tracepoint --argument-names __shdbg_name")
		assert.Contains(t, output, "status stack-trace | string join ';'")
		assert.Contains(t, output, `contains -- "$`+shell.ControlVar+`" "$__shdbg_name" all next`)
		assert.Contains(t, output, "shdbg debug fish")
		assert.Contains(t, output, "or return 0")
	})

	t.Run("honors a custom function name", func(t *testing.T) {
		globals, stdout, _ := testGlobals()
		cmd := &HookCmd{Dialect: "bash", Function: "breakpoint"}

		err := cmd.Run(globals)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "breakpoint() {")
		assert.Contains(t, output, "breakpoint needs a name")
		assert.Contains(t, output, "#   breakpoint step_name")
	})

	t.Run("rejects an invalid function name", func(t *testing.T) {
		globals, stdout, stderr := testGlobals()
		cmd := &HookCmd{Dialect: "bash", Function: "bad name"}

		err := cmd.Run(globals)
		require.Error(t, err)

		assert.Contains(t, stderr.String(), "Error [hook-invalid]")
		assert.Empty(t, stdout.String())
	})

	t.Run("rejects an unknown dialect", func(t *testing.T) {
		globals, stdout, stderr := testGlobals()
		cmd := &HookCmd{Dialect: "powershell", Function: "tracepoint"}

		err := cmd.Run(globals)
		require.Error(t, err)

		assert.Contains(t, stderr.String(), "Error [unknown-dialect]")
		assert.Empty(t, stdout.String())
	})
}

// --- Stack Command Tests ---

func TestStackCmd_Run(t *testing.T) {
	t.Run("renders frames as a table", func(t *testing.T) {
		globals, stdout, stderr := testGlobals()
		cmd := &StackCmd{Dialect: "bash", Raw: "/deploy.sh:12:main\n/deploy.sh:30:deploy\n"}

		err := cmd.Run(globals)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "main")
		assert.Contains(t, output, "deploy")
		assert.Contains(t, output, "/deploy.sh")
		assert.Contains(t, output, "30")
		assert.Empty(t, stderr.String())
	})

	t.Run("reads the stack from stdin when the argument is omitted", func(t *testing.T) {
		globals, stdout, _ := testGlobals()
		globals.Stdin = strings.NewReader("/deploy.sh:12:main\n")
		cmd := &StackCmd{Dialect: "bash"}

		err := cmd.Run(globals)
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "main")
	})

	t.Run("drops malformed records with a warning", func(t *testing.T) {
		globals, stdout, stderr := testGlobals()
		cmd := &StackCmd{Dialect: "bash", Raw: "garbage\n/deploy.sh:12:main\n"}

		err := cmd.Run(globals)
		require.NoError(t, err)

		assert.Contains(t, stderr.String(), "Warning:")
		assert.Contains(t, stdout.String(), "main")
	})

	t.Run("skips the zsh capture plumbing", func(t *testing.T) {
		globals, stdout, _ := testGlobals()
		raw := "/hook.zsh:9:__shdbg_frames\n/hook.zsh:5:tracepoint\n/deploy.zsh:42:deploy\n"
		cmd := &StackCmd{Dialect: "zsh", Raw: raw}

		err := cmd.Run(globals)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "deploy")
		assert.NotContains(t, output, "__shdbg_frames")
	})

	t.Run("reports an empty stack", func(t *testing.T) {
		globals, stdout, _ := testGlobals()
		cmd := &StackCmd{Dialect: "bash", Raw: "\n"}

		err := cmd.Run(globals)
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "No frames")
	})

	t.Run("rejects an unknown dialect", func(t *testing.T) {
		globals, _, stderr := testGlobals()
		cmd := &StackCmd{Dialect: "fsh", Raw: "x"}

		err := cmd.Run(globals)
		require.Error(t, err)

		assert.Contains(t, stderr.String(), "Error [unknown-dialect]")
		assert.Contains(t, stderr.String(), `did you mean "fish"?`)
	})
}

// --- Config Command Tests ---

func TestConfigShowCmd_Run(t *testing.T) {
	t.Run("outputs the effective configuration", func(t *testing.T) {
		globals, stdout, _ := testGlobals()
		cmd := &ConfigShowCmd{}

		err := cmd.Run(globals)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "Current Configuration:")
		assert.Contains(t, output, "accent_color:")
		assert.Contains(t, output, "(default)")
		assert.Contains(t, output, "source_context: 6")
		assert.Contains(t, output, "log.enabled:    true")
	})

	t.Run("rejects an invalid configuration", func(t *testing.T) {
		globals, _, stderr := testGlobals()
		globals.Config.SourceContext = 0
		cmd := &ConfigShowCmd{}

		err := cmd.Run(globals)
		require.Error(t, err)

		assert.Contains(t, stderr.String(), "Error [config-invalid]")
	})
}

func TestConfigPathCmd_Run(t *testing.T) {
	globals, stdout, _ := testGlobals()
	cmd := &ConfigPathCmd{}

	err := cmd.Run(globals)
	require.NoError(t, err)

	output := stdout.String()
	// Either shows the path or says no config found
	assert.True(t, strings.Contains(output, "Config file:") || strings.Contains(output, "No configuration file found"))
}

func TestConfigGenerateCmd_Run(t *testing.T) {
	globals, stdout, _ := testGlobals()
	cmd := &ConfigGenerateCmd{}

	err := cmd.Run(globals)
	require.NoError(t, err)

	output := stdout.String()
	assert.Contains(t, output, "# shdbg configuration file")
	assert.Contains(t, output, "accent_color:")
	assert.Contains(t, output, "source_context: 6")
	assert.Contains(t, output, "log:")
	assert.Contains(t, output, "SHDBG_")
}

// --- Completion Command Tests ---

func TestCompletionCmd_Run(t *testing.T) {
	t.Run("generates bash completions", func(t *testing.T) {
		globals, stdout, _ := testGlobals()
		cmd := &CompletionCmd{Shell: "bash"}

		err := cmd.Run(globals, nil)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "complete -F _shdbg_completions shdbg")
		assert.Contains(t, output, "debug|hook|stack")
		assert.Contains(t, output, "bash zsh fish")
	})

	t.Run("generates zsh completions", func(t *testing.T) {
		globals, stdout, _ := testGlobals()
		cmd := &CompletionCmd{Shell: "zsh"}

		err := cmd.Run(globals, nil)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "#compdef shdbg")
		assert.Contains(t, output, "compdef _shdbg shdbg")
	})

	t.Run("generates fish completions", func(t *testing.T) {
		globals, stdout, _ := testGlobals()
		cmd := &CompletionCmd{Shell: "fish"}

		err := cmd.Run(globals, nil)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "complete -c shdbg -f")
		assert.Contains(t, output, "__fish_seen_subcommand_from debug hook stack")
	})

	t.Run("rejects an unsupported shell", func(t *testing.T) {
		globals, _, _ := testGlobals()
		cmd := &CompletionCmd{Shell: "powershell"}

		err := cmd.Run(globals, nil)
		assert.Error(t, err)
	})
}

// --- Update Command Tests ---

func TestUpdateCmd_Run(t *testing.T) {
	globals, stdout, _ := testGlobals()
	cmd := &UpdateCmd{}

	err := cmd.Run(globals)
	require.NoError(t, err)

	output := stdout.String()
	assert.Contains(t, output, "shdbg update instructions")
	assert.Contains(t, output, "brew update && brew upgrade shdbg")
	assert.Contains(t, output, "go install github.com/shdbg/shdbg/cmd/shdbg@latest")
}

// --- Version Command Tests ---

func TestVersionCmd_Run(t *testing.T) {
	globals, stdout, _ := testGlobals()
	cmd := &VersionCmd{}

	err := cmd.Run(globals)
	require.NoError(t, err)

	output := stdout.String()
	assert.Contains(t, output, "shdbg version")
	assert.Contains(t, output, "commit:")
}

// --- Session Logger Tests ---

func TestSessionLogger(t *testing.T) {
	t.Run("no-op without a log file", func(t *testing.T) {
		log := newSessionLogger(&Globals{Config: config.Default()})

		assert.NotPanics(t, func() {
			log.Debugf("debug %d", 1)
			log.Infof("info %d", 2)
			log.Sync()
		})
	})

	t.Run("no-op on nil globals", func(t *testing.T) {
		log := newSessionLogger(nil)
		assert.NotPanics(t, func() { log.Infof("x") })
	})

	t.Run("writes json lines with an invocation id", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "shdbg.log")
		globals, _, _ := testGlobals()
		globals.LogFile = logFile
		globals.Verbose = true

		log := newSessionLogger(globals)
		log.Infof("session for %s", "deploy_step")
		log.Debugf("detail")
		log.Sync()

		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), "session for deploy_step")
		assert.Contains(t, string(data), "invocation_id")
		assert.Contains(t, string(data), "detail")
	})

	t.Run("respects log.enabled=false", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "shdbg.log")
		globals, _, _ := testGlobals()
		globals.LogFile = logFile
		globals.Config.Log.Enabled = false

		log := newSessionLogger(globals)
		log.Infof("nothing")
		log.Sync()

		_, err := os.Stat(logFile)
		assert.True(t, os.IsNotExist(err))
	})
}

func TestRotateLogFile(t *testing.T) {
	t.Run("rotates once past the cap", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "shdbg.log")
		require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), 100), 0o644))

		rotateLogFile(path, 10)

		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
		rotated, err := os.ReadFile(path + ".1")
		require.NoError(t, err)
		assert.Len(t, rotated, 100)
	})

	t.Run("leaves small files alone", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "shdbg.log")
		require.NoError(t, os.WriteFile(path, []byte("small"), 0o644))

		rotateLogFile(path, 1<<20)

		_, err := os.Stat(path)
		assert.NoError(t, err)
		_, err = os.Stat(path + ".1")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("ignores a missing file", func(t *testing.T) {
		assert.NotPanics(t, func() {
			rotateLogFile(filepath.Join(t.TempDir(), "absent.log"), 10)
		})
	})
}

// --- Globals Tests ---

func TestNewGlobalsWithConfig(t *testing.T) {
	t.Run("flags and config toggles are ORed", func(t *testing.T) {
		cfg := config.Default()
		cfg.Verbose = true
		c := &CLI{Quiet: true}

		g := NewGlobalsWithConfig(c, cfg)

		assert.True(t, g.Quiet)
		assert.True(t, g.Verbose)
	})

	t.Run("log file falls back to the config default", func(t *testing.T) {
		g := NewGlobalsWithConfig(&CLI{}, config.Default())
		assert.True(t, strings.HasSuffix(g.LogFile, "shdbg.log"))
	})

	t.Run("log file flag wins", func(t *testing.T) {
		g := NewGlobalsWithConfig(&CLI{LogFile: "/tmp/custom.log"}, config.Default())
		assert.Equal(t, "/tmp/custom.log", g.LogFile)
	})
}
