package cli

import (
	"io"
	"os"

	"github.com/shdbg/shdbg/internal/config"
)

// Build metadata, set via -ldflags at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// CLI is the top-level command tree parsed by kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log debug detail to the session log file."`
	Quiet   bool   `short:"q" help:"Suppress warnings on stderr."`
	LogFile string `help:"Session log file (defaults to ~/.shdbg/shdbg.log)." placeholder:"PATH"`

	Debug      DebugCmd      `cmd:"" help:"Suspend the calling script in the interactive debugger (invoked by the hook)."`
	Hook       HookCmd       `cmd:"" help:"Print the tracepoint hook for a shell dialect."`
	Stack      StackCmd      `cmd:"" help:"Parse a raw captured call stack and print the frames."`
	Config     ConfigCmd     `cmd:"" help:"Inspect or bootstrap the configuration."`
	Completion CompletionCmd `cmd:"" help:"Generate shell completions."`
	Update     UpdateCmd     `cmd:"" help:"Show how to upgrade shdbg."`
	Version    VersionCmd    `cmd:"" help:"Print version information."`
}

// Globals carries cross-command state into every Run method. The stream
// fields exist so tests can capture output; stdout in particular is the
// resume-code protocol channel and stays clean of diagnostics.
type Globals struct {
	Verbose bool
	Quiet   bool
	LogFile string

	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Config *config.Config
}

// NewGlobalsWithConfig binds parsed flags and the loaded config to the
// real process streams. Flags win over config for the toggles they share.
func NewGlobalsWithConfig(c *CLI, cfg *config.Config) *Globals {
	g := &Globals{
		Verbose: c.Verbose || cfg.Verbose,
		Quiet:   c.Quiet || cfg.Quiet,
		LogFile: c.LogFile,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Stdin:   os.Stdin,
		Config:  cfg,
	}
	if g.LogFile == "" {
		g.LogFile = cfg.LogFile()
	}
	return g
}
