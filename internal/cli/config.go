package cli

import (
	"fmt"

	"github.com/shdbg/shdbg/internal/config"
	"github.com/shdbg/shdbg/internal/tui"
)

// ConfigCmd groups the configuration subcommands.
type ConfigCmd struct {
	Show     ConfigShowCmd     `cmd:"" help:"Print the effective configuration."`
	Path     ConfigPathCmd     `cmd:"" help:"Print the path of the configuration file in use."`
	Generate ConfigGenerateCmd `cmd:"" help:"Print a sample configuration file."`
}

// ConfigShowCmd prints the configuration the process is running with,
// after defaults, file and environment overrides have been merged.
type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(globals *Globals) error {
	cfg := globals.Config
	if err := cfg.Validate(); err != nil {
		return outputError(globals, errConfigInvalid, err.Error())
	}

	accent := cfg.AccentColor
	if accent == "" {
		accent = tui.DefaultAccent + " (default)"
	}

	fmt.Fprintln(globals.Stdout, "Current Configuration:")
	fmt.Fprintf(globals.Stdout, "  accent_color:   %s\n", accent)
	fmt.Fprintf(globals.Stdout, "  source_context: %d\n", cfg.SourceContext)
	fmt.Fprintf(globals.Stdout, "  quiet:          %v\n", cfg.Quiet)
	fmt.Fprintf(globals.Stdout, "  verbose:        %v\n", cfg.Verbose)
	fmt.Fprintf(globals.Stdout, "  log.enabled:    %v\n", cfg.Log.Enabled)
	fmt.Fprintf(globals.Stdout, "  log.file:       %s\n", cfg.LogFile())
	return nil
}

// ConfigPathCmd reports which file the configuration was read from.
type ConfigPathCmd struct{}

func (c *ConfigPathCmd) Run(globals *Globals) error {
	path := config.File()
	if path == "" {
		fmt.Fprintln(globals.Stdout, "No configuration file found (using defaults)")
		return nil
	}
	fmt.Fprintf(globals.Stdout, "Config file: %s\n", path)
	return nil
}

// ConfigGenerateCmd prints a commented sample file to stdout, ready to
// be redirected into ~/.shdbg.yaml.
type ConfigGenerateCmd struct{}

func (c *ConfigGenerateCmd) Run(globals *Globals) error {
	_, err := fmt.Fprint(globals.Stdout, sampleConfig)
	return err
}

const sampleConfig = `# shdbg configuration file
# Save as .shdbg.yaml in your home directory, the working directory,
# or /etc/shdbg/. Environment variables with the SHDBG_ prefix override
# file values (e.g. SHDBG_ACCENT_COLOR).

# Accent color for the interface: "#rrggbb" or a 256-color index.
accent_color: "#AF87FF"

# Lines of source shown above and below the current line on the trace screen.
source_context: 6

# Suppress warnings on stderr.
quiet: false

# Log debug detail to the session log file.
verbose: false

log:
  enabled: true
  # Defaults to ~/.shdbg/shdbg.log.
  # file: /tmp/shdbg.log
`
