package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/shdbg/shdbg/internal/cli"
	"github.com/shdbg/shdbg/internal/config"
)

const quickStart = `shdbg - interactive tracepoint debugger for shell scripts

Quick start:
  eval "$(shdbg hook bash)"             Install the hook in your script
  tracepoint deploy_step                Mark a spot worth stopping at
  SHDBG_TRACEPOINT=all ./script.sh      Run with tracing armed

For help:
  shdbg --help                          All commands and flags
`

func main() {
	// Show quick start if no args provided
	if len(os.Args) == 1 {
		fmt.Print(quickStart)
		return
	}

	// Load configuration from files/environment. A broken config file must
	// not break a suspended script, so fall back to defaults with a warning.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI
	ctx := kong.Parse(&c,
		kong.Name("shdbg"),
		kong.Description("shdbg: suspend a shell script at a tracepoint and poke around before letting it continue"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
	)

	globals := cli.NewGlobalsWithConfig(&c, cfg)
	err = ctx.Run(globals)
	if err != nil {
		os.Exit(1)
	}
}
