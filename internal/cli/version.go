package cli

import "fmt"

// VersionCmd prints build metadata.
type VersionCmd struct{}

func (v *VersionCmd) Run(globals *Globals) error {
	_, err := fmt.Fprintf(globals.Stdout, "shdbg version %s (commit: %s, built: %s)\n", Version, Commit, Date)
	return err
}
