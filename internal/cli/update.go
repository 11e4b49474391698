package cli

import "fmt"

// UpdateCmd shows how to upgrade shdbg.
type UpdateCmd struct{}

const (
	homebrewCmd  = "brew update && brew upgrade shdbg"
	goInstallCmd = "go install github.com/shdbg/shdbg/cmd/shdbg@latest"
	releasesURL  = "https://github.com/shdbg/shdbg/releases"
)

func (c *UpdateCmd) Run(globals *Globals) error {
	fmt.Fprintln(globals.Stdout, "shdbg update instructions")
	fmt.Fprintln(globals.Stdout)
	fmt.Fprintf(globals.Stdout, "Current version: %s (%s)\n", Version, Commit)
	fmt.Fprintln(globals.Stdout)
	fmt.Fprintln(globals.Stdout, "To upgrade via Homebrew:")
	fmt.Fprintf(globals.Stdout, "  %s\n", homebrewCmd)
	fmt.Fprintln(globals.Stdout)
	fmt.Fprintln(globals.Stdout, "To upgrade via Go:")
	fmt.Fprintf(globals.Stdout, "  %s\n", goInstallCmd)
	fmt.Fprintln(globals.Stdout)
	fmt.Fprintln(globals.Stdout, "For release notes, see:")
	fmt.Fprintf(globals.Stdout, "  %s\n", releasesURL)

	return nil
}
