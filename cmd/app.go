// Package cmd implements the CLI application to track personal expenses.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "records")
	c.Register(&editCmd{}, "records")
	c.Register(&deleteCmd{}, "records")
	c.Register(&showCmd{}, "records")
	c.Register(&listCmd{}, "records")

	c.Register(&reportCmd{}, "reports")
	c.Register(&settingsCmd{}, "reports")

	c.Register(&importCmd{}, "data")
	c.Register(&exportCmd{}, "data")

	c.Register(&interestCmd{}, "tools")
	c.Register(&gameCmd{}, "tools")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", defaultDataDir(), "Path to the application data folder")

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".fintrack")
	}
	return ".fintrack"
}

// OpenLedger is the central function to open the record collection and
// settings from the app data folder. Missing or corrupt files degrade to an
// empty collection and default settings rather than failing.
func OpenLedger() *fintrack.Ledger {
	l := fintrack.NewLedger(fintrack.NewDirStorage(*dataDir))
	l.Init()
	return l
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when styling fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// printFieldErrors writes one validation message per failing field, in rule
// order, to stderr.
func printFieldErrors(errs map[string]string) {
	for _, field := range fintrack.RuleFields() {
		if msg, ok := errs[field]; ok {
			fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
		}
	}
}
