package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the collection with records from a JSON file" }
func (*importCmd) Usage() string {
	return `import -f <file>

  Validates the file and, when every record passes, replaces the whole
  collection with its contents. A single bad record rejects the file and
  leaves the collection untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Path to the JSON file to import")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening import file %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	result := fintrack.ImportRecords(in)
	if !result.Valid {
		fmt.Fprintf(os.Stderr, "Error: %s\n", result.Message)
		return subcommands.ExitFailure
	}

	ledger := OpenLedger()
	ledger.ReplaceAll(result.Data)
	fmt.Printf("Successfully imported %d records from %s\n", len(result.Data), c.file)
	return subcommands.ExitSuccess
}
