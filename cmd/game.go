package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
)

type gameCmd struct{}

func (*gameCmd) Name() string     { return "game" }
func (*gameCmd) Synopsis() string { return "guess how much you spent on a random category" }
func (*gameCmd) Usage() string {
	return `game

  Picks a random category from your records and asks you to guess the total
  spent on it. Feedback depends on how close the guess lands.
`
}

func (*gameCmd) SetFlags(*flag.FlagSet) {}

func (*gameCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := OpenLedger()
	totals := fintrack.CategoryTotals(ledger.List(""))
	if len(totals) == 0 {
		fmt.Fprintln(os.Stderr, "Add some transactions first to play the game!")
		return subcommands.ExitFailure
	}

	target := totals[rand.Intn(len(totals))]
	fmt.Printf("Guess the total amount spent on %q: ", target.Category)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading guess: %v\n", err)
		return subcommands.ExitFailure
	}
	guess, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		guess = 0
	}

	actual, _ := target.Total.Float64()
	diff := math.Abs(guess - actual)
	accuracy := 0.0
	if actual != 0 {
		accuracy = (1 - diff/actual) * 100
	}

	switch {
	case diff == 0:
		fmt.Printf("Perfect! You nailed it! The total was exactly %.2f.\n", actual)
	case accuracy > 90:
		fmt.Printf("So close! The actual total was %.2f. Your accuracy: %.1f%%\n", actual, accuracy)
	case accuracy > 50:
		fmt.Printf("Not bad! The actual total was %.2f. Accuracy: %.1f%%\n", actual, accuracy)
	default:
		fmt.Printf("A bit off! The actual total was %.2f. Try tracking your spending more closely!\n", actual)
	}
	return subcommands.ExitSuccess
}
