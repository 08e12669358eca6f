package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ketandv/sipfolio/renderer"
)

type historyCmd struct {
	scheme int
	last   int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display a scheme's enriched NAV history" }
func (*historyCmd) Usage() string {
	return `history -s <scheme-code> [-last <n>]

  Displays the NAV history with day-over-day change, 7 and 30 day moving
  averages, and 7 day volatility.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.scheme, "s", 0, "scheme code (find it with the search command)")
	f.IntVar(&c.last, "last", 90, "number of most recent records to analyze, 0 for all")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.scheme == 0 {
		fmt.Fprintln(os.Stderr, "-s <scheme-code> is required")
		return subcommands.ExitUsageError
	}

	name, s, err := fetch(c.scheme, c.last)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.HistoryMarkdown(name, s))
	return subcommands.ExitSuccess
}
