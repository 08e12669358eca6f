package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ketandv/sipfolio"
	"github.com/ketandv/sipfolio/renderer"
)

type backtestCmd struct {
	scheme int
	amount float64
	last   int
	window int
}

func (*backtestCmd) Name() string     { return "backtest" }
func (*backtestCmd) Synopsis() string { return "compare fixed and enhanced SIP over real history" }
func (*backtestCmd) Usage() string {
	return `backtest -s <scheme-code> [-amount <base>] [-last <n>] [-window <months>]

  Replays a monthly SIP over the scheme's history with both the fixed and
  the enhanced strategy, and reports them side by side with rolling returns.
`
}

func (c *backtestCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.scheme, "s", 0, "scheme code (find it with the search command)")
	f.Float64Var(&c.amount, "amount", 5000, "base monthly SIP amount, in INR")
	f.IntVar(&c.last, "last", 0, "number of most recent records to analyze, 0 for all")
	f.IntVar(&c.window, "window", sipfolio.DefaultWindow, "rolling return window, in months")
}

func (c *backtestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.scheme == 0 {
		fmt.Fprintln(os.Stderr, "-s <scheme-code> is required")
		return subcommands.ExitUsageError
	}
	if c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "-amount must be positive")
		return subcommands.ExitUsageError
	}

	name, s, err := fetch(c.scheme, c.last)
	if err != nil {
		return fail(err)
	}
	cmp, err := sipfolio.Compare(s, sipfolio.INR(c.amount), c.window)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ComparisonMarkdown(name, cmp))
	return subcommands.ExitSuccess
}
