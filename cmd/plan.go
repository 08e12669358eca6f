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

type planCmd struct {
	scheme int
	amount float64
	last   int
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "recommend this month's SIP contribution" }
func (*planCmd) Usage() string {
	return `plan -s <scheme-code> -amount <base>

  Recommends how much to invest this month, scaling the base amount with the
  latest NAV movement.
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.scheme, "s", 0, "scheme code (find it with the search command)")
	f.Float64Var(&c.amount, "amount", 5000, "base monthly SIP amount, in INR")
	f.IntVar(&c.last, "last", 30, "number of most recent records to consider")
}

func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	plan, err := sipfolio.MonthlyPlan(s, sipfolio.INR(c.amount))
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.PlanMarkdown(name, plan))
	return subcommands.ExitSuccess
}
