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

type analyzeCmd struct {
	scheme    int
	last      int
	threshold float64
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "find historical buying opportunities in a scheme" }
func (*analyzeCmd) Usage() string {
	return `analyze -s <scheme-code> [-last <n>] [-threshold <pct>]

  Lists the days whose NAV dropped by at least the threshold, scored by drop
  magnitude, best opportunities first.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.scheme, "s", 0, "scheme code (find it with the search command)")
	f.IntVar(&c.last, "last", 365, "number of most recent records to analyze, 0 for all")
	f.Float64Var(&c.threshold, "threshold", -1.0, "qualifying day-over-day change, in percent (negative)")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.scheme == 0 {
		fmt.Fprintln(os.Stderr, "-s <scheme-code> is required")
		return subcommands.ExitUsageError
	}
	if c.threshold > 0 {
		fmt.Fprintln(os.Stderr, "-threshold must be negative: it is a drop")
		return subcommands.ExitUsageError
	}

	name, s, err := fetch(c.scheme, c.last)
	if err != nil {
		return fail(err)
	}
	threshold := sipfolio.Percent(c.threshold)
	opps := sipfolio.Opportunities(s, threshold)
	printMarkdown(renderer.OpportunitiesMarkdown(name, threshold, opps))
	return subcommands.ExitSuccess
}
