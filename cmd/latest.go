package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type latestCmd struct {
	scheme int
}

func (*latestCmd) Name() string     { return "latest" }
func (*latestCmd) Synopsis() string { return "show the latest published NAV of a scheme" }
func (*latestCmd) Usage() string {
	return `latest -s <scheme-code>

  Prints the newest NAV published for the scheme.
`
}

func (c *latestCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.scheme, "s", 0, "scheme code (find it with the search command)")
}

func (c *latestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.scheme == 0 {
		fmt.Fprintln(os.Stderr, "-s <scheme-code> is required")
		return subcommands.ExitUsageError
	}

	p, err := feed().Latest(c.scheme)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("%s\t%.4f\n", p.Date, p.NAV)
	return subcommands.ExitSuccess
}
