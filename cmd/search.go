package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type searchCmd struct {
	limit int
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search mutual fund schemes by name" }
func (*searchCmd) Usage() string {
	return `search [-n <limit>] <keyword>...

  Searches the scheme listing by case-insensitive name match and prints the
  matching scheme codes. The first search of the day downloads the full
  listing; it is cached afterwards.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 20, "maximum number of matches to print")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "a search keyword is required")
		return subcommands.ExitUsageError
	}
	keyword := strings.Join(f.Args(), " ")

	matches, err := feed().Search(keyword)
	if err != nil {
		return fail(err)
	}
	if len(matches) == 0 {
		fmt.Printf("No scheme matches %q.\n", keyword)
		return subcommands.ExitSuccess
	}

	shown := matches
	if c.limit > 0 && len(shown) > c.limit {
		shown = shown[:c.limit]
	}
	for _, s := range shown {
		fmt.Printf("%d\t%s\n", s.Code, s.Name)
	}
	if len(shown) < len(matches) {
		fmt.Printf("... and %d more matches, raise -n to see them.\n", len(matches)-len(shown))
	}
	return subcommands.ExitSuccess
}
