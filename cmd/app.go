// Package cmd implements the CLI application to analyze mutual fund NAV
// histories and simulate SIP strategies on them.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/ketandv/sipfolio"
	"github.com/ketandv/sipfolio/mfapi"
)

// Register the subcommands. A main package calls Register() and then
// Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&searchCmd{}, "schemes")
	c.Register(&latestCmd{}, "schemes")

	c.Register(&historyCmd{}, "analysis")
	c.Register(&analyzeCmd{}, "analysis")
	c.Register(&planCmd{}, "analysis")
	c.Register(&backtestCmd{}, "analysis")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// share one lazily-created client.
var client *mfapi.Client

func feed() *mfapi.Client {
	if client == nil {
		client = mfapi.New()
	}
	return client
}

// fetch loads a scheme's details and prepares its series, keeping the last
// most recent raw records. It is the shared front door of all analysis
// commands.
func fetch(code, last int) (string, sipfolio.Series, error) {
	details, err := feed().Details(code)
	if err != nil {
		return "", nil, err
	}
	s, err := sipfolio.NewSeries(details.Data, last)
	if err != nil {
		return "", nil, fmt.Errorf("scheme %d: %w", code, err)
	}
	return details.Meta.SchemeName, s, nil
}

// printMarkdown renders a markdown report for the terminal, falling back to
// the raw text when the renderer is not available.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail reports an error the way every subcommand does.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
