package renderer

import (
	"bytes"
	"fmt"

	"github.com/ketandv/sipfolio"
	md "github.com/nao1215/markdown"
)

// ComparisonMarkdown renders a fixed-versus-enhanced backtest side by side.
func ComparisonMarkdown(scheme string, c *sipfolio.Comparison) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("SIP Backtest for %s", scheme))
	doc.PlainText(fmt.Sprintf("%d monthly contributions from %s to %s",
		len(c.Fixed.Contributions),
		c.Fixed.Contributions[0].Date,
		c.Fixed.Contributions[len(c.Fixed.Contributions)-1].Date))

	doc.H2("Strategies")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"", "Fixed", "Enhanced"},
		Rows: [][]string{
			{"Invested", c.Fixed.TotalInvested.String(), c.Enhanced.TotalInvested.String()},
			{"Units", c.Fixed.TotalUnits.String(), c.Enhanced.TotalUnits.String()},
			{"Final Value", c.Fixed.FinalValue.String(), c.Enhanced.FinalValue.String()},
			{"Absolute Return", c.Fixed.AbsoluteReturn.SignedString(), c.Enhanced.AbsoluteReturn.SignedString()},
			{"Return", c.Fixed.ReturnPercent.SignedString(), c.Enhanced.ReturnPercent.SignedString()},
			{"CAGR", c.Fixed.CAGR.SignedString(), c.Enhanced.CAGR.SignedString()},
		},
	}
	doc.Table(table)

	doc.H2(fmt.Sprintf("Rolling %d-Month Returns", c.Window))
	if len(c.FixedRolling) == 0 {
		doc.PlainText(fmt.Sprintf("Not enough contributions for a %d-month window.", c.Window))
	} else {
		rolling := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"", "Fixed", "Enhanced"},
			Rows: [][]string{
				{"Windows", fmt.Sprintf("%d", len(c.FixedRolling)), fmt.Sprintf("%d", len(c.EnhancedRolling))},
				{"Average Return", sipfolio.AverageReturn(c.FixedRolling).SignedString(), sipfolio.AverageReturn(c.EnhancedRolling).SignedString()},
			},
		}
		doc.Table(rolling)
	}

	doc.H2("Verdict")
	doc.PlainText(fmt.Sprintf("Enhanced outperformance: %s (%s)",
		c.Outperformance.SignedString(), c.OutperformancePc.SignedString()))

	return doc.String()
}
