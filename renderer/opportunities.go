package renderer

import (
	"bytes"
	"fmt"

	"github.com/ketandv/sipfolio"
	md "github.com/nao1215/markdown"
)

// OpportunitiesMarkdown renders the buying opportunities found in a scheme's
// history, best ones first.
func OpportunitiesMarkdown(scheme string, threshold sipfolio.Percent, opps []sipfolio.Opportunity) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Buying Opportunities for %s", scheme))

	if len(opps) == 0 {
		doc.PlainText(fmt.Sprintf("No drops of %s or worse in the analyzed history.", threshold))
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("%d drops of %s or worse.", len(opps), threshold))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "NAV", "Change", "Score", "Recommendation"},
		Rows:   [][]string{},
	}
	for _, o := range opps {
		table.Rows = append(table.Rows, []string{
			o.Date.String(),
			num(o.NAV),
			o.Change.SignedString(),
			fmt.Sprintf("%.2f", o.Score),
			o.Recommendation,
		})
	}
	doc.Table(table)

	return doc.String()
}
