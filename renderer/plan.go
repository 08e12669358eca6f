package renderer

import (
	"bytes"
	"fmt"

	"github.com/ketandv/sipfolio"
	md "github.com/nao1215/markdown"
)

// PlanMarkdown renders the current-month contribution recommendation.
func PlanMarkdown(scheme string, p *sipfolio.Plan) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("SIP Plan for %s", scheme))
	doc.PlainText(p.Message)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"", "Value"},
		Rows: [][]string{
			{"Latest NAV", fmt.Sprintf("%s (%s)", num(p.Latest.NAV), p.Latest.Date)},
			{"Previous NAV", fmt.Sprintf("%s (%s)", num(p.Previous.NAV), p.Previous.Date)},
			{"Change", p.Change.SignedString()},
			{"Average NAV", num(p.Average)},
			{"Base Amount", p.Base.String()},
			{"Multiplier", fmt.Sprintf("%.2f", p.Multiplier)},
			{"Recommended", p.Recommended.String()},
			{"Units Bought", p.Units.String()},
		},
	}
	doc.Table(table)

	return doc.String()
}
