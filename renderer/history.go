package renderer

import (
	"bytes"
	"fmt"

	"github.com/ketandv/sipfolio"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the enriched NAV history of a scheme.
func HistoryMarkdown(scheme string, s sipfolio.Series) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("NAV History for %s", scheme))
	doc.PlainText(fmt.Sprintf("%d points from %s to %s",
		len(s), s.First().Date, s.Last().Date))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "NAV", "Change", "MA7", "MA30", "Volatility"},
		Rows:   [][]string{},
	}
	for _, e := range s {
		change := "-"
		if e.HasChange() {
			change = e.Change.SignedString()
		}
		table.Rows = append(table.Rows, []string{
			e.Date.String(),
			num(e.NAV),
			change,
			num(e.MA7),
			num(e.MA30),
			num(e.Volatility),
		})
	}
	doc.Table(table)

	return doc.String()
}
