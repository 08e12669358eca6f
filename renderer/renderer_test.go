package renderer

import (
	"strings"
	"testing"

	"github.com/ketandv/sipfolio"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// parse runs the report through goldmark and counts the document structure,
// to make sure every renderer produces well-formed markdown.
func parse(t *testing.T, report string) (headings, tables, tableRows int) {
	t.Helper()
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader([]byte(report)))
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindHeading:
			headings++
		case extast.KindTable:
			tables++
		case extast.KindTableRow:
			tableRows++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking markdown: %v", err)
	}
	return
}

func series(t *testing.T) sipfolio.Series {
	t.Helper()
	s, err := sipfolio.NewSeries([]sipfolio.Record{
		{Date: "01-03-2023", NAV: "103.0"},
		{Date: "01-02-2023", NAV: "97.0"},
		{Date: "01-01-2023", NAV: "100.0"},
	}, 0)
	if err != nil {
		t.Fatalf("NewSeries() error = %v", err)
	}
	return s
}

func TestHistoryMarkdown(t *testing.T) {
	report := HistoryMarkdown("Axis ELSS", series(t))

	headings, tables, rows := parse(t, report)
	if headings != 1 || tables != 1 {
		t.Errorf("structure = %d headings, %d tables; want 1 and 1", headings, tables)
	}
	// Three data rows under the header row.
	if rows != 3 {
		t.Errorf("tableRows = %d want 3", rows)
	}
	if !strings.Contains(report, "Axis ELSS") {
		t.Errorf("report does not name the scheme:\n%s", report)
	}
	// The first point has no change and young moving averages: dashes.
	if !strings.Contains(report, "-3.00%") {
		t.Errorf("report missing the February drop:\n%s", report)
	}
}

func TestOpportunitiesMarkdown(t *testing.T) {
	opps := sipfolio.Opportunities(series(t), -1)
	if len(opps) != 1 {
		t.Fatalf("fixture yields %d opportunities, want 1", len(opps))
	}
	report := OpportunitiesMarkdown("Axis ELSS", -1, opps)

	headings, tables, rows := parse(t, report)
	if headings != 1 || tables != 1 || rows != 1 {
		t.Errorf("structure = %d headings, %d tables, %d rows; want 1, 1, 1", headings, tables, rows)
	}
	if !strings.Contains(report, "Invest") {
		t.Errorf("report missing a recommendation:\n%s", report)
	}
}

func TestOpportunitiesMarkdownEmpty(t *testing.T) {
	report := OpportunitiesMarkdown("Axis ELSS", -5, nil)
	if _, tables, _ := parse(t, report); tables != 0 {
		t.Errorf("empty report should not contain a table:\n%s", report)
	}
	if !strings.Contains(report, "No drops") {
		t.Errorf("empty report should say so:\n%s", report)
	}
}

func TestComparisonMarkdown(t *testing.T) {
	cmp, err := sipfolio.Compare(series(t), sipfolio.INR(1000), 12)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	report := ComparisonMarkdown("Axis ELSS", cmp)

	headings, tables, _ := parse(t, report)
	// Title plus Strategies, Rolling, Verdict sections.
	if headings != 4 {
		t.Errorf("headings = %d want 4:\n%s", headings, report)
	}
	if tables != 1 {
		// Three contributions cannot fill a 12-month window: one table only.
		t.Errorf("tables = %d want 1:\n%s", tables, report)
	}
	if !strings.Contains(report, "outperformance") {
		t.Errorf("report missing the verdict:\n%s", report)
	}
}

func TestPlanMarkdown(t *testing.T) {
	plan, err := sipfolio.MonthlyPlan(series(t), sipfolio.INR(1000))
	if err != nil {
		t.Fatalf("MonthlyPlan() error = %v", err)
	}
	report := PlanMarkdown("Axis ELSS", plan)

	headings, tables, rows := parse(t, report)
	if headings != 1 || tables != 1 {
		t.Errorf("structure = %d headings, %d tables; want 1 and 1", headings, tables)
	}
	if rows != 8 {
		t.Errorf("tableRows = %d want 8:\n%s", rows, report)
	}
	if !strings.Contains(report, plan.Message) {
		t.Errorf("report missing the plan message:\n%s", report)
	}
}
