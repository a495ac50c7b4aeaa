package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/tearsheet"
)

// sampleTearSheet builds a small deterministic tear sheet, with or
// without a benchmark column.
func sampleTearSheet(t *testing.T, withBenchmark bool) *tearsheet.TearSheet {
	t.Helper()
	e, err := tearsheet.New(tearsheet.DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s := tearsheet.SeriesOf(tearsheet.NewDate(2024, 1, 2),
		0.01, -0.02, 0.03, 0.015, -0.005, 0.02, -0.01, 0.025, 0.0, 0.01)
	var bench *tearsheet.Series
	if withBenchmark {
		bench = tearsheet.SeriesOf(tearsheet.NewDate(2024, 1, 2),
			0.008, -0.016, 0.025, 0.012, -0.004, 0.018, -0.008, 0.02, 0.001, 0.009)
	}
	ts, err := e.NewTearSheet("Demo Strategy", s, bench, tearsheet.M(10000, "EUR"))
	if err != nil {
		t.Fatalf("NewTearSheet: %v", err)
	}
	return ts
}

func TestTearSheetMarkdown(t *testing.T) {
	got := TearSheetMarkdown(sampleTearSheet(t, false))

	for _, want := range []string{
		"# Demo Strategy",
		"## Performance",
		"## Risk",
		"## Win / Loss",
		"Sharpe",
		"Max Drawdown",
		"Win Rate",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("markdown missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Versus Benchmark") {
		t.Error("markdown has a benchmark section without a benchmark")
	}
	if strings.Contains(got, "NaN") {
		t.Errorf("markdown leaks NaN:\n%s", got)
	}
}

func TestTearSheetMarkdownWithBenchmark(t *testing.T) {
	got := TearSheetMarkdown(sampleTearSheet(t, true))

	for _, want := range []string{
		"## Versus Benchmark",
		"Beta",
		"Information Ratio",
		"| Metric | Strategy | Benchmark |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("markdown missing %q:\n%s", want, got)
		}
	}
}

func TestDrawdownsMarkdown(t *testing.T) {
	episodes := []tearsheet.Drawdown{
		{
			Start:  tearsheet.NewDate(2024, 2, 1),
			Valley: tearsheet.NewDate(2024, 2, 10),
			End:    tearsheet.NewDate(2024, 3, 1),
			Days:   29,
			Depth:  -0.12,
		},
		{
			Start:  tearsheet.NewDate(2024, 6, 1),
			Valley: tearsheet.NewDate(2024, 6, 5),
			End:    tearsheet.NewDate(2024, 6, 5),
			Days:   4,
			Depth:  -0.03,
			Active: true,
		},
	}
	got := DrawdownsMarkdown("Worst Drawdowns", episodes)

	if !strings.Contains(got, "-12.00%") {
		t.Errorf("missing formatted depth:\n%s", got)
	}
	if !strings.Contains(got, "ongoing") {
		t.Errorf("active episode should read ongoing:\n%s", got)
	}

	empty := DrawdownsMarkdown("Worst Drawdowns", nil)
	if !strings.Contains(empty, "No drawdowns") {
		t.Errorf("empty episode list should say so:\n%s", empty)
	}
}

func TestCompareMarkdown(t *testing.T) {
	rows := []tearsheet.ComparisonRow{
		{Label: "2023", Returns: 12.5, Benchmark: 10.0, Won: true},
		{Label: "2024", Returns: -3.0, Benchmark: 2.0, Won: false},
	}
	got := CompareMarkdown("Year by Year", rows)

	for _, want := range []string{"2023", "2024", "+12.50%", "-3.00%", "✓"} {
		if !strings.Contains(got, want) {
			t.Errorf("markdown missing %q:\n%s", want, got)
		}
	}
}

func TestTearSheetHTML(t *testing.T) {
	ts := sampleTearSheet(t, true)
	charts := []Chart{{Title: "Cumulative Returns", PNG: []byte{0x89, 'P', 'N', 'G'}}}

	got, err := TearSheetHTML(ts, charts)
	if err != nil {
		t.Fatalf("TearSheetHTML: %v", err)
	}

	for _, want := range []string{
		"<title>Demo Strategy</title>",
		"data:image/png;base64,",
		"Versus Benchmark",
		"Worst Drawdowns",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("html missing %q", want)
		}
	}
}
