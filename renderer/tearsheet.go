// Package renderer turns tear sheet reports into markdown and HTML
// documents. It holds no computation: every number it prints was
// computed by the tearsheet engine.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tearsheet"
	md "github.com/nao1215/markdown"
)

// TearSheetMarkdown renders the full tear sheet to a markdown string.
func TearSheetMarkdown(ts *tearsheet.TearSheet) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(ts.Title)
	doc.PlainText(fmt.Sprintf("%s to %s · %d periods/year · risk-free %s",
		ts.Range.From, ts.Range.To, ts.Periods, ts.RiskFree))

	doc.H2("Balance")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", ""},
		Rows: [][]string{
			{"Start Balance", ts.StartBalance.String()},
			{"End Balance", ts.EndBalance.String()},
			{"Net Profit", ts.NetProfit.SignedString()},
		},
	})

	doc.H2("Performance")
	doc.Table(metricsTable(ts, performanceRows))

	doc.H2("Risk")
	doc.Table(metricsTable(ts, riskRows))

	doc.H2("Win / Loss")
	doc.Table(metricsTable(ts, winLossRows))

	if ts.Benchmark != nil {
		doc.H2("Versus Benchmark")
		g := ts.Benchmark.Greeks
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Metric", "Value"},
			Rows: [][]string{
				{"Beta", tearsheet.Fmt2(g.Beta)},
				{"Alpha (ann.)", tearsheet.Fmt2(g.Alpha)},
				{"R²", tearsheet.Fmt2(ts.Benchmark.RSquared)},
				{"Information Ratio", tearsheet.Fmt2(ts.Benchmark.InformationRatio)},
			},
		})
	}

	if len(ts.Drawdowns) > 0 {
		doc.H2("Worst Drawdowns")
		doc.Table(drawdownTable(ts.Drawdowns))
	}

	if len(ts.Years) > 0 {
		doc.H2("Year by Year")
		doc.Table(compareTable(ts.Years))
	}

	return doc.String()
}

// metricRow is one labelled line of the metrics tables, extracting its
// value from a metrics column.
type metricRow struct {
	label string
	value func(m *tearsheet.Metrics) string
}

var performanceRows = []metricRow{
	{"Cumulative Return", func(m *tearsheet.Metrics) string { return m.CumulativeReturn.String() }},
	{"CAGR", func(m *tearsheet.Metrics) string { return m.CAGR.String() }},
	{"Expected Return (per period)", func(m *tearsheet.Metrics) string { return m.Expected.String() }},
	{"Sharpe", func(m *tearsheet.Metrics) string { return tearsheet.Fmt2(m.Sharpe) }},
	{"Smart Sharpe", func(m *tearsheet.Metrics) string { return tearsheet.Fmt2(m.SmartSharpe) }},
	{"Sortino", func(m *tearsheet.Metrics) string { return tearsheet.Fmt2(m.Sortino) }},
	{"Smart Sortino", func(m *tearsheet.Metrics) string { return tearsheet.Fmt2(m.SmartSortino) }},
	{"Sortino/√2", func(m *tearsheet.Metrics) string { return tearsheet.Fmt2(m.AdjustedSortino) }},
	{"Omega", func(m *tearsheet.Metrics) string { return tearsheet.Fmt2(m.Omega) }},
	{"Calmar", func(m *tearsheet.Metrics) string { return tearsheet.Fmt2(m.Calmar) }},
	{"Recovery Factor", func(m *tearsheet.Metrics) string { return tearsheet.Fmt2(m.RecoveryFactor) }},
	{"Exposure", func(m *tearsheet.Metrics) string { return m.Exposure.String() }},
}

var riskRows = []metricRow{
	{"Volatility (ann.)", func(m *tearsheet.Metrics) string { return m.Volatility.String() }},
	{"Max Drawdown", func(m *tearsheet.Metrics) string { return m.MaxDrawdown.String() }},
	{"Longest DD Days", func(m *tearsheet.Metrics) string { return fmt.Sprintf("%d", m.LongestDDDays) }},
	{"Ulcer Index", func(m *tearsheet.Metrics) string { return tearsheet.Fmt2(m.UlcerIndex) }},
	{"Daily VaR", func(m *tearsheet.Metrics) string { return m.ValueAtRisk.String() }},
	{"Expected Shortfall (CVaR)", func(m *tearsheet.Metrics) string { return m.ExpectedShortfall.String() }},
	{"Tail Ratio", func(m *tearsheet.Metrics) string { return tearsheet.Fmt2(m.TailRatio) }},
	{"Skew", func(m *tearsheet.Metrics) string { return tearsheet.Fmt2(m.Skew) }},
	{"Kurtosis", func(m *tearsheet.Metrics) string { return tearsheet.Fmt2(m.Kurtosis) }},
	{"Risk of Ruin", func(m *tearsheet.Metrics) string { return m.RiskOfRuin.String() }},
}

var winLossRows = []metricRow{
	{"Win Rate", func(m *tearsheet.Metrics) string { return m.WinRate.String() }},
	{"Winning Months", func(m *tearsheet.Metrics) string { return m.WinMonths.String() }},
	{"Avg Win", func(m *tearsheet.Metrics) string { return m.AvgWin.String() }},
	{"Avg Loss", func(m *tearsheet.Metrics) string { return m.AvgLoss.String() }},
	{"Best Day", func(m *tearsheet.Metrics) string { return m.BestDay.String() }},
	{"Worst Day", func(m *tearsheet.Metrics) string { return m.WorstDay.String() }},
	{"Best Month", func(m *tearsheet.Metrics) string { return m.BestMonth.String() }},
	{"Worst Month", func(m *tearsheet.Metrics) string { return m.WorstMonth.String() }},
	{"Best Year", func(m *tearsheet.Metrics) string { return m.BestYear.String() }},
	{"Worst Year", func(m *tearsheet.Metrics) string { return m.WorstYear.String() }},
	{"Payoff Ratio", func(m *tearsheet.Metrics) string { return tearsheet.Fmt2(m.PayoffRatio) }},
	{"Profit Factor", func(m *tearsheet.Metrics) string { return tearsheet.Fmt2(m.ProfitFactor) }},
	{"CPC Index", func(m *tearsheet.Metrics) string { return tearsheet.Fmt2(m.CPCIndex) }},
	{"Common Sense Ratio", func(m *tearsheet.Metrics) string { return tearsheet.Fmt2(m.CommonSense) }},
	{"Kelly Criterion", func(m *tearsheet.Metrics) string { return m.KellyCriterion.String() }},
	{"Max Consecutive Wins", func(m *tearsheet.Metrics) string { return fmt.Sprintf("%d", m.ConsecutiveWins) }},
	{"Max Consecutive Losses", func(m *tearsheet.Metrics) string { return fmt.Sprintf("%d", m.ConsecutiveLosses) }},
}

// metricsTable builds a Strategy (and optional Benchmark) column table.
func metricsTable(ts *tearsheet.TearSheet, rows []metricRow) md.TableSet {
	hasBench := ts.Benchmark != nil
	set := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Strategy"},
	}
	if hasBench {
		set.Alignment = append(set.Alignment, md.AlignRight)
		set.Header = append(set.Header, "Benchmark")
	}
	for _, r := range rows {
		row := []string{r.label, r.value(&ts.Strategy)}
		if hasBench {
			row = append(row, r.value(&ts.Benchmark.Metrics))
		}
		set.Rows = append(set.Rows, row)
	}
	return set
}
