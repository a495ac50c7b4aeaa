// Package charts renders tear sheet figures as PNG images using
// go-charts. Every function takes the already computed series from the
// tearsheet engine and only deals with presentation.
package charts

import (
	"fmt"

	"github.com/etnz/tearsheet"
	charts "github.com/vicanso/go-charts/v2"
)

// xSplit bounds the number of x axis labels so long daily series stay
// readable.
const xSplit = 10

// CumulativeReturns renders the compounded wealth curve, in percent,
// with an optional benchmark overlay (pass nil for none).
func CumulativeReturns(e *tearsheet.Engine, s, benchmark *tearsheet.Series) ([]byte, error) {
	if s == nil || s.Len() < 2 {
		return nil, fmt.Errorf("cumulative returns chart needs at least 2 points")
	}
	names := []string{"Strategy"}
	values := [][]float64{cumulative(s)}
	if benchmark != nil && benchmark.Len() > 0 {
		sa, ba := tearsheet.Align(s, benchmark)
		if sa.Len() >= 2 {
			names = []string{"Strategy", "Benchmark"}
			values = [][]float64{cumulative(sa), cumulative(ba)}
			s = sa
		}
	}
	return render(values, names, "Cumulative Returns", labels(s))
}

// Underwater renders the drawdown series, in percent, as a line under
// the zero axis.
func Underwater(e *tearsheet.Engine, s *tearsheet.Series) ([]byte, error) {
	if s == nil || s.Len() < 2 {
		return nil, fmt.Errorf("underwater chart needs at least 2 points")
	}
	dd := e.ToDrawdownSeries(s)
	return render([][]float64{percents(dd.Returns())}, []string{"Drawdown"}, "Underwater", labels(dd))
}

// RollingSharpe renders the rolling Sharpe ratio over the given window.
func RollingSharpe(e *tearsheet.Engine, s *tearsheet.Series, window int) ([]byte, error) {
	r := e.RollingSharpe(s, window)
	if r.Len() < 2 {
		return nil, fmt.Errorf("rolling sharpe chart needs at least %d points", window+1)
	}
	title := fmt.Sprintf("Rolling Sharpe (%d periods)", window)
	return render([][]float64{r.Returns()}, []string{"Sharpe"}, title, labels(r))
}

// RollingVolatility renders the rolling annualized volatility, in
// percent, over the given window.
func RollingVolatility(e *tearsheet.Engine, s *tearsheet.Series, window int) ([]byte, error) {
	r := e.RollingVolatility(s, window)
	if r.Len() < 2 {
		return nil, fmt.Errorf("rolling volatility chart needs at least %d points", window+1)
	}
	title := fmt.Sprintf("Rolling Volatility (%d periods)", window)
	return render([][]float64{percents(r.Returns())}, []string{"Volatility"}, title, labels(r))
}

// YearlyReturns renders one bar per calendar year, in percent.
func YearlyReturns(e *tearsheet.Engine, s *tearsheet.Series) ([]byte, error) {
	agg := e.AggregateReturns(s, tearsheet.Yearly)
	if agg.Len() == 0 {
		return nil, fmt.Errorf("yearly returns chart needs at least 1 year of data")
	}
	xLabels := make([]string, 0, agg.Len())
	for _, d := range agg.Dates() {
		xLabels = append(xLabels, tearsheet.Yearly.Range(d).Identifier())
	}
	painter, err := charts.BarRender([][]float64{percents(agg.Returns())},
		charts.TitleTextOptionFunc("Yearly Returns"),
		charts.XAxisDataOptionFunc(xLabels),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("rendering yearly returns chart: %w", err)
	}
	return painter.Bytes()
}

// render draws one or more aligned line series over a date axis.
func render(values [][]float64, names []string, title string, xLabels []string) ([]byte, error) {
	seriesList := charts.NewSeriesListDataFromValues(values, charts.ChartTypeLine)
	for i := range seriesList {
		seriesList[i].Name = names[i]
	}
	opts := []charts.OptionFunc{
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        xLabels,
			BoundaryGap: charts.FalseFlag(),
			SplitNumber: xSplit,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	}
	if len(names) > 1 {
		opts = append(opts, charts.LegendOptionFunc(charts.LegendOption{Data: names}))
	}
	painter, err := charts.Render(charts.ChartOption{SeriesList: seriesList}, opts...)
	if err != nil {
		return nil, fmt.Errorf("rendering %s chart: %w", title, err)
	}
	return painter.Bytes()
}

// cumulative turns a return series into a compounded growth curve in
// percent, starting at 0.
func cumulative(s *tearsheet.Series) []float64 {
	out := make([]float64, 0, s.Len())
	wealth := 1.0
	for _, r := range s.Returns() {
		wealth *= 1 + r
		out = append(out, 100*(wealth-1))
	}
	return out
}

func percents(ratios []float64) []float64 {
	out := make([]float64, len(ratios))
	for i, r := range ratios {
		out[i] = 100 * r
	}
	return out
}

func labels(s *tearsheet.Series) []string {
	out := make([]string, 0, s.Len())
	for _, d := range s.Dates() {
		out = append(out, d.String())
	}
	return out
}
