package tearsheet

import (
	"fmt"
	"math"
)

// Metrics is the full column of scalar statistics computed for one
// series. Undefined entries carry NaN and render as "-"; they never
// abort the assembly of the rest of the column.
type Metrics struct {
	CumulativeReturn  Percent
	CAGR              Percent
	Sharpe            float64
	SmartSharpe       float64
	Sortino           float64
	SmartSortino      float64
	AdjustedSortino   float64
	Omega             float64
	Calmar            float64
	RecoveryFactor    float64
	UlcerIndex        float64
	Volatility        Percent
	Skew              float64
	Kurtosis          float64
	MaxDrawdown       Percent
	LongestDDDays     int
	ValueAtRisk       Percent
	ExpectedShortfall Percent
	TailRatio         float64
	BestDay           Percent
	WorstDay          Percent
	BestMonth         Percent
	WorstMonth        Percent
	BestYear          Percent
	WorstYear         Percent
	WinRate           Percent
	WinMonths         Percent
	AvgWin            Percent
	AvgLoss           Percent
	PayoffRatio       float64
	ProfitFactor      float64
	CPCIndex          float64
	CommonSense       float64
	KellyCriterion    Percent
	RiskOfRuin        Percent
	Expected          Percent // geometric mean per period
	Exposure          Percent
	ConsecutiveWins   int
	ConsecutiveLosses int
}

// BenchmarkStats holds the comparative metrics of the strategy against
// its benchmark, all computed on the aligned overlap.
type BenchmarkStats struct {
	Greeks           Greeks
	RSquared         float64
	InformationRatio float64
	Metrics          Metrics // the benchmark's own column
}

// TearSheet is the assembled report for a strategy over its full range:
// the inputs' identity, the balance lines, the metric columns, the worst
// drawdown episodes, and the year-by-year comparison when a benchmark is
// present.
type TearSheet struct {
	Title        string
	Range        Range
	RiskFree     Percent // annualized
	Periods      int
	StartBalance Money
	EndBalance   Money
	NetProfit    Money
	Strategy     Metrics
	Benchmark    *BenchmarkStats
	Drawdowns    []Drawdown // deepest first
	Years        []ComparisonRow
}

// topDrawdownCount bounds the episode table of the tear sheet.
const topDrawdownCount = 5

// NewTearSheet assembles the full tear sheet for a return series, with
// an optional benchmark (pass nil for none). The starting capital is
// compounded into the end balance. An empty series has no range to
// report on and is rejected.
func (e *Engine) NewTearSheet(title string, returns, benchmark *Series, capital Money) (*TearSheet, error) {
	if returns == nil || returns.Len() == 0 {
		return nil, fmt.Errorf("tear sheet needs a non-empty return series")
	}

	ts := &TearSheet{
		Title:        title,
		Range:        returns.Range(),
		RiskFree:     AsPercent(e.cfg.RiskFree),
		Periods:      e.cfg.Periods,
		StartBalance: capital,
		Strategy:     e.metricsColumn(returns),
		Drawdowns:    e.TopDrawdowns(returns, topDrawdownCount),
	}
	ts.EndBalance = capital.Scale(1 + e.Comp(returns))
	ts.NetProfit = ts.EndBalance.Sub(ts.StartBalance)

	if benchmark != nil && benchmark.Len() > 0 {
		ts.Benchmark = &BenchmarkStats{
			Greeks:           e.Greeks(returns, benchmark),
			RSquared:         e.RSquared(returns, benchmark),
			InformationRatio: e.InformationRatio(returns, benchmark),
			Metrics:          e.metricsColumn(benchmark),
		}
		ts.Years = e.Compare(returns, benchmark, Yearly)
	}
	return ts, nil
}

// metricsColumn computes every scalar metric for one series.
func (e *Engine) metricsColumn(s *Series) Metrics {
	return Metrics{
		CumulativeReturn:  AsPercent(e.Comp(s)),
		CAGR:              AsPercent(e.CAGR(s)),
		Sharpe:            e.Sharpe(s),
		SmartSharpe:       e.SmartSharpe(s),
		Sortino:           e.Sortino(s),
		SmartSortino:      e.SmartSortino(s),
		AdjustedSortino:   e.AdjustedSortino(s),
		Omega:             e.Omega(s),
		Calmar:            e.Calmar(s),
		RecoveryFactor:    e.RecoveryFactor(s),
		UlcerIndex:        e.UlcerIndex(s),
		Volatility:        AsPercent(e.Volatility(s, true)),
		Skew:              e.Skew(s),
		Kurtosis:          e.Kurtosis(s),
		MaxDrawdown:       AsPercent(e.MaxDrawdown(s)),
		LongestDDDays:     e.LongestDrawdownDays(s),
		ValueAtRisk:       AsPercent(e.ValueAtRisk(s, 1)),
		ExpectedShortfall: AsPercent(e.ConditionalValueAtRisk(s, 1)),
		TailRatio:         e.TailRatio(s),
		BestDay:           AsPercent(e.Best(s, Daily)),
		WorstDay:          AsPercent(e.Worst(s, Daily)),
		BestMonth:         AsPercent(e.Best(s, Monthly)),
		WorstMonth:        AsPercent(e.Worst(s, Monthly)),
		BestYear:          AsPercent(e.Best(s, Yearly)),
		WorstYear:         AsPercent(e.Worst(s, Yearly)),
		WinRate:           AsPercent(e.WinRate(s)),
		WinMonths:         AsPercent(e.winRateAggregated(s, Monthly)),
		AvgWin:            AsPercent(e.AvgWin(s)),
		AvgLoss:           AsPercent(e.AvgLoss(s)),
		PayoffRatio:       e.PayoffRatio(s),
		ProfitFactor:      e.ProfitFactor(s),
		CPCIndex:          e.CPCIndex(s),
		CommonSense:       e.CommonSenseRatio(s),
		KellyCriterion:    AsPercent(e.KellyCriterion(s)),
		RiskOfRuin:        AsPercent(e.RiskOfRuin(s)),
		Expected:          AsPercent(e.GeometricMean(s)),
		Exposure:          AsPercent(e.Exposure(s)),
		ConsecutiveWins:   e.ConsecutiveWins(s),
		ConsecutiveLosses: e.ConsecutiveLosses(s),
	}
}

// winRateAggregated is the win rate over calendar buckets instead of raw
// periods ("winning months").
func (e *Engine) winRateAggregated(s *Series, p Period) float64 {
	return e.WinRate(e.AggregateReturns(s, p))
}

// Fmt2 formats a plain ratio metric for tables, NaN as "-".
func Fmt2(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}
