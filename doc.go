// Package tearsheet computes portfolio risk and return statistics from
// time series of periodic returns, and assembles them into tear sheet
// reports. It is designed to be deterministic, side-effect free, and
// explicit about its conventions, so that every metric computed from the
// same series is comparable with every other.
//
// The core functionalities include:
//   - Return Series: an immutable, chronologically ordered series of
//     (date, return) points. Every transform produces a new series and
//     leaves the caller's series untouched.
//   - Metrics Engine: an Engine computes ~50 statistics (Sharpe, Sortino,
//     drawdowns, value-at-risk, win/loss ratios, alpha/beta, ...) under a
//     single validated Config (risk-free rate, confidence level, trading
//     periods per year, compounding mode).
//   - Tear Sheets: a TearSheet gathers the full set of metrics for a
//     strategy (and an optional benchmark) for rendering by the renderer
//     and charts packages.
//   - Data Acquisition: CSV encoding/decoding of return series, and
//     end-of-day price fetching from EODHD with conversion to returns.
//
// Degenerate inputs never abort a batch of metrics: an empty series or a
// too-small benchmark overlap yields NaN, a zero risk denominator yields
// zero. Only an invalid Config is a hard error, raised once when the
// Engine is built.
//
// This package serves as the foundational logic for the `tear`
// command-line tool.
package tearsheet
