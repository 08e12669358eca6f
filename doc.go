// Package sipfolio analyzes mutual fund NAV (net asset value) histories and
// backtests periodic investment plans (SIPs) against them.
//
// The core functionalities include:
//   - Series Preparation: turning raw NAV feed records into a clean,
//     chronological series enriched with derived indicators (daily change,
//     moving averages, volatility).
//   - Opportunity Scoring: ranking historical dips by their magnitude and
//     attaching an investment recommendation to each.
//   - SIP Simulation: replaying a fixed-amount or an enhanced (dip-scaled)
//     monthly investment plan over the series, producing a ledger of
//     contributions and summary metrics (absolute return, return percent,
//     CAGR).
//   - Rolling Returns: trailing-window performance over the contribution
//     ledger.
//   - Strategy Comparison: running both plans over the same series and
//     measuring the enhanced plan's outperformance.
//
// Everything here is a pure function of its inputs: the package never
// performs I/O, and a given series always simulates to the same result. The
// `mfapi` package is the data-source collaborator, and the `msip`
// command-line tool the orchestration layer on top.
package sipfolio
