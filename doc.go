// Package immo provides the functions and types to track a single
// real-estate investment over its lifetime. It is designed to be
// local-first and auditable: every record lives in a human-readable,
// version-controllable book file, and every figure can be recomputed from
// it.
//
// The core functionalities include:
//   - Book Management: Recording the property, its mortgage, tenancies,
//     one-off expenses and observed market prices in a JSONL file.
//   - Loan Amortization: Replaying the annuity schedule month by month
//     with cent-level rounding, the way bank statements do.
//   - Cashflow Ledger: One row per calendar month since purchase, with
//     rent and charges prorated by covered days.
//   - Valuation: Estimating the market value from the observed per-m²
//     price series, with a manual override, and treating an unknown
//     value as absent rather than zero.
//   - Sale Economics: Summaries, multiplier sweeps, multi-year
//     projections and a break-even search for a hypothetical sale.
//
// This package serves as the foundational logic for the `immo`
// command-line tool.
package immo
