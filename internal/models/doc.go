// Package models defines the core domain models for the finance tracker.
//
// # Models
//
//   - User: a registered account; every finance record belongs to exactly one user
//   - FinanceRecord: a single income or expense transaction
//   - Summary: aggregated income/expense totals and balance for one user
//   - CategoryStat / MonthlyStat: grouped aggregates derived from a user's records
//
// # Design Principles
//
//  1. **Single owner**: a record references its owner by user ID; ownership never changes
//  2. **Closed enumerations**: record type and category are restricted string sets,
//     validated at the edges rather than enforced by the type system
//  3. **Avoid circular references**: relationships use ID strings, not pointers
//  4. **Plain numbers**: amounts are float64 with no currency or precision modeling
package models
