// Package models defines the core domain models for costshare.
//
// # Input Records
//
// The following models are supplied by the presentation layer and persisted
// as-is:
//   - Ledger: one gathering whose families and expenses are settled together
//   - Family: a contributor group weighted by its member count
//   - Expense: a single cost paid by exactly one family
//
// Derived values (shares, payments, settlements, breakdowns) are never stored.
// They live in the calculator package and are recomputed from a Snapshot on
// every request.
//
// # Design Principles
//
// 1. **Stateless computation**: a Snapshot is the only input the calculator needs
// 2. **Ordered records**: Position keeps the order families and expenses were entered in
// 3. **Avoid circular references**: use ID strings instead of pointers for relationships
// 4. **Denormalized payer name**: Expense.FamilyName is a display copy, refreshed on rename
package models
