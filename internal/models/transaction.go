package models

import "github.com/shopspring/decimal"

// Required dataset columns. Header matching is exact and case-sensitive; any
// further columns are carried through untouched.
const (
	ColumnDepartment = "Department"
	ColumnVendor     = "Vendor"
	ColumnAllocated  = "Budget_Allocated"
	ColumnSpent      = "Budget_Spent"
)

// Metric tags for the long-form vendor comparison rows.
const (
	MetricAllocated = "Allocated"
	MetricSpent     = "Spent"
)

// Transaction is one loaded dataset row. Loaded rows are read-only for the
// process lifetime; display copies are derived from them per interaction.
type Transaction struct {
	Department string
	Vendor     string
	Allocated  decimal.Decimal
	Spent      decimal.Decimal
	// Extra holds the cells of any columns beyond the required four, in the
	// order the dataset header declares them.
	Extra []string
}

// DisplayTransaction is a currency-converted view of a Transaction plus the
// derived over-budget flag. Recomputed on every interaction, never persisted.
type DisplayTransaction struct {
	Department string
	Vendor     string
	Allocated  decimal.Decimal
	Spent      decimal.Decimal
	Extra      []string
	OverBudget bool
}

// AggregateRow is one (group label, summed value) pair produced by an
// aggregation. It has no identity beyond its values.
type AggregateRow struct {
	Label string
	Value decimal.Decimal
}

// VendorComparison is one long-form row of the allocated-vs-spent comparison:
// each vendor yields two rows, tagged MetricAllocated and MetricSpent.
type VendorComparison struct {
	Vendor string
	Metric string
	Amount decimal.Decimal
}
