package dto

// CurrencyInfo identifies a display currency.
type CurrencyInfo struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

// DashboardSummary is the headline block above the charts.
type DashboardSummary struct {
	TransactionCount      int     `json:"transaction_count"`
	AnomalyCount          int     `json:"anomaly_count"`
	TotalAllocated        float64 `json:"total_allocated"`
	TotalSpent            float64 `json:"total_spent"`
	TotalAllocatedDisplay string  `json:"total_allocated_display"`
	TotalSpentDisplay     string  `json:"total_spent_display"`
}

// TransactionRow is one filtered transaction as displayed. Extra cells align
// with the extra_columns list of the enclosing response.
type TransactionRow struct {
	Department string   `json:"department"`
	Vendor     string   `json:"vendor"`
	Allocated  float64  `json:"allocated"`
	Spent      float64  `json:"spent"`
	Extra      []string `json:"extra,omitempty"`
	OverBudget bool     `json:"over_budget"`
}

// ChartPoint is one labeled value of a single-series chart. Display carries
// the server-side money formatting used for value labels.
type ChartPoint struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// ComparisonPoint is one long-form row of the allocated-vs-spent chart.
type ComparisonPoint struct {
	Vendor  string  `json:"vendor"`
	Metric  string  `json:"metric"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// DashboardResponse is the full recomputed view for one interaction.
type DashboardResponse struct {
	Currency     CurrencyInfo      `json:"currency"`
	Summary      DashboardSummary  `json:"summary"`
	ExtraColumns []string          `json:"extra_columns"`
	Transactions []TransactionRow  `json:"transactions"`
	Departments  []ChartPoint      `json:"departments"`
	Vendors      []ChartPoint      `json:"vendors"`
	Comparison   []ComparisonPoint `json:"comparison"`
	Anomalies    []TransactionRow  `json:"anomalies"`
}

// FiltersResponse lists the values the selection widgets offer.
type FiltersResponse struct {
	Departments []string       `json:"departments"`
	Vendors     []string       `json:"vendors"`
	Currencies  []CurrencyInfo `json:"currencies"`
}
