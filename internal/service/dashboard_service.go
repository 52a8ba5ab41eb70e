package service

import (
	"strings"

	"budgetboard/internal/dto"
	"budgetboard/internal/models"
	"budgetboard/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Filter carries one interaction's selection state. Empty department or
// vendor selections keep nothing; there is no implicit "empty means all".
type Filter struct {
	Departments []string
	Vendors     []string
	Search      string
	Currency    string
}

// DashboardService recomputes the dashboard view from the immutable dataset
// on every interaction: convert amounts to the selected currency, filter,
// flag overruns, aggregate.
type DashboardService struct {
	dataset   *repository.DatasetRepository
	converter models.Converter
	logger    *zap.Logger
}

func NewDashboardService(dataset *repository.DatasetRepository, converter models.Converter, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		dataset:   dataset,
		converter: converter,
		logger:    logger,
	}
}

// FilteredRows runs the convert -> filter -> flag pipeline and reports the
// display currency used. The chat responder consumes the same view the
// dashboard shows.
func (s *DashboardService) FilteredRows(f Filter) ([]models.DisplayTransaction, models.Currency) {
	unit := s.converter.Resolve(f.Currency)
	currency := s.converter.Currency(unit)

	rows := convertRows(s.dataset.All(), s.converter, unit)
	rows = filterRows(rows, f.Departments, f.Vendors, f.Search)
	flagRows(rows)
	return rows, currency
}

// View assembles the full dashboard payload for one interaction.
func (s *DashboardService) View(f Filter) *dto.DashboardResponse {
	rows, currency := s.FilteredRows(f)

	departments := sumBy(rows, departmentOf, spentOf)
	vendors := sumBy(rows, vendorOf, spentOf)
	comparison := meltVendors(rows)

	anomalies := make([]models.DisplayTransaction, 0)
	totalAllocated, totalSpent := decimal.Zero, decimal.Zero
	for _, r := range rows {
		totalAllocated = totalAllocated.Add(r.Allocated)
		totalSpent = totalSpent.Add(r.Spent)
		if r.OverBudget {
			anomalies = append(anomalies, r)
		}
	}

	s.logger.Debug("Dashboard view computed",
		zap.Int("rows", len(rows)),
		zap.Int("anomalies", len(anomalies)),
		zap.String("currency", currency.Code),
	)

	return &dto.DashboardResponse{
		Currency: dto.CurrencyInfo{Code: currency.Code, Symbol: currency.Symbol},
		Summary: dto.DashboardSummary{
			TransactionCount:      len(rows),
			AnomalyCount:          len(anomalies),
			TotalAllocated:        totalAllocated.InexactFloat64(),
			TotalSpent:            totalSpent.InexactFloat64(),
			TotalAllocatedDisplay: currency.Format(totalAllocated),
			TotalSpentDisplay:     currency.Format(totalSpent),
		},
		ExtraColumns: s.dataset.ExtraColumns(),
		Transactions: toTransactionRows(rows),
		Departments:  toChartPoints(departments, currency),
		Vendors:      toChartPoints(vendors, currency),
		Comparison:   toComparisonPoints(comparison, currency),
		Anomalies:    toTransactionRows(anomalies),
	}
}

// Filters reports the values the selection widgets offer.
func (s *DashboardService) Filters() *dto.FiltersResponse {
	return &dto.FiltersResponse{
		Departments: s.dataset.Departments(),
		Vendors:     s.dataset.Vendors(),
		Currencies: []dto.CurrencyInfo{
			{Code: s.converter.Primary.Code, Symbol: s.converter.Primary.Symbol},
			{Code: s.converter.Secondary.Code, Symbol: s.converter.Secondary.Symbol},
		},
	}
}

// convertRows produces display copies with amounts in the selected currency.
// The over-budget flag is derived later, after filtering.
func convertRows(rows []models.Transaction, conv models.Converter, unit models.CurrencyUnit) []models.DisplayTransaction {
	out := make([]models.DisplayTransaction, len(rows))
	for i, r := range rows {
		out[i] = models.DisplayTransaction{
			Department: r.Department,
			Vendor:     r.Vendor,
			Allocated:  conv.Convert(r.Allocated, unit),
			Spent:      conv.Convert(r.Spent, unit),
			Extra:      r.Extra,
		}
	}
	return out
}

// filterRows keeps rows whose department and vendor are both selected and,
// when a search is present, whose stringified text contains it
// case-insensitively. Row order is preserved.
func filterRows(rows []models.DisplayTransaction, departments, vendors []string, search string) []models.DisplayTransaction {
	departmentSet := toSet(departments)
	vendorSet := toSet(vendors)
	needle := strings.ToLower(search)

	out := make([]models.DisplayTransaction, 0, len(rows))
	for _, r := range rows {
		if _, ok := departmentSet[r.Department]; !ok {
			continue
		}
		if _, ok := vendorSet[r.Vendor]; !ok {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(searchText(r)), needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// searchText renders the row as the text the search box matches against:
// every cell stringified, amounts at fixed two decimals, space-joined.
func searchText(r models.DisplayTransaction) string {
	parts := make([]string, 0, 4+len(r.Extra))
	parts = append(parts, r.Department, r.Vendor, r.Allocated.StringFixed(2), r.Spent.StringFixed(2))
	parts = append(parts, r.Extra...)
	return strings.Join(parts, " ")
}

// flagRows derives the over-budget flag in place: spend strictly greater
// than allocation. Equality is not an overrun. Both sides carry the same
// conversion, so the flag does not depend on the selected currency.
func flagRows(rows []models.DisplayTransaction) {
	for i := range rows {
		rows[i].OverBudget = rows[i].Spent.GreaterThan(rows[i].Allocated)
	}
}

// sumBy groups rows by key and sums value within each group. Output order is
// the order keys first appear, so a fixed input yields a fixed output.
func sumBy(rows []models.DisplayTransaction, key func(models.DisplayTransaction) string, value func(models.DisplayTransaction) decimal.Decimal) []models.AggregateRow {
	index := make(map[string]int, len(rows))
	out := make([]models.AggregateRow, 0)
	for _, r := range rows {
		k := key(r)
		if i, ok := index[k]; ok {
			out[i].Value = out[i].Value.Add(value(r))
			continue
		}
		index[k] = len(out)
		out = append(out, models.AggregateRow{Label: k, Value: value(r)})
	}
	return out
}

// meltVendors produces the long-form allocated-vs-spent rows: vendors in
// first-appearance order, the Allocated row before the Spent row for each.
func meltVendors(rows []models.DisplayTransaction) []models.VendorComparison {
	allocated := sumBy(rows, vendorOf, allocatedOf)
	spent := sumBy(rows, vendorOf, spentOf)

	out := make([]models.VendorComparison, 0, len(allocated)*2)
	for i, a := range allocated {
		out = append(out,
			models.VendorComparison{Vendor: a.Label, Metric: models.MetricAllocated, Amount: a.Value},
			models.VendorComparison{Vendor: a.Label, Metric: models.MetricSpent, Amount: spent[i].Value},
		)
	}
	return out
}

func departmentOf(r models.DisplayTransaction) string { return r.Department }

func vendorOf(r models.DisplayTransaction) string { return r.Vendor }

func spentOf(r models.DisplayTransaction) decimal.Decimal { return r.Spent }

func allocatedOf(r models.DisplayTransaction) decimal.Decimal { return r.Allocated }

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func toTransactionRows(rows []models.DisplayTransaction) []dto.TransactionRow {
	out := make([]dto.TransactionRow, len(rows))
	for i, r := range rows {
		out[i] = dto.TransactionRow{
			Department: r.Department,
			Vendor:     r.Vendor,
			Allocated:  r.Allocated.InexactFloat64(),
			Spent:      r.Spent.InexactFloat64(),
			Extra:      r.Extra,
			OverBudget: r.OverBudget,
		}
	}
	return out
}

func toChartPoints(rows []models.AggregateRow, currency models.Currency) []dto.ChartPoint {
	out := make([]dto.ChartPoint, len(rows))
	for i, r := range rows {
		out[i] = dto.ChartPoint{
			Label:   r.Label,
			Value:   r.Value.InexactFloat64(),
			Display: currency.Format(r.Value),
		}
	}
	return out
}

func toComparisonPoints(rows []models.VendorComparison, currency models.Currency) []dto.ComparisonPoint {
	out := make([]dto.ComparisonPoint, len(rows))
	for i, r := range rows {
		out[i] = dto.ComparisonPoint{
			Vendor:  r.Vendor,
			Metric:  r.Metric,
			Value:   r.Amount.InexactFloat64(),
			Display: currency.Format(r.Amount),
		}
	}
	return out
}
