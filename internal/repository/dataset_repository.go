package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"budgetboard/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DatasetRepository holds the transaction table loaded once at startup. The
// table is read-only afterwards; every interaction derives its view from
// these rows without touching them.
type DatasetRepository struct {
	path         string
	transactions []models.Transaction
	departments  []string
	vendors      []string
	extraColumns []string
	loadedAt     time.Time
	logger       *zap.Logger
}

// NewDatasetRepository loads the transaction dataset from a CSV file. The
// header must contain the four required columns with exact, case-sensitive
// names; a missing or malformed file is a startup failure.
func NewDatasetRepository(path string, logger *zap.Logger) (*DatasetRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s has no header row", path)
	}

	header := records[0]
	required := map[string]int{
		models.ColumnDepartment: -1,
		models.ColumnVendor:     -1,
		models.ColumnAllocated:  -1,
		models.ColumnSpent:      -1,
	}
	var extraColumns []string
	var extraIdx []int
	for i, name := range header {
		if idx, ok := required[name]; ok && idx == -1 {
			required[name] = i
			continue
		}
		extraColumns = append(extraColumns, name)
		extraIdx = append(extraIdx, i)
	}
	for _, name := range []string{models.ColumnDepartment, models.ColumnVendor, models.ColumnAllocated, models.ColumnSpent} {
		if required[name] == -1 {
			return nil, fmt.Errorf("dataset %s is missing required column %q", path, name)
		}
	}

	transactions := make([]models.Transaction, 0, len(records)-1)
	var departments, vendors []string
	seenDepartment := make(map[string]struct{})
	seenVendor := make(map[string]struct{})
	for n, record := range records[1:] {
		allocated, err := parseAmount(record[required[models.ColumnAllocated]])
		if err != nil {
			return nil, fmt.Errorf("dataset %s row %d: invalid %s: %w", path, n+2, models.ColumnAllocated, err)
		}
		spent, err := parseAmount(record[required[models.ColumnSpent]])
		if err != nil {
			return nil, fmt.Errorf("dataset %s row %d: invalid %s: %w", path, n+2, models.ColumnSpent, err)
		}

		tx := models.Transaction{
			Department: record[required[models.ColumnDepartment]],
			Vendor:     record[required[models.ColumnVendor]],
			Allocated:  allocated,
			Spent:      spent,
		}
		if len(extraIdx) > 0 {
			tx.Extra = make([]string, len(extraIdx))
			for j, idx := range extraIdx {
				tx.Extra[j] = record[idx]
			}
		}

		if _, ok := seenDepartment[tx.Department]; !ok {
			seenDepartment[tx.Department] = struct{}{}
			departments = append(departments, tx.Department)
		}
		if _, ok := seenVendor[tx.Vendor]; !ok {
			seenVendor[tx.Vendor] = struct{}{}
			vendors = append(vendors, tx.Vendor)
		}
		transactions = append(transactions, tx)
	}

	logger.Info("Dataset loaded",
		zap.String("path", path),
		zap.Int("rows", len(transactions)),
		zap.Int("departments", len(departments)),
		zap.Int("vendors", len(vendors)),
	)

	return &DatasetRepository{
		path:         path,
		transactions: transactions,
		departments:  departments,
		vendors:      vendors,
		extraColumns: extraColumns,
		loadedAt:     time.Now(),
		logger:       logger,
	}, nil
}

func parseAmount(cell string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(cell))
	if err != nil {
		return decimal.Zero, fmt.Errorf("value %q is not a number", cell)
	}
	return d, nil
}

// All returns the loaded rows. Callers must treat them as read-only.
func (r *DatasetRepository) All() []models.Transaction {
	return r.transactions
}

// Departments returns the distinct departments in first-appearance order.
func (r *DatasetRepository) Departments() []string {
	return append([]string(nil), r.departments...)
}

// Vendors returns the distinct vendors in first-appearance order.
func (r *DatasetRepository) Vendors() []string {
	return append([]string(nil), r.vendors...)
}

// ExtraColumns returns the names of the pass-through columns in header order.
func (r *DatasetRepository) ExtraColumns() []string {
	return append([]string(nil), r.extraColumns...)
}

// Len returns the number of loaded rows.
func (r *DatasetRepository) Len() int {
	return len(r.transactions)
}

// LoadedAt reports when the dataset was read.
func (r *DatasetRepository) LoadedAt() time.Time {
	return r.loadedAt
}

// Path returns the file the dataset was loaded from.
func (r *DatasetRepository) Path() string {
	return r.path
}
