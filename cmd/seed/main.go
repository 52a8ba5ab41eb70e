package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"budgetboard/internal/models"
	"budgetboard/pkg/config"
	"budgetboard/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	departments = []string{"Engineering", "Marketing", "Operations", "HR"}
	vendors     = []string{"Acme Corp", "Globex", "Initech", "Umbrella Supplies", "Stark Industries", "Wayne Tech"}
	quarters    = []string{"Q1", "Q2", "Q3", "Q4"}
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	out := flag.String("out", cfg.Dataset.Path, "output CSV path")
	rows := flag.Int("rows", 16, "number of transactions to generate")
	seed := flag.Int64("seed", 42, "random seed, fixed for a reproducible sample")
	flag.Parse()

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if err := writeDataset(*out, *rows, rand.New(rand.NewSource(*seed))); err != nil {
		appLogger.Fatal("Failed to write dataset", zap.Error(err))
	}

	appLogger.Info("Sample dataset written", zap.String("path", *out), zap.Int("rows", *rows))
}

func writeDataset(path string, rows int, rng *rand.Rand) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{models.ColumnDepartment, models.ColumnVendor, models.ColumnAllocated, models.ColumnSpent, "Quarter"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := 0; i < rows; i++ {
		allocated := decimal.NewFromInt(int64(5000 + rng.Intn(90000)))
		// Spend between 60% and 125% of the allocation so some rows overrun
		factor := decimal.NewFromFloat(0.6 + rng.Float64()*0.65)
		spent := allocated.Mul(factor).Round(2)

		record := []string{
			departments[rng.Intn(len(departments))],
			vendors[rng.Intn(len(vendors))],
			allocated.StringFixed(2),
			spent.StringFixed(2),
			quarters[rng.Intn(len(quarters))],
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
