package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleDataset = `Department,Vendor,Budget_Allocated,Budget_Spent,Quarter
Eng,Acme,100.00,150.50,Q1
Ops,Globex,40.00,30.00,Q1
Eng,Globex,25.00,20.00,Q2
`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewDatasetRepository(t *testing.T) {
	repo, err := NewDatasetRepository(writeDataset(t, sampleDataset), zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 3, repo.Len())
	assert.Equal(t, []string{"Eng", "Ops"}, repo.Departments())
	assert.Equal(t, []string{"Acme", "Globex"}, repo.Vendors())
	assert.Equal(t, []string{"Quarter"}, repo.ExtraColumns())
	assert.False(t, repo.LoadedAt().IsZero())

	rows := repo.All()
	require.Len(t, rows, 3)
	assert.Equal(t, "Eng", rows[0].Department)
	assert.Equal(t, "Acme", rows[0].Vendor)
	assert.True(t, rows[0].Allocated.Equal(decimal.RequireFromString("100")))
	assert.True(t, rows[0].Spent.Equal(decimal.RequireFromString("150.5")))
	assert.Equal(t, []string{"Q1"}, rows[0].Extra)
}

func TestNewDatasetRepositoryColumnOrderIsFree(t *testing.T) {
	reordered := `Quarter,Budget_Spent,Vendor,Department,Budget_Allocated
Q1,150.50,Acme,Eng,100.00
`
	repo, err := NewDatasetRepository(writeDataset(t, reordered), zap.NewNop())
	require.NoError(t, err)

	rows := repo.All()
	require.Len(t, rows, 1)
	assert.Equal(t, "Eng", rows[0].Department)
	assert.Equal(t, "Acme", rows[0].Vendor)
	assert.True(t, rows[0].Spent.Equal(decimal.RequireFromString("150.5")))
	assert.Equal(t, []string{"Quarter"}, repo.ExtraColumns())
}

func TestNewDatasetRepositoryHeaderOnly(t *testing.T) {
	repo, err := NewDatasetRepository(writeDataset(t, "Department,Vendor,Budget_Allocated,Budget_Spent\n"), zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 0, repo.Len())
	assert.Empty(t, repo.Departments())
	assert.Empty(t, repo.Vendors())
}

func TestNewDatasetRepositoryAmountWhitespace(t *testing.T) {
	repo, err := NewDatasetRepository(writeDataset(t, "Department,Vendor,Budget_Allocated,Budget_Spent\nEng,Acme, 10.50 ,5\n"), zap.NewNop())
	require.NoError(t, err)

	rows := repo.All()
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Allocated.Equal(decimal.RequireFromString("10.5")))
}

func TestNewDatasetRepositoryErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewDatasetRepository(filepath.Join(t.TempDir(), "absent.csv"), zap.NewNop())
		require.Error(t, err)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := NewDatasetRepository(writeDataset(t, ""), zap.NewNop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no header row")
	})

	t.Run("missing required column", func(t *testing.T) {
		_, err := NewDatasetRepository(writeDataset(t, "Department,Vendor,Budget_Allocated\nEng,Acme,10\n"), zap.NewNop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"Budget_Spent"`)
	})

	t.Run("headers are case sensitive", func(t *testing.T) {
		_, err := NewDatasetRepository(writeDataset(t, "department,Vendor,Budget_Allocated,Budget_Spent\nEng,Acme,10,5\n"), zap.NewNop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"Department"`)
	})

	t.Run("non-numeric amount", func(t *testing.T) {
		_, err := NewDatasetRepository(writeDataset(t, "Department,Vendor,Budget_Allocated,Budget_Spent\nEng,Acme,ten,5\n"), zap.NewNop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 2")
		assert.Contains(t, err.Error(), `"ten"`)
	})
}
