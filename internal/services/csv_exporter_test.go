package services

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

func TestCSVExporter_WritesBothFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	exporter := NewCSVExporter(dir)

	err := exporter.Export(context.Background(), testReport())
	require.NoError(t, err)

	transactions := readCSV(t, filepath.Join(dir, TransactionsCSVFile))
	require.Len(t, transactions, 3)
	assert.Equal(t, transactionsCSVHeader, transactions[0])
	assert.Equal(t, []string{"91", "3", "8", "LOJA TV", "2024-01-20", "-150.50", "4", "4", "casa", "carried_forward"}, transactions[1])
	assert.Equal(t, "PADARIA, CENTRO", transactions[2][3])

	categories := readCSV(t, filepath.Join(dir, CategoriesCSVFile))
	require.Len(t, categories, 4)
	assert.Equal(t, []string{"alimentacao_casa", "under_budget", "42.10", "800.00", "900.00", "4.68", "1"}, categories[1])
	assert.Equal(t, []string{"total", "", "192.60", "1300.00", "1400.00", "13.76", "2"}, categories[3])

	leftovers, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestCSVExporter_ReplacesPreviousExport(t *testing.T) {
	dir := t.TempDir()
	exporter := NewCSVExporter(dir)
	report := testReport()
	require.NoError(t, exporter.Export(context.Background(), report))

	report.Transactions = report.Transactions[:1]
	require.NoError(t, exporter.Export(context.Background(), report))

	assert.Len(t, readCSV(t, filepath.Join(dir, TransactionsCSVFile)), 2)
}

func TestCSVExporter_UnwritableDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	err := NewCSVExporter(filepath.Join(file, "sub")).Export(context.Background(), testReport())

	assert.Error(t, err)
}

func TestCSVExporter_Name(t *testing.T) {
	assert.Equal(t, "csv", NewCSVExporter("").Name())
}
