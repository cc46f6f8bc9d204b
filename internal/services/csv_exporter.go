package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"budget-reconciler/internal/models"
)

const (
	TransactionsCSVFile = "transacoes_ajustado.csv"
	CategoriesCSVFile   = "orcamento_categorias.csv"
)

var (
	transactionsCSVHeader = []string{
		"id", "account_id", "invoice_id", "description", "date", "amount",
		"installment", "total_installments", "category", "provenance",
	}
	categoriesCSVHeader = []string{
		"category", "class", "spent", "base_limit", "adjusted_limit", "percent_used", "transactions",
	}
)

// CSVExporter writes the reconciled transactions and the category table as
// two CSV files in a directory. Files are replaced atomically.
type CSVExporter struct {
	dir string
}

func NewCSVExporter(dir string) *CSVExporter {
	if dir == "" {
		dir = "."
	}
	return &CSVExporter{dir: dir}
}

func (e *CSVExporter) Name() string {
	return "csv"
}

func (e *CSVExporter) Export(ctx context.Context, report *models.BudgetReport) error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	if err := e.write(TransactionsCSVFile, transactionRecords(report)); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return e.write(CategoriesCSVFile, categoryRecords(report))
}

func (e *CSVExporter) write(name string, records [][]string) error {
	tmp, err := os.CreateTemp(e.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	writer := csv.NewWriter(tmp)
	if err := writer.WriteAll(records); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(e.dir, name)); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}

func transactionRecords(report *models.BudgetReport) [][]string {
	records := make([][]string, 0, len(report.Transactions)+1)
	records = append(records, transactionsCSVHeader)

	for _, tx := range report.Transactions {
		records = append(records, []string{
			strconv.FormatInt(tx.ID, 10),
			strconv.FormatInt(tx.AccountID, 10),
			strconv.FormatInt(tx.InvoiceID, 10),
			tx.Description,
			tx.OccurredDate.Format(models.DateLayout),
			tx.Amount.StringFixed(2),
			strconv.Itoa(tx.InstallmentIndex),
			strconv.Itoa(tx.InstallmentCount),
			tx.Category,
			string(tx.Provenance),
		})
	}
	return records
}

// categoryRecords renders one row per category followed by a totals row
func categoryRecords(report *models.BudgetReport) [][]string {
	records := make([][]string, 0, len(report.Aggregates)+2)
	records = append(records, categoriesCSVHeader)

	for _, agg := range report.Aggregates {
		records = append(records, []string{
			agg.Category,
			string(agg.Class),
			agg.Spent.StringFixed(2),
			agg.BaseLimit.StringFixed(2),
			agg.AdjustedLimit.StringFixed(2),
			agg.PercentUsed.StringFixed(2),
			strconv.Itoa(agg.TransactionCount),
		})
	}

	totals := report.Totals
	records = append(records, []string{
		"total",
		"",
		totals.Spent.StringFixed(2),
		totals.BaseLimit.StringFixed(2),
		totals.AdjustedLimit.StringFixed(2),
		totals.PercentUsed.StringFixed(2),
		strconv.Itoa(totals.TransactionCount),
	})
	return records
}
