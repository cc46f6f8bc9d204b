package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"budget-reconciler/internal/config"
	"budget-reconciler/internal/models"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsExporter overwrites one worksheet with the category table followed
// by the reconciled transactions
type SheetsExporter struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
}

// NewSheetsExporter creates a Sheets sink. Service account credentials are
// read from cfg.CredentialsFile when set; extra options are appended last.
func NewSheetsExporter(ctx context.Context, cfg config.SheetsConfig, opts ...option.ClientOption) (*SheetsExporter, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet id")
	}

	var clientOpts []option.ClientOption
	if cfg.CredentialsFile != "" {
		credentialsJSON, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		clientOpts = append(clientOpts,
			option.WithCredentialsJSON(credentialsJSON),
			option.WithScopes(sheets.SpreadsheetsScope),
		)
	}
	clientOpts = append(clientOpts, opts...)

	svc, err := sheets.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	sheetName := cfg.SheetName
	if sheetName == "" {
		sheetName = "Orcamento"
	}

	return &SheetsExporter{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     sheetName,
	}, nil
}

func (e *SheetsExporter) Name() string {
	return "sheets"
}

func (e *SheetsExporter) Export(ctx context.Context, report *models.BudgetReport) error {
	sheet := quoteSheetName(e.sheetName)

	_, err := e.svc.Spreadsheets.Values.Clear(e.spreadsheetID, sheet, &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to clear sheet %s: %w", e.sheetName, err)
	}

	request := &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data: []*sheets.ValueRange{{
			Range:  sheet + "!A1",
			Values: sheetValues(report),
		}},
	}

	_, err = e.svc.Spreadsheets.Values.BatchUpdate(e.spreadsheetID, request).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write sheet %s: %w", e.sheetName, err)
	}

	return nil
}

func sheetValues(report *models.BudgetReport) [][]any {
	values := make([][]any, 0, len(report.Aggregates)+len(report.Transactions)+6)

	values = append(values,
		[]any{"Run", report.RunID.String(), "Data", report.Today.Format(models.DateLayout)},
		[]any{"Categoria", "Valor", "Limite", "Limite Ajustado", "Porcentagem", "Transacoes"},
	)
	for _, agg := range report.Aggregates {
		values = append(values, []any{
			agg.Category,
			agg.Spent.InexactFloat64(),
			agg.BaseLimit.InexactFloat64(),
			agg.AdjustedLimit.InexactFloat64(),
			agg.PercentUsed.InexactFloat64(),
			agg.TransactionCount,
		})
	}
	values = append(values, []any{
		"Total",
		report.Totals.Spent.InexactFloat64(),
		report.Totals.BaseLimit.InexactFloat64(),
		report.Totals.AdjustedLimit.InexactFloat64(),
		report.Totals.PercentUsed.InexactFloat64(),
		report.Totals.TransactionCount,
	})

	values = append(values,
		[]any{},
		[]any{"Data", "Descricao", "Valor", "Parcela", "Total Parcelas", "Categoria", "Origem"},
	)
	for _, tx := range report.Transactions {
		values = append(values, []any{
			tx.OccurredDate.Format(models.DateLayout),
			tx.Description,
			tx.Amount.InexactFloat64(),
			tx.InstallmentIndex,
			tx.InstallmentCount,
			tx.Category,
			string(tx.Provenance),
		})
	}

	return values
}

func quoteSheetName(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
