package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"budget-reconciler/internal/config"

	"github.com/stretchr/testify/suite"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type SheetsExporterTestSuite struct {
	suite.Suite
	server  *httptest.Server
	cleared []string
	updates []*sheets.BatchUpdateValuesRequest
	failing bool
}

func TestSheetsExporterSuite(t *testing.T) {
	suite.Run(t, new(SheetsExporterTestSuite))
}

func (s *SheetsExporterTestSuite) SetupTest() {
	s.cleared = nil
	s.updates = nil
	s.failing = false
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.failing {
			writeJSON(w, http.StatusForbidden, `{"error": {"code": 403, "message": "The caller does not have permission"}}`)
			return
		}

		switch {
		case strings.HasSuffix(r.URL.Path, ":clear"):
			s.cleared = append(s.cleared, r.URL.Path)
			writeJSON(w, http.StatusOK, `{"spreadsheetId": "sheet-123"}`)
		case strings.HasSuffix(r.URL.Path, "/values:batchUpdate"):
			var request sheets.BatchUpdateValuesRequest
			s.Require().NoError(json.NewDecoder(r.Body).Decode(&request))
			s.updates = append(s.updates, &request)
			writeJSON(w, http.StatusOK, `{"spreadsheetId": "sheet-123", "totalUpdatedRows": 10}`)
		default:
			http.NotFound(w, r)
		}
	}))
}

func (s *SheetsExporterTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *SheetsExporterTestSuite) newExporter(sheetName string) *SheetsExporter {
	exporter, err := NewSheetsExporter(context.Background(),
		config.SheetsConfig{SpreadsheetID: "sheet-123", SheetName: sheetName},
		option.WithEndpoint(s.server.URL+"/"),
		option.WithoutAuthentication(),
		option.WithHTTPClient(s.server.Client()),
	)
	s.Require().NoError(err)
	return exporter
}

func (s *SheetsExporterTestSuite) TestClearsThenWritesTable() {
	err := s.newExporter("Orcamento").Export(context.Background(), testReport())

	s.Require().NoError(err)
	s.Require().Len(s.cleared, 1)
	s.Contains(s.cleared[0], "/v4/spreadsheets/sheet-123/values/'Orcamento':clear")
	s.Require().Len(s.updates, 1)

	update := s.updates[0]
	s.Equal("USER_ENTERED", update.ValueInputOption)
	s.Require().Len(update.Data, 1)
	s.Equal("'Orcamento'!A1", update.Data[0].Range)

	rows := update.Data[0].Values
	// run line, category header, 2 categories, total, blank, transaction header, 2 transactions
	s.Require().Len(rows, 9)
	s.Equal([]any{"Categoria", "Valor", "Limite", "Limite Ajustado", "Porcentagem", "Transacoes"}, rows[1])
	s.Equal("alimentacao_casa", rows[2][0])
	s.Equal(42.1, rows[2][1])
	s.Equal("Total", rows[4][0])
	s.Equal("LOJA TV", rows[7][1])
	s.Equal(-150.5, rows[7][2])
}

func (s *SheetsExporterTestSuite) TestQuotesSheetName() {
	err := s.newExporter("Budget's 2024").Export(context.Background(), testReport())

	s.Require().NoError(err)
	s.Equal("'Budget''s 2024'!A1", s.updates[0].Data[0].Range)
}

func (s *SheetsExporterTestSuite) TestAPIError() {
	s.failing = true

	err := s.newExporter("Orcamento").Export(context.Background(), testReport())

	s.Error(err)
	s.Contains(err.Error(), "failed to clear sheet")
	s.Empty(s.updates)
}

func (s *SheetsExporterTestSuite) TestRequiresSpreadsheetID() {
	_, err := NewSheetsExporter(context.Background(), config.SheetsConfig{}, option.WithoutAuthentication())

	s.Error(err)
}

func (s *SheetsExporterTestSuite) TestMissingCredentialsFile() {
	_, err := NewSheetsExporter(context.Background(), config.SheetsConfig{
		SpreadsheetID:   "sheet-123",
		CredentialsFile: "/nonexistent/credentials.json",
	})

	s.Error(err)
	s.Contains(err.Error(), "read service account file")
}
