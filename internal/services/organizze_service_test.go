package services

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"budget-reconciler/internal/config"
	apierrors "budget-reconciler/internal/errors"
	"budget-reconciler/internal/models"

	"github.com/stretchr/testify/suite"
)

type OrganizzeServiceTestSuite struct {
	suite.Suite
	mux    *http.ServeMux
	server *httptest.Server
	cfg    config.OrganizzeConfig
	ctx    context.Context
	logger *slog.Logger
}

func TestOrganizzeServiceSuite(t *testing.T) {
	suite.Run(t, new(OrganizzeServiceTestSuite))
}

func (s *OrganizzeServiceTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.cfg = config.OrganizzeConfig{
		BaseURL:           s.server.URL,
		Username:          "ana@example.com",
		APIToken:          "secret-token",
		UserAgent:         "budget-reconciler-test",
		Timeout:           time.Second,
		MaxRetries:        2,
		RetryBaseDelay:    time.Millisecond,
		RequestsPerSecond: 1000,
		CircuitBreaker: config.CircuitBreakerSettings{
			MaxFailures:     3,
			ResetTimeout:    time.Minute,
			HalfOpenMaxSucc: 1,
		},
	}
}

func (s *OrganizzeServiceTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *OrganizzeServiceTestSuite) newService() *OrganizzeService {
	return NewOrganizzeService(s.cfg, nil, s.logger)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (s *OrganizzeServiceTestSuite) TestListAccounts_SendsCredentialsAndSkipsArchived() {
	s.mux.HandleFunc("/credit_cards", func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		s.True(ok)
		s.Equal("ana@example.com", username)
		s.Equal("secret-token", password)
		s.Equal("budget-reconciler-test", r.UserAgent())
		s.Equal(http.MethodGet, r.Method)

		writeJSON(w, http.StatusOK, `[
			{"id": 3, "name": "Nubank", "network": "mastercard", "closing_day": 3, "due_day": 10, "archived": false},
			{"id": 4, "name": "Antigo", "network": "visa", "closing_day": 1, "due_day": 8, "archived": true}
		]`)
	})

	accounts, err := s.newService().ListAccounts(s.ctx)

	s.Require().NoError(err)
	s.Equal([]models.Account{{ID: 3, Name: "Nubank", Network: "mastercard", ClosingDay: 3, DueDay: 10}}, accounts)
}

func (s *OrganizzeServiceTestSuite) TestPreEncodedTokenWithoutUsername() {
	encoded := base64.StdEncoding.EncodeToString([]byte("ana@example.com:secret-token"))
	s.cfg.Username = ""
	s.cfg.APIToken = encoded
	s.mux.HandleFunc("/credit_cards", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("Basic "+encoded, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `[]`)
	})

	accounts, err := s.newService().ListAccounts(s.ctx)

	s.Require().NoError(err)
	s.Empty(accounts)
}

func (s *OrganizzeServiceTestSuite) TestFetchInvoices_SendsWindow() {
	s.mux.HandleFunc("/credit_cards/3/invoices", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("2023-03-16", r.URL.Query().Get("start_date"))
		s.Equal("2024-05-14", r.URL.Query().Get("end_date"))
		writeJSON(w, http.StatusOK, `[
			{"id": 5, "date": "2024-03-10", "starting_date": "2024-02-04", "closing_date": "2024-03-03", "amount_cents": 152000, "credit_card_id": 3},
			{"id": 6, "date": "2024-04-10", "starting_date": "2024-03-04", "closing_date": "2024-04-03", "amount_cents": 98000, "credit_card_id": 3}
		]`)
	})

	window := models.NewDateRange(models.Date(2024, time.March, 15), 365, 60)
	invoices, err := s.newService().FetchInvoices(s.ctx, 3, window)

	s.Require().NoError(err)
	s.Equal([]models.Invoice{
		{ID: 5, AccountID: 3, DueDate: models.Date(2024, time.March, 10)},
		{ID: 6, AccountID: 3, DueDate: models.Date(2024, time.April, 10)},
	}, invoices)
}

func (s *OrganizzeServiceTestSuite) TestFetchInvoices_MalformedDate() {
	s.mux.HandleFunc("/credit_cards/3/invoices", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"id": 5, "date": "10/03/2024"}]`)
	})

	_, err := s.newService().FetchInvoices(s.ctx, 3, models.DateRange{})

	s.ErrorIs(err, apierrors.ErrInvariantViolation)
}

func (s *OrganizzeServiceTestSuite) TestFetchInvoiceTransactions_ConvertsCents() {
	s.mux.HandleFunc("/credit_cards/3/invoices/6", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{
			"id": 6, "date": "2024-04-10", "credit_card_id": 3,
			"transactions": [
				{"id": 91, "description": "LOJA X", "date": "2024-01-20", "amount_cents": -15050, "installment": 3, "total_installments": 4, "category_id": 42, "credit_card_invoice_id": 6},
				{"id": 92, "description": "PADARIA", "date": "2024-03-20", "amount_cents": -1290, "installment": 1, "total_installments": 1, "category_id": null}
			]
		}`)
	})

	transactions, err := s.newService().FetchInvoiceTransactions(s.ctx, 3, 6)

	s.Require().NoError(err)
	s.Require().Len(transactions, 2)
	first := transactions[0]
	s.Equal(int64(91), first.ID)
	s.Equal(int64(3), first.AccountID)
	s.Equal(int64(6), first.InvoiceID)
	s.True(first.Amount.Equal(dec("-150.50")), "amount %s", first.Amount)
	s.Equal(3, first.InstallmentIndex)
	s.Equal(4, first.InstallmentCount)
	s.Require().NotNil(first.CategoryID)
	s.Equal(int64(42), *first.CategoryID)
	s.Equal(models.ProvenanceNative, first.Provenance)
	s.Nil(transactions[1].CategoryID)
}

func (s *OrganizzeServiceTestSuite) TestFetchInvoiceTransactions_InvalidInstallment() {
	s.mux.HandleFunc("/credit_cards/3/invoices/6", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id": 6, "transactions": [
			{"id": 91, "description": "LOJA X", "date": "2024-01-20", "amount_cents": -100, "installment": 5, "total_installments": 4}
		]}`)
	})

	_, err := s.newService().FetchInvoiceTransactions(s.ctx, 3, 6)

	s.ErrorIs(err, apierrors.ErrInvariantViolation)
}

func (s *OrganizzeServiceTestSuite) TestCategoryName() {
	s.mux.HandleFunc("/categories/42", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id": 42, "name": "Viagem", "color": "ff0000", "parent_id": null}`)
	})
	s.mux.HandleFunc("/categories/99", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"error": "Not found"}`)
	})
	service := s.newService()

	name, err := service.CategoryName(s.ctx, 42)
	s.Require().NoError(err)
	s.Equal("Viagem", name)

	_, err = service.CategoryName(s.ctx, 99)
	s.ErrorIs(err, apierrors.ErrNotFound)
	s.NotErrorIs(err, apierrors.ErrSourceUnavailable)
}

func (s *OrganizzeServiceTestSuite) TestRetriesServerErrors() {
	var calls atomic.Int32
	s.mux.HandleFunc("/credit_cards", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			writeJSON(w, http.StatusBadGateway, `{"error": "upstream"}`)
			return
		}
		writeJSON(w, http.StatusOK, `[{"id": 3, "name": "Nubank"}]`)
	})

	accounts, err := s.newService().ListAccounts(s.ctx)

	s.Require().NoError(err)
	s.Len(accounts, 1)
	s.Equal(int32(3), calls.Load())
}

func (s *OrganizzeServiceTestSuite) TestRetriesAreBounded() {
	var calls atomic.Int32
	s.mux.HandleFunc("/credit_cards", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusServiceUnavailable, `{"error": "maintenance"}`)
	})

	_, err := s.newService().ListAccounts(s.ctx)

	s.ErrorIs(err, apierrors.ErrSourceUnavailable)
	s.Contains(err.Error(), "maintenance")
	s.Equal(int32(3), calls.Load())
}

func (s *OrganizzeServiceTestSuite) TestClientErrorsAreNotRetried() {
	var calls atomic.Int32
	s.mux.HandleFunc("/credit_cards", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusUnauthorized, `{"error": "invalid credentials"}`)
	})

	_, err := s.newService().ListAccounts(s.ctx)

	s.ErrorIs(err, apierrors.ErrSourceUnavailable)
	s.Contains(err.Error(), "401")
	s.Equal(int32(1), calls.Load())
}

func (s *OrganizzeServiceTestSuite) TestTimeoutIsSourceUnavailable() {
	s.cfg.Timeout = 20 * time.Millisecond
	s.cfg.MaxRetries = 0
	release := make(chan struct{})
	defer close(release)
	s.mux.HandleFunc("/credit_cards", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})

	_, err := s.newService().ListAccounts(s.ctx)

	s.ErrorIs(err, apierrors.ErrSourceUnavailable)
}

func (s *OrganizzeServiceTestSuite) TestCircuitOpensAfterRepeatedFailures() {
	s.cfg.MaxRetries = 0
	var calls atomic.Int32
	s.mux.HandleFunc("/credit_cards", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusInternalServerError, `{"error": "boom"}`)
	})
	service := s.newService()

	for i := 0; i < 3; i++ {
		_, err := service.ListAccounts(s.ctx)
		s.ErrorIs(err, apierrors.ErrSourceUnavailable)
	}
	_, err := service.ListAccounts(s.ctx)

	s.ErrorIs(err, apierrors.ErrSourceUnavailable)
	s.ErrorIs(err, ErrCircuitBreakerOpen)
	s.Equal(int32(3), calls.Load())
}

func (s *OrganizzeServiceTestSuite) TestCancelledContext() {
	s.mux.HandleFunc("/credit_cards", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.newService().ListAccounts(ctx)

	s.ErrorIs(err, apierrors.ErrSourceUnavailable)
	s.ErrorIs(err, context.Canceled)
}
