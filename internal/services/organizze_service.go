package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"budget-reconciler/internal/config"
	"budget-reconciler/internal/dto"
	apierrors "budget-reconciler/internal/errors"
	"budget-reconciler/internal/models"

	"github.com/sethvargo/go-retry"
	"golang.org/x/time/rate"
)

// AuthTransport adds Basic credentials and the client identification headers
// to every Organizze request. Without a username the token is sent as an
// already encoded credential.
type AuthTransport struct {
	username  string
	token     string
	userAgent string
	base      http.RoundTripper
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	if t.username != "" {
		req.SetBasicAuth(t.username, t.token)
	} else {
		req.Header.Set("Authorization", "Basic "+t.token)
	}
	req.Header.Set("User-Agent", t.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	return t.base.RoundTrip(req)
}

// OrganizzeService reads credit cards, invoices and categories from the
// Organizze REST API
type OrganizzeService struct {
	config  config.OrganizzeConfig
	client  *http.Client
	limiter *rate.Limiter
	breaker CircuitBreakerInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewOrganizzeService creates a new Organizze client. It serves both as the
// reconciliation data source and as the category directory.
func NewOrganizzeService(
	cfg config.OrganizzeConfig,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *OrganizzeService {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = NoopMetrics{}
	}

	transport := &AuthTransport{
		username:  cfg.Username,
		token:     cfg.APIToken,
		userAgent: cfg.UserAgent,
		base:      http.DefaultTransport,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}

	perSecond := cfg.RequestsPerSecond
	if perSecond < 1 {
		perSecond = 1
	}

	return &OrganizzeService{
		config:  cfg,
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(perSecond), perSecond),
		breaker: NewCircuitBreaker(models.DataSourceOrganizze, cfg.CircuitBreaker, metrics),
		metrics: metrics,
		logger:  logger,
	}
}

// ListAccounts returns the credit cards that are not archived
func (s *OrganizzeService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var cards []dto.OrganizzeCreditCard
	if err := s.getJSON(ctx, "credit_cards", "/credit_cards", nil, &cards); err != nil {
		return nil, err
	}

	accounts := make([]models.Account, 0, len(cards))
	for _, card := range cards {
		if card.Archived {
			continue
		}
		accounts = append(accounts, card.ToModel())
	}
	return accounts, nil
}

// FetchInvoices returns the invoices of a card whose due date falls in window
func (s *OrganizzeService) FetchInvoices(ctx context.Context, accountID int64, window models.DateRange) ([]models.Invoice, error) {
	query := url.Values{}
	query.Set("start_date", window.Start.Format(models.DateLayout))
	query.Set("end_date", window.End.Format(models.DateLayout))

	var payload []dto.OrganizzeInvoice
	path := fmt.Sprintf("/credit_cards/%d/invoices", accountID)
	if err := s.getJSON(ctx, "invoices", path, query, &payload); err != nil {
		return nil, err
	}

	invoices := make([]models.Invoice, 0, len(payload))
	for _, item := range payload {
		invoice, err := item.ToModel(accountID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apierrors.ErrInvariantViolation, err)
		}
		invoices = append(invoices, invoice)
	}
	return invoices, nil
}

// FetchInvoiceTransactions returns the line items billed on one invoice
func (s *OrganizzeService) FetchInvoiceTransactions(ctx context.Context, accountID, invoiceID int64) ([]models.Transaction, error) {
	var detail dto.OrganizzeInvoiceDetail
	path := fmt.Sprintf("/credit_cards/%d/invoices/%d", accountID, invoiceID)
	if err := s.getJSON(ctx, "invoice_detail", path, nil, &detail); err != nil {
		return nil, err
	}

	transactions := make([]models.Transaction, 0, len(detail.Transactions))
	for _, item := range detail.Transactions {
		tx, err := item.ToModel(accountID, invoiceID)
		if err != nil {
			return nil, fmt.Errorf("invoice %d: %w: %v", invoiceID, apierrors.ErrInvariantViolation, err)
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

// CategoryName resolves a category id to its display name
func (s *OrganizzeService) CategoryName(ctx context.Context, categoryID int64) (string, error) {
	var category dto.OrganizzeCategory
	path := "/categories/" + strconv.FormatInt(categoryID, 10)
	if err := s.getJSON(ctx, "categories", path, nil, &category); err != nil {
		return "", err
	}
	return category.Name, nil
}

// getJSON performs a throttled GET with bounded retries behind the circuit
// breaker and decodes a successful body into out.
func (s *OrganizzeService) getJSON(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	if s.breaker.IsOpen() {
		return fmt.Errorf("organizze %s: %w: %w", endpoint, apierrors.ErrSourceUnavailable, ErrCircuitBreakerOpen)
	}

	backoff := retry.WithMaxRetries(uint64(max(s.config.MaxRetries, 0)), retry.NewExponential(s.retryBaseDelay()))

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			s.metrics.IncrementCounter("data_source.retry", map[string]string{"endpoint": endpoint})
			s.logger.Warn("retrying organizze request",
				"endpoint", endpoint,
				"path", path,
				"attempt", attempt,
			)
		}

		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := s.buildRequest(ctx, path, query)
		if err != nil {
			return err
		}

		start := time.Now()
		resp, body, err := s.do(req)
		s.metrics.RecordProcessingTime("data_source.request", time.Since(start))
		if err != nil {
			s.metrics.IncrementCounter("data_source.request", map[string]string{"endpoint": endpoint, "status": "error"})
			if ctx.Err() != nil {
				return err
			}
			return retry.RetryableError(err)
		}
		s.metrics.IncrementCounter("data_source.request", map[string]string{
			"endpoint": endpoint,
			"status":   strconv.Itoa(resp.StatusCode),
		})

		return s.handleResponse(resp, body, out)
	})

	switch {
	case err == nil:
		s.breaker.RecordSuccess()
		return nil
	case errors.Is(err, apierrors.ErrNotFound):
		s.breaker.RecordSuccess()
		return fmt.Errorf("organizze %s %s: %w", endpoint, path, err)
	default:
		s.breaker.RecordFailure()
		s.logger.Error("organizze request failed",
			"endpoint", endpoint,
			"path", path,
			"attempts", attempt,
			"error", err,
		)
		if errors.Is(err, apierrors.ErrSourceUnavailable) {
			return fmt.Errorf("organizze %s: %w", endpoint, err)
		}
		return fmt.Errorf("organizze %s: %w: %w", endpoint, apierrors.ErrSourceUnavailable, err)
	}
}

func (s *OrganizzeService) handleResponse(resp *http.Response, body []byte, out any) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("%w: decode response: %v", apierrors.ErrSourceUnavailable, err)
		}
		return nil

	case resp.StatusCode == http.StatusNotFound:
		return apierrors.ErrNotFound

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return retry.RetryableError(fmt.Errorf("%w: status %d: %s",
			apierrors.ErrSourceUnavailable, resp.StatusCode, errorMessage(body)))

	default:
		return fmt.Errorf("%w: status %d: %s",
			apierrors.ErrSourceUnavailable, resp.StatusCode, errorMessage(body))
	}
}

func (s *OrganizzeService) buildRequest(ctx context.Context, path string, query url.Values) (*http.Request, error) {
	target := strings.TrimRight(s.config.BaseURL, "/") + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return req, nil
}

func (s *OrganizzeService) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}

func (s *OrganizzeService) retryBaseDelay() time.Duration {
	if s.config.RetryBaseDelay <= 0 {
		return 100 * time.Millisecond
	}
	return s.config.RetryBaseDelay
}

// errorMessage extracts the API error message, falling back to the raw body
func errorMessage(body []byte) string {
	var errResp dto.OrganizzeErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}
	return strings.TrimSpace(string(body))
}
