package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"budget-reconciler/internal/dto"
	"budget-reconciler/internal/errors"
	"budget-reconciler/internal/models"
	"budget-reconciler/internal/repositories"
	"budget-reconciler/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ReportHandler runs reconciliations on demand and serves exported rows
type ReportHandler struct {
	reconciliation services.ReconciliationServiceInterface
	dispatcher     services.ReportDispatcherInterface
	exportRepo     repositories.ExportRepositoryInterface
	logger         *slog.Logger
	now            func() time.Time
}

// NewReportHandler creates a new report handler. exportRepo may be nil when
// the database exporter is disabled.
func NewReportHandler(
	reconciliation services.ReconciliationServiceInterface,
	dispatcher services.ReportDispatcherInterface,
	exportRepo repositories.ExportRepositoryInterface,
	logger *slog.Logger,
) *ReportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportHandler{
		reconciliation: reconciliation,
		dispatcher:     dispatcher,
		exportRepo:     exportRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// RunReport reconciles every configured account for the requested date and,
// unless dry_run is set, hands the report to the exporters and notifiers.
// A delivery failure does not fail the request: the report is returned with
// delivered=false and the failed sinks listed.
func (h *ReportHandler) RunReport(c echo.Context) error {
	var req dto.RunReportRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	today := models.TruncateToDate(h.now())
	if req.Today != "" {
		parsed, err := models.ParseDate(req.Today)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("today must be YYYY-MM-DD"))
		}
		today = parsed
	}

	ctx := c.Request().Context()

	report, err := h.reconciliation.Run(ctx, today)
	if err != nil {
		return SendEngineError(c, err)
	}

	response := dto.RunReportResponse{
		ReportSummary: dto.NewReportSummary(report),
		DryRun:        req.DryRun,
	}

	if !req.DryRun {
		if err := h.dispatcher.Dispatch(ctx, report); err != nil {
			h.logger.Warn("report delivery incomplete",
				"trace_id", getTraceID(c),
				"run_id", report.RunID,
				"error", err,
			)
			response.DeliveryErrors = deliveryErrors(err)
		} else {
			response.Delivered = true
		}
	}

	return c.JSON(http.StatusOK, response)
}

// ListExportRows returns the rows persisted for a run, optionally filtered by
// the type query parameter (transaction or category)
func (h *ReportHandler) ListExportRows(c echo.Context) error {
	if h.exportRepo == nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database export is disabled"))
	}

	runID, err := uuid.Parse(c.Param("run_id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("run_id must be a UUID"))
	}

	var rows []models.ExportRow
	switch rowType := c.QueryParam("type"); rowType {
	case "":
		rows, err = h.exportRepo.GetByRunID(runID)
	case models.ExportRowTypeTransaction, models.ExportRowTypeCategory:
		rows, err = h.exportRepo.GetByRunIDAndType(runID, rowType)
	default:
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("type must be transaction or category"))
	}

	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return SendError(c, errors.EngineNotFound, errors.WithDetails("No export rows for run "+runID.String()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ExportRowsResponse{
		RunID: runID.String(),
		Rows:  rows,
		Count: len(rows),
	})
}

// deliveryErrors flattens a joined dispatch error into one message per sink
func deliveryErrors(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		messages := make([]string, 0, len(joined.Unwrap()))
		for _, e := range joined.Unwrap() {
			messages = append(messages, e.Error())
		}
		return messages
	}
	return strings.Split(err.Error(), "\n")
}
