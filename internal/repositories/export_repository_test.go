package repositories

import (
	"testing"
	"time"

	"budget-reconciler/internal/database"
	apierrors "budget-reconciler/internal/errors"
	"budget-reconciler/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestExportRepository(t *testing.T) {
	suite.Run(t, new(ExportRepositorySuite))
}

type ExportRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo ExportRepositoryInterface
}

func (s *ExportRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewExportRepository(s.db.DB)
}

func (s *ExportRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *ExportRepositorySuite) report(runID uuid.UUID) *models.BudgetReport {
	return &models.BudgetReport{
		RunID: runID,
		Transactions: []models.CategorizedTransaction{
			{
				Transaction: models.Transaction{
					ID:               gofakeit.Int64(),
					AccountID:        3,
					Description:      "LOJA X",
					OccurredDate:     models.Date(2024, time.January, 20),
					Amount:           decimal.RequireFromString("-150.50"),
					InstallmentIndex: 4,
					InstallmentCount: 4,
					Provenance:       models.ProvenanceCarriedForward,
				},
				Category: models.CategoryShopping,
			},
			{
				Transaction: models.Transaction{
					ID:               gofakeit.Int64(),
					AccountID:        3,
					Description:      gofakeit.Company(),
					OccurredDate:     models.Date(2024, time.March, 2),
					Amount:           decimal.RequireFromString("-42.10"),
					InstallmentIndex: 1,
					InstallmentCount: 1,
					Provenance:       models.ProvenanceNative,
				},
				Category: models.CategoryGroceries,
			},
		},
		Aggregates: []models.CategoryAggregate{
			{
				Category:      models.CategoryGroceries,
				Spent:         decimal.RequireFromString("42.10"),
				BaseLimit:     decimal.NewFromInt(800),
				AdjustedLimit: decimal.NewFromInt(900),
				PercentUsed:   decimal.RequireFromString("4.68"),
			},
			{
				Category:      models.CategoryShopping,
				Spent:         decimal.RequireFromString("150.50"),
				BaseLimit:     decimal.NewFromInt(800),
				AdjustedLimit: decimal.NewFromInt(800),
				PercentUsed:   decimal.RequireFromString("18.81"),
			},
		},
	}
}

func (s *ExportRepositorySuite) TestReplaceRun_InsertsRows() {
	runID := uuid.New()
	rows := models.NewExportRows(s.report(runID))

	err := s.repo.ReplaceRun(runID, rows)
	s.Require().NoError(err)

	stored, err := s.repo.GetByRunID(runID)
	s.Require().NoError(err)
	s.Require().Len(stored, 4)

	s.Equal(models.ExportRowTypeTransaction, stored[0].RowType)
	s.Equal("LOJA X", stored[0].Description)
	s.True(stored[0].Amount.Equal(decimal.RequireFromString("-150.50")))
	s.Equal(4, stored[0].InstallmentIndex)
	s.Equal(string(models.ProvenanceCarriedForward), stored[0].Provenance)
	s.Require().NotNil(stored[0].OccurredDate)
	s.Equal("2024-01-20", stored[0].OccurredDate.Format(models.DateLayout))

	s.Equal(models.ExportRowTypeCategory, stored[3].RowType)
	s.NotEqual(uuid.Nil, stored[3].ID)
	s.NotZero(stored[3].CreatedAt)
}

func (s *ExportRepositorySuite) TestReplaceRun_ReplacesPreviousRows() {
	runID := uuid.New()
	s.Require().NoError(s.repo.ReplaceRun(runID, models.NewExportRows(s.report(runID))))

	report := s.report(runID)
	report.Transactions = report.Transactions[:1]
	s.Require().NoError(s.repo.ReplaceRun(runID, models.NewExportRows(report)))

	stored, err := s.repo.GetByRunID(runID)
	s.Require().NoError(err)
	s.Len(stored, 3)
}

func (s *ExportRepositorySuite) TestReplaceRun_KeepsOtherRuns() {
	first, second := uuid.New(), uuid.New()
	s.Require().NoError(s.repo.ReplaceRun(first, models.NewExportRows(s.report(first))))
	s.Require().NoError(s.repo.ReplaceRun(second, models.NewExportRows(s.report(second))))

	stored, err := s.repo.GetByRunID(first)
	s.Require().NoError(err)
	s.Len(stored, 4)
}

func (s *ExportRepositorySuite) TestReplaceRun_RejectsForeignRows() {
	runID := uuid.New()
	rows := models.NewExportRows(s.report(uuid.New()))

	err := s.repo.ReplaceRun(runID, rows)

	s.Error(err)
	_, err = s.repo.GetByRunID(runID)
	s.ErrorIs(err, apierrors.ErrNotFound)
}

func (s *ExportRepositorySuite) TestReplaceRun_EmptyRunID() {
	err := s.repo.ReplaceRun(uuid.Nil, nil)

	s.Error(err)
	s.Contains(err.Error(), "run id cannot be empty")
}

func (s *ExportRepositorySuite) TestGetByRunIDAndType() {
	runID := uuid.New()
	s.Require().NoError(s.repo.ReplaceRun(runID, models.NewExportRows(s.report(runID))))

	categories, err := s.repo.GetByRunIDAndType(runID, models.ExportRowTypeCategory)

	s.Require().NoError(err)
	s.Require().Len(categories, 2)
	s.Equal(models.CategoryGroceries, categories[0].Category)
	s.True(categories[0].AdjustedLimit.Equal(decimal.NewFromInt(900)))
	s.Equal(models.CategoryShopping, categories[1].Category)
}

func (s *ExportRepositorySuite) TestGetByRunID_NotFound() {
	_, err := s.repo.GetByRunID(uuid.New())

	s.ErrorIs(err, apierrors.ErrNotFound)
}

func (s *ExportRepositorySuite) TestDeleteOlderThan() {
	oldRun, newRun := uuid.New(), uuid.New()
	oldRows := models.NewExportRows(s.report(oldRun))
	for i := range oldRows {
		oldRows[i].CreatedAt = time.Now().UTC().AddDate(0, 0, -45)
	}
	s.Require().NoError(s.repo.ReplaceRun(oldRun, oldRows))
	s.Require().NoError(s.repo.ReplaceRun(newRun, models.NewExportRows(s.report(newRun))))

	deleted, err := s.repo.DeleteOlderThan(30 * 24 * time.Hour)

	s.Require().NoError(err)
	s.Equal(int64(4), deleted)
	_, err = s.repo.GetByRunID(oldRun)
	s.ErrorIs(err, apierrors.ErrNotFound)
	stored, err := s.repo.GetByRunID(newRun)
	s.Require().NoError(err)
	s.Len(stored, 4)
}
