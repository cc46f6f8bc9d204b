package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	apierrors "budget-reconciler/internal/errors"
	"budget-reconciler/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// sampleMerchant is a card statement descriptor with the category id the
// sample directory resolves it to
type sampleMerchant struct {
	Description string
	CategoryID  int64
	Min, Max    float64
}

// installmentPlan is a purchase split over several invoices
type installmentPlan struct {
	Description string
	CategoryID  int64
	Total       decimal.Decimal
	Count       int
	Start       time.Time
}

const (
	sampleAccountBase   = 1000
	sampleInvoiceStride = 100000
	sampleClosingOffset = 7
	annualFeeCount      = 12
)

var sampleCategoryNames = map[int64]string{
	1:  models.CategoryGroceries,
	2:  models.CategoryAnnualFee,
	3:  models.CategorySubscriptions,
	4:  models.CategoryBeauty,
	5:  models.CategoryHome,
	6:  models.CategoryShopping,
	7:  models.CategoryLeisure,
	8:  models.CategoryEducation,
	9:  models.CategorySports,
	10: models.CategoryOther,
	11: models.CategoryHealth,
	12: models.CategoryCarInsurance,
	13: models.CategoryTransport,
	14: models.CategoryTravel,
}

func sampleMerchants() []sampleMerchant {
	return []sampleMerchant{
		{"PAO DE ACUCAR 1234", 1, 40, 380},
		{"HORTIFRUTI ICARAI", 1, 25, 160},
		{"ASSAI ATACADISTA", 1, 120, 600},
		{"NETFLIX.COM", 3, 39.9, 55.9},
		{"SPOTIFY", 3, 21.9, 34.9},
		{"SEPHORA", 4, 60, 320},
		{"LEROY MERLIN", 5, 50, 700},
		{"RENNER", 6, 80, 450},
		{"AMAZON MARKETPLACE", 6, 30, 400},
		{"OUTBACK STEAKHOUSE", 7, 120, 380},
		{"STARBUCKS", 7, 15, 60},
		{"IFD*IFOOD", 7, 35, 140},
		{"LIVRARIA DA TRAVESSA", 8, 40, 200},
		{"DROGASIL", 11, 20, 250},
		{"UBER *TRIP", 13, 12, 80},
		{"POSTO SHELL", 13, 150, 320},
		{"LATAM AIRLINES", 14, 300, 1500},
	}
}

func samplePlans() []installmentPlan {
	return []installmentPlan{
		{Description: "ELETRODOMESTICO MIDEA", CategoryID: 5, Total: decimal.NewFromInt(2400), Count: 6},
		{Description: "COLEGIO SAO VICENTE", CategoryID: 8, Total: decimal.NewFromInt(4200), Count: 10},
		{Description: "HDI SEGUROS", CategoryID: 12, Total: decimal.NewFromInt(4836), Count: 12},
		{Description: "RIACHUELO", CategoryID: 6, Total: decimal.NewFromFloat(599.7), Count: 3},
	}
}

// SampleDataSource generates reproducible credit card data for demos and
// dry runs. Installment rows of invoices due after the current month are
// omitted, as the billing source does for open invoices, so carry-forward
// has work to do.
type SampleDataSource struct {
	seed     uint64
	accounts []models.Account
	now      func() time.Time
}

// NewSampleDataSource creates a generator with a fixed seed. The same seed
// always yields the same accounts, invoices and transactions.
func NewSampleDataSource(seed uint64, accountNames []string) *SampleDataSource {
	if len(accountNames) == 0 {
		accountNames = []string{"Nubank", "Itau Personnalite"}
	}

	faker := gofakeit.New(seed)
	networks := []string{"mastercard", "visa", "elo", "amex"}

	accounts := make([]models.Account, len(accountNames))
	for i, name := range accountNames {
		accounts[i] = models.Account{
			ID:      int64(sampleAccountBase + i + 1),
			Name:    name,
			Network: faker.RandomString(networks),
			DueDay:  faker.IntRange(5, 20),
		}
		accounts[i].ClosingDay = accounts[i].DueDay - sampleClosingOffset
		if accounts[i].ClosingDay < 1 {
			accounts[i].ClosingDay += 28
		}
	}

	return &SampleDataSource{
		seed:     seed,
		accounts: accounts,
		now:      time.Now,
	}
}

func (s *SampleDataSource) ListAccounts(ctx context.Context) ([]models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	accounts := make([]models.Account, len(s.accounts))
	copy(accounts, s.accounts)
	return accounts, nil
}

// FetchInvoices returns one invoice per month whose due date falls in window
func (s *SampleDataSource) FetchInvoices(ctx context.Context, accountID int64, window models.DateRange) ([]models.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	account, err := s.account(accountID)
	if err != nil {
		return nil, err
	}

	var invoices []models.Invoice
	month := models.Date(window.Start.Year(), window.Start.Month(), 1)
	for !month.After(window.End) {
		due := s.dueDate(account, month)
		if !due.Before(window.Start) && !due.After(window.End) {
			invoices = append(invoices, models.Invoice{
				ID:        invoiceID(accountID, due),
				AccountID: accountID,
				DueDate:   due,
			})
		}
		month = month.AddDate(0, 1, 0)
	}
	return invoices, nil
}

// FetchInvoiceTransactions rebuilds the line items of an invoice from its id
func (s *SampleDataSource) FetchInvoiceTransactions(ctx context.Context, accountID, id int64) ([]models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	account, err := s.account(accountID)
	if err != nil {
		return nil, err
	}

	due, err := dueDateOf(id)
	if err != nil {
		return nil, err
	}
	due = s.dueDate(account, due)
	closing := due.AddDate(0, 0, -sampleClosingOffset)
	opening := models.AddMonths(closing, -1).AddDate(0, 0, 1)

	faker := gofakeit.New(s.seed ^ uint64(id))
	builder := &sampleBuilder{accountID: accountID, invoiceID: id}

	merchants := sampleMerchants()
	for i := faker.IntRange(8, 18); i > 0; i-- {
		merchant := merchants[faker.IntRange(0, len(merchants)-1)]
		occurred := opening.AddDate(0, 0, faker.IntRange(0, int(closing.Sub(opening).Hours()/24)))
		amount := decimal.NewFromFloat(faker.Price(merchant.Min, merchant.Max)).Round(2).Neg()
		builder.add(merchant.Description, occurred, amount, 1, 1, merchant.CategoryID)
	}

	if faker.IntRange(0, 4) == 0 {
		merchant := merchants[faker.IntRange(0, len(merchants)-1)]
		refund := decimal.NewFromFloat(faker.Price(10, 80)).Round(2)
		builder.add("ESTORNO "+merchant.Description, closing.AddDate(0, 0, -1), refund, 1, 1, merchant.CategoryID)
	}

	builder.add("DEB. AUTOM. DE FATURA", opening, decimal.NewFromFloat(faker.Price(800, 4000)).Round(2), 1, 1, 0)

	if s.isClosed(due) {
		s.addInstallments(builder, account, opening)
	}

	return builder.transactions, nil
}

// CategoryName resolves the ids used by the generated transactions
func (s *SampleDataSource) CategoryName(ctx context.Context, categoryID int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name, ok := sampleCategoryNames[categoryID]
	if !ok {
		return "", fmt.Errorf("category %d: %w", categoryID, apierrors.ErrNotFound)
	}
	return name, nil
}

// addInstallments bills every running plan and the annual fee on a closed invoice
func (s *SampleDataSource) addInstallments(builder *sampleBuilder, account models.Account, opening time.Time) {
	anchor := models.AddMonths(models.TruncateToDate(s.now()), -2)

	for n, plan := range samplePlans() {
		plan.Start = models.AddMonths(anchor, -n)
		plan.Start = models.Date(plan.Start.Year(), plan.Start.Month(), 3+n*5)
		index := monthsBetween(plan.Start, opening) + 1
		if index < 1 || index > plan.Count {
			continue
		}
		amount := plan.Total.Div(decimal.NewFromInt(int64(plan.Count))).Round(2).Neg()
		builder.add(plan.Description, plan.Start, amount, index, plan.Count, plan.CategoryID)
	}

	feeStart := models.Date(s.now().Year()-1, time.Month(int(account.ID%12)+1), 2)
	if index := monthsBetween(feeStart, opening) + 1; index >= 1 && index <= annualFeeCount {
		occurred := models.AddMonths(feeStart, index-1)
		builder.add("ANUIDADE DIFERENCIADA", occurred, decimal.NewFromFloat(-19.67), index, annualFeeCount, 2)
	}
}

// isClosed reports whether the invoice is due in or before the current month
func (s *SampleDataSource) isClosed(due time.Time) bool {
	now := s.now()
	current := models.Date(now.Year(), now.Month(), 1)
	return !models.Date(due.Year(), due.Month(), 1).After(current)
}

func (s *SampleDataSource) account(accountID int64) (models.Account, error) {
	for _, account := range s.accounts {
		if account.ID == accountID {
			return account, nil
		}
	}
	return models.Account{}, fmt.Errorf("account %d: %w", accountID, apierrors.ErrNotFound)
}

func (s *SampleDataSource) dueDate(account models.Account, month time.Time) time.Time {
	day := account.DueDay
	if last := models.DaysInMonth(month); day > last {
		day = last
	}
	return models.Date(month.Year(), month.Month(), day)
}

// invoiceID encodes the due month so ids grow with due dates
func invoiceID(accountID int64, due time.Time) int64 {
	return accountID*sampleInvoiceStride + int64(due.Year())*12 + int64(due.Month()) - 1
}

func dueDateOf(id int64) (time.Time, error) {
	months := id % sampleInvoiceStride
	if months <= 0 {
		return time.Time{}, fmt.Errorf("invoice %d: %w", id, apierrors.ErrNotFound)
	}
	return models.Date(int(months/12), time.Month(months%12+1), 1), nil
}

func monthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

type sampleBuilder struct {
	accountID    int64
	invoiceID    int64
	next         int64
	transactions []models.Transaction
}

func (b *sampleBuilder) add(description string, occurred time.Time, amount decimal.Decimal, index, count int, categoryID int64) {
	b.next++
	tx := models.Transaction{
		ID:               b.invoiceID*100 + b.next,
		AccountID:        b.accountID,
		InvoiceID:        b.invoiceID,
		Description:      strings.TrimSpace(description),
		OccurredDate:     occurred,
		Amount:           amount,
		InstallmentIndex: index,
		InstallmentCount: count,
		Provenance:       models.ProvenanceNative,
	}
	if categoryID != 0 {
		id := categoryID
		tx.CategoryID = &id
	}
	b.transactions = append(b.transactions, tx)
}
