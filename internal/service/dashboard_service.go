package service

import (
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/shopspring/decimal"
)

// unknownCategory labels aggregation rows whose category id no longer
// resolves to a name.
const unknownCategory = "Unknown"

const defaultLimit = 5

type Summary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}

type CategoryAmount struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

type Charts struct {
	ByCategory []CategoryAmount            `json:"by_category"`
	ByMonth    []repository.MonthAggregate `json:"by_month"`
}

type ActivityItem struct {
	ID         uint                   `json:"id"`
	Kind       models.TransactionKind `json:"kind"`
	Amount     decimal.Decimal        `json:"amount"`
	Note       *string                `json:"note"`
	Category   string                 `json:"category"`
	Wallet     string                 `json:"wallet"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// DashboardService computes read-only projections over the ledger. The
// summary balance is derived from the ledger itself, independent of the
// cached wallet balance, which makes it usable as a cross-check of the
// balance invariant.
type DashboardService struct {
	dashboards *repository.DashboardRepository
	categories *repository.CategoryRepository
}

func NewDashboardService(dashboards *repository.DashboardRepository, categories *repository.CategoryRepository) *DashboardService {
	return &DashboardService{dashboards: dashboards, categories: categories}
}

func (s *DashboardService) Summary(userID uint, rng *repository.DateRange) (*Summary, error) {
	income, err := s.dashboards.SumAmount(userID, models.KindIncome, rng)
	if err != nil {
		return nil, err
	}
	expense, err := s.dashboards.SumAmount(userID, models.KindExpense, rng)
	if err != nil {
		return nil, err
	}
	return &Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}, nil
}

// resolveNames maps grouped rows onto display labels, substituting the
// Unknown sentinel instead of failing when an id has no name.
func (s *DashboardService) resolveNames(rows []repository.CategoryTotal) ([]CategoryAmount, error) {
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.CategoryID)
	}
	names, err := s.categories.NamesByIDs(ids)
	if err != nil {
		return nil, err
	}
	out := make([]CategoryAmount, 0, len(rows))
	for _, row := range rows {
		name, ok := names[row.CategoryID]
		if !ok {
			name = unknownCategory
		}
		out = append(out, CategoryAmount{Category: name, Total: row.Total})
	}
	return out, nil
}

func (s *DashboardService) Charts(userID uint, rng *repository.DateRange) (*Charts, error) {
	byCategoryRows, err := s.dashboards.GroupByCategory(userID, rng)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.resolveNames(byCategoryRows)
	if err != nil {
		return nil, err
	}
	byMonth, err := s.dashboards.GroupByMonth(userID, rng)
	if err != nil {
		return nil, err
	}
	return &Charts{ByCategory: byCategory, ByMonth: byMonth}, nil
}

func (s *DashboardService) TopCategories(userID uint, rng *repository.DateRange, limit int) ([]CategoryAmount, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	rows, err := s.dashboards.TopExpenseCategories(userID, rng, limit)
	if err != nil {
		return nil, err
	}
	return s.resolveNames(rows)
}

func (s *DashboardService) RecentActivity(userID uint, limit int) ([]ActivityItem, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	ts, err := s.dashboards.Recent(userID, limit)
	if err != nil {
		return nil, err
	}
	items := make([]ActivityItem, 0, len(ts))
	for _, t := range ts {
		items = append(items, ActivityItem{
			ID:         t.ID,
			Kind:       t.Kind,
			Amount:     t.Amount,
			Note:       t.Note,
			Category:   t.Category.Name,
			Wallet:     t.Wallet.Name,
			OccurredAt: t.OccurredAt,
		})
	}
	return items, nil
}
