package repository

import (
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DateRange is an inclusive filter on occurred_at. A nil *DateRange
// means "all time".
type DateRange struct {
	Start time.Time
	End   time.Time
}

// CategoryTotal is one row of a per-category aggregation.
type CategoryTotal struct {
	CategoryID uint            `json:"category_id"`
	Total      decimal.Decimal `json:"total"`
}

// MonthAggregate is one row of the per-month income/expense timeline.
type MonthAggregate struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthTotal is one row of the per-month expense trend fed to the
// forecast prompt.
type MonthTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// DashboardRepository serves the read-only aggregation queries. It
// never writes and requires no transactional scope; each query sees
// whatever committed state is visible at execution time.
type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func scopeRange(q *gorm.DB, rng *DateRange) *gorm.DB {
	if rng != nil {
		q = q.Where("occurred_at BETWEEN ? AND ?", rng.Start, rng.End)
	}
	return q
}

// SumAmount totals matching rows of one kind; zero when no rows match.
func (r *DashboardRepository) SumAmount(userID uint, kind models.TransactionKind, rng *DateRange) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	q := r.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND kind = ?", userID, kind)
	if err := scopeRange(q, rng).Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// GroupByCategory sums matching rows per category across both kinds.
// The category chart is deliberately kind-agnostic "activity by
// category"; summary and top-categories separate by kind.
func (r *DashboardRepository) GroupByCategory(userID uint, rng *DateRange) ([]CategoryTotal, error) {
	var rows []CategoryTotal
	q := r.db.Model(&models.Transaction{}).
		Select("category_id, SUM(amount) AS total").
		Where("user_id = ?", userID).
		Group("category_id")
	err := scopeRange(q, rng).Scan(&rows).Error
	return rows, err
}

// ExpenseByCategory sums expense rows per category, unordered.
func (r *DashboardRepository) ExpenseByCategory(userID uint, rng *DateRange) ([]CategoryTotal, error) {
	var rows []CategoryTotal
	q := r.db.Model(&models.Transaction{}).
		Select("category_id, SUM(amount) AS total").
		Where("user_id = ? AND kind = ?", userID, models.KindExpense).
		Group("category_id")
	err := scopeRange(q, rng).Scan(&rows).Error
	return rows, err
}

// TopExpenseCategories returns the limit largest expense categories in
// descending order of total. Tie order is whatever the database yields.
func (r *DashboardRepository) TopExpenseCategories(userID uint, rng *DateRange, limit int) ([]CategoryTotal, error) {
	var rows []CategoryTotal
	q := r.db.Model(&models.Transaction{}).
		Select("category_id, SUM(amount) AS total").
		Where("user_id = ? AND kind = ?", userID, models.KindExpense).
		Group("category_id").
		Order("total DESC").
		Limit(limit)
	err := scopeRange(q, rng).Scan(&rows).Error
	return rows, err
}

// monthExpr yields the dialect's YYYY-MM grouping key. Grouping by a
// computed expression is the one aggregation the portable query builder
// cannot express, so the month timeline goes through raw SQL.
func (r *DashboardRepository) monthExpr() string {
	if r.db.Dialector.Name() == "sqlite" {
		return "strftime('%Y-%m', occurred_at)"
	}
	return "DATE_FORMAT(occurred_at, '%Y-%m')"
}

// GroupByMonth sums income and expense per calendar month in ascending
// chronological order.
func (r *DashboardRepository) GroupByMonth(userID uint, rng *DateRange) ([]MonthAggregate, error) {
	var rows []MonthAggregate
	sql := `SELECT ` + r.monthExpr() + ` AS month,
		SUM(CASE WHEN kind = 'income' THEN amount ELSE 0 END) AS income,
		SUM(CASE WHEN kind = 'expense' THEN amount ELSE 0 END) AS expense
		FROM transactions WHERE user_id = ?`
	args := []interface{}{userID}
	if rng != nil {
		sql += ` AND occurred_at BETWEEN ? AND ?`
		args = append(args, rng.Start, rng.End)
	}
	sql += ` GROUP BY month ORDER BY month ASC`
	err := r.db.Raw(sql, args...).Scan(&rows).Error
	return rows, err
}

// MonthlyExpenseTrend returns total expenses for the most recent months
// (newest first), capped at months rows.
func (r *DashboardRepository) MonthlyExpenseTrend(userID uint, months int) ([]MonthTotal, error) {
	var rows []MonthTotal
	sql := `SELECT ` + r.monthExpr() + ` AS month, SUM(amount) AS total
		FROM transactions WHERE user_id = ? AND kind = 'expense'
		GROUP BY month ORDER BY month DESC LIMIT ?`
	err := r.db.Raw(sql, userID, months).Scan(&rows).Error
	return rows, err
}

// Recent returns the limit most recent transactions with their category
// and wallet loaded for display enrichment.
func (r *DashboardRepository) Recent(userID uint, limit int) ([]models.Transaction, error) {
	var ts []models.Transaction
	err := r.db.Preload("Category").Preload("Wallet").
		Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&ts).Error
	return ts, err
}
