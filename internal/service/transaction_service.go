package service

import (
	"errors"
	"time"

	"fintrack/internal/apperr"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateTransactionInput is the validated shape the service expects
// from the HTTP layer.
type CreateTransactionInput struct {
	Amount     decimal.Decimal
	CategoryID uint
	Kind       models.TransactionKind
	Note       *string
	// OccurredAt, when set, is truncated to the start of its calendar
	// day; when nil the current timestamp is recorded at full
	// precision.
	OccurredAt *time.Time
}

type TransactionService struct {
	db           *gorm.DB
	transactions *repository.TransactionRepository
	wallets      *repository.WalletRepository
	categories   *repository.CategoryRepository
}

func NewTransactionService(db *gorm.DB, transactions *repository.TransactionRepository, wallets *repository.WalletRepository, categories *repository.CategoryRepository) *TransactionService {
	return &TransactionService{db: db, transactions: transactions, wallets: wallets, categories: categories}
}

// balanceDelta is the signed effect of a transaction on its wallet:
// income adds, expense subtracts. Deletion applies the negation.
func balanceDelta(kind models.TransactionKind, amount decimal.Decimal) decimal.Decimal {
	if kind == models.KindExpense {
		return amount.Neg()
	}
	return amount
}

// truncateToDay normalizes a supplied occurrence time to midnight UTC
// of its calendar day, so two transactions "on the same day" compare
// equal at day granularity.
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Create validates ownership, then atomically inserts the ledger row
// and applies its effect to the default wallet. The balance change is a
// relative delta evaluated by the database, so concurrent creates
// compose instead of losing updates.
func (s *TransactionService) Create(userID uint, in CreateTransactionInput) (*models.Transaction, error) {
	if !in.Amount.IsPositive() {
		return nil, apperr.Invalid("amount must be positive")
	}
	if in.Kind != models.KindIncome && in.Kind != models.KindExpense {
		return nil, apperr.Invalid("kind must be income or expense")
	}

	// Not-owned and archived categories are deliberately reported the
	// same way.
	if _, err := s.categories.GetActive(in.CategoryID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("invalid or archived category")
		}
		return nil, err
	}

	wallet, err := s.wallets.GetDefault(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Signup guarantees a default wallet; its absence is a
			// data-integrity fault, not a user error.
			return nil, apperr.Integrity("default wallet not found")
		}
		return nil, err
	}

	occurredAt := time.Now().UTC()
	if in.OccurredAt != nil {
		occurredAt = truncateToDay(*in.OccurredAt)
	}

	t := &models.Transaction{
		UserID:     userID,
		WalletID:   wallet.ID,
		CategoryID: in.CategoryID,
		Kind:       in.Kind,
		Amount:     in.Amount,
		Note:       in.Note,
		OccurredAt: occurredAt,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.transactions.Create(tx, t); err != nil {
			return err
		}
		return s.wallets.ApplyDelta(tx, wallet.ID, balanceDelta(in.Kind, in.Amount))
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes the ledger row and reverses its wallet effect in one
// atomic unit, using the transaction's own recorded kind and amount so
// deletion is the exact algebraic inverse of creation.
func (s *TransactionService) Delete(userID, id uint) error {
	t, err := s.transactions.GetByIDWithWallet(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("transaction not found")
		}
		return err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.transactions.Delete(tx, t); err != nil {
			return err
		}
		return s.wallets.ApplyDelta(tx, t.WalletID, balanceDelta(t.Kind, t.Amount).Neg())
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Lost a race against another delete of the same row; the
		// winner already reversed the balance.
		return apperr.NotFound("transaction not found")
	}
	return err
}

func (s *TransactionService) Get(userID, id uint) (*models.Transaction, error) {
	t, err := s.transactions.GetByID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("transaction not found")
		}
		return nil, err
	}
	return t, nil
}

func (s *TransactionService) List(userID uint) ([]models.Transaction, error) {
	return s.transactions.List(userID)
}
