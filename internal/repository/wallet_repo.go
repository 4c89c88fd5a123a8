package repository

import (
	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type WalletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// GetDefault returns the user's default wallet, the implicit target of
// every transaction.
func (r *WalletRepository) GetDefault(userID uint) (*models.Wallet, error) {
	var w models.Wallet
	err := r.db.Where("user_id = ? AND is_default = ?", userID, true).First(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WalletRepository) Create(tx *gorm.DB, w *models.Wallet) error {
	return tx.Create(w).Error
}

// ApplyDelta adds delta to the wallet balance as a relative update
// evaluated by the database ("balance + ?"), never as a read-modify-
// write of a previously captured value. Concurrent transaction creates
// against the same wallet therefore cannot lose updates. Callers must
// pass the handle of the enclosing database transaction so the balance
// change commits or rolls back together with the ledger write.
func (r *WalletRepository) ApplyDelta(tx *gorm.DB, walletID uint, delta decimal.Decimal) error {
	return tx.Model(&models.Wallet{}).
		Where("id = ?", walletID).
		Update("balance", gorm.Expr("balance + ?", delta)).Error
}

// GetByID is used by tests and the dashboard to cross-check the cached
// balance against the ledger-derived figure.
func (r *WalletRepository) GetByID(id uint) (*models.Wallet, error) {
	var w models.Wallet
	if err := r.db.First(&w, id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}
