package repository

import (
	"fintrack/internal/models"

	"gorm.io/gorm"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(tx *gorm.DB, t *models.Transaction) error {
	return tx.Create(t).Error
}

// Delete removes the row and fails with gorm.ErrRecordNotFound when it
// is already gone. Two concurrent deletes of the same transaction both
// pass the preceding fetch; without the rows-affected check the loser
// would commit a second balance reversal over nothing, so the error
// here is what rolls that reversal back.
func (r *TransactionRepository) Delete(tx *gorm.DB, t *models.Transaction) error {
	res := tx.Delete(&models.Transaction{}, t.ID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TransactionRepository) GetByID(id, userID uint) (*models.Transaction, error) {
	var t models.Transaction
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByIDWithWallet loads the transaction together with its wallet so
// deletion can reverse the balance effect from the recorded kind and
// amount.
func (r *TransactionRepository) GetByIDWithWallet(id, userID uint) (*models.Transaction, error) {
	var t models.Transaction
	err := r.db.Preload("Wallet").
		Where("id = ? AND user_id = ?", id, userID).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepository) List(userID uint) ([]models.Transaction, error) {
	var ts []models.Transaction
	err := r.db.Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Find(&ts).Error
	return ts, err
}
