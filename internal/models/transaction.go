package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind is the direction of a ledger entry.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// Transaction is a single ledger entry. Rows are created and deleted,
// never updated in place; deletion reverses the wallet effect before
// removing the row.
type Transaction struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	UserID     uint            `gorm:"not null;index" json:"user_id"`
	WalletID   uint            `gorm:"not null;index" json:"wallet_id"`
	CategoryID uint            `gorm:"not null;index" json:"category_id"`
	Kind       TransactionKind `gorm:"size:10;not null" json:"kind"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Note       *string         `gorm:"size:255" json:"note"`
	OccurredAt time.Time       `gorm:"not null;index" json:"occurred_at"`
	CreatedAt  time.Time       `json:"created_at"`

	Wallet   Wallet   `gorm:"foreignKey:WalletID" json:"-"`
	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}
