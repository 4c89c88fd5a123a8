package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet carries a running balance maintained incrementally by the
// transaction service. The balance is only ever mutated through
// relative-delta updates inside the same database transaction as the
// ledger write, so at any quiescent point it equals the signed sum of
// the wallet's transactions.
type Wallet struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"not null;index" json:"user_id"`
	Name      string          `gorm:"size:100;not null" json:"name"`
	IsDefault bool            `gorm:"not null;default:false" json:"is_default"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Wallet) TableName() string {
	return "wallets"
}
