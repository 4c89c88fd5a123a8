package models

import (
	"time"
)

// Category names are unique per user, enforced by a composite unique
// index rather than an application-level pre-check so that concurrent
// creates of the same name cannot both succeed. Categories are never
// hard-deleted; IsArchived preserves referential history for past
// transactions.
type Category struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_categories_user_name" json:"user_id"`
	Name       string    `gorm:"size:100;not null;uniqueIndex:idx_categories_user_name" json:"name"`
	IsDefault  bool      `gorm:"not null;default:false" json:"is_default"`
	IsArchived bool      `gorm:"not null;default:false" json:"is_archived"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}
