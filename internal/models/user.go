package models

import (
	"time"
)

type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Email           string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	PasswordHash    string    `gorm:"size:255;not null" json:"-"`
	DefaultCurrency string    `gorm:"size:3;not null;default:'USD'" json:"default_currency"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
