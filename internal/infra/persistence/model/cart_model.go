package model

import (
	"time"
)

// CartModel mirrors the 'carts' table; one row per user/product pairing.
type CartModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"not null;uniqueIndex:idx_carts_user_product"`
	ProductID int64 `gorm:"not null;uniqueIndex:idx_carts_user_product"`
	Quantity  int   `gorm:"not null;default:1"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}
