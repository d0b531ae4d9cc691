package model

import (
	"time"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"not null;index"`
	Status    string `gorm:"type:varchar(50);not null;default:'pending'"`
	Total     int64  `gorm:"not null"`
	CreatedAt time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"not null;index"`
	ProductID int64 `gorm:"not null;index"`
	Quantity  int   `gorm:"not null;default:1"`
	Price     int64 `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
