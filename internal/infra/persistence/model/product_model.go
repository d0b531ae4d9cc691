// Package model holds the GORM-specific structs mirroring the database tables.
package model

import (
	"time"
)

// ProductModel mirrors the 'products' table. IDs are bigserial so descending
// ID order doubles as a recency proxy. It is an exported type so it can be
// used by the GORM Gen tool from other packages.
type ProductModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	SellerID    int64  `gorm:"not null;index"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"type:varchar(100);index"`
	Price       int64  `gorm:"not null"`
	ImageURL    string `gorm:"type:text"`
	Approved    bool   `gorm:"not null;default:false;index"`
	IsDraft     *bool  // Nullable; legacy rows predate the column.
	Deleted     bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
