// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Product is the central entity of the catalog. Sellers author products as
// drafts; an admin flips Approved before the product becomes customer-facing.
// Products are soft-deleted via the Deleted flag rather than row removal.
type Product struct {
	ID          int64     `json:"id"`          // Auto-incrementing identifier; higher IDs are newer products.
	SellerID    int64     `json:"seller_id"`   // The ID of the seller who owns this listing.
	Name        string    `json:"name"`        // Customer-facing product title.
	Description string    `json:"description"` // Long-form product description.
	Category    string    `json:"category"`    // Free-form category label used for grouping and recommendations.
	Price       int64     `json:"price"`       // Unit price in the smallest currency unit (paise).
	ImageURL    string    `json:"image_url"`   // Primary product image.
	Approved    bool      `json:"approved"`    // Set by an admin once the listing passes review.
	IsDraft     *bool     `json:"is_draft"`    // Nil or false for published products; true while the seller is still authoring.
	Deleted     bool      `json:"deleted"`     // Soft-delete marker.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when this listing was created.
	UpdatedAt   time.Time `json:"updated_at"`  // Timestamp of the last modification.
}

// Visible reports whether the product may appear in any customer-facing
// listing: approved, not a draft (nil counts as published) and not deleted.
func (p *Product) Visible() bool {
	if p == nil {
		return false
	}
	if !p.Approved || p.Deleted {
		return false
	}

	return p.IsDraft == nil || !*p.IsDraft
}
