package repository

import "context"

// ActivityRepository extracts per-user behavioral signals from the order and
// cart tables. It is a pure read path; each method runs one query scoped to a
// single user and assumes bounded history per user (no pagination).
type ActivityRepository interface {
	// PurchasedProductIDs returns the distinct product IDs across all order
	// items belonging to orders placed by userID.
	PurchasedProductIDs(ctx context.Context, userID int64) ([]int64, error)

	// CartProductIDs returns the distinct product IDs currently in the
	// user's cart.
	CartProductIDs(ctx context.Context, userID int64) ([]int64, error)

	// PreferredCategories returns the distinct set of non-empty categories
	// appearing in either the user's order history or cart. Implemented as a
	// single query rather than a union of PurchasedProductIDs and
	// CartProductIDs, so it may diverge slightly from those sets under
	// concurrent writes; acceptable since the result only steers advisory
	// ranking.
	PreferredCategories(ctx context.Context, userID int64) ([]string, error)
}
