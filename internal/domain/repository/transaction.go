package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows callers to run multi-table writes atomically without depending
// on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside the transaction shares one
// connection.
type RepositoryFactory interface {
	// NewProductRepository returns a ProductRepository bound to the current transaction.
	NewProductRepository() ProductRepository

	// NewOrderRepository returns an OrderRepository bound to the current transaction.
	NewOrderRepository() OrderRepository

	// NewCartRepository returns a CartRepository bound to the current transaction.
	NewCartRepository() CartRepository
}
