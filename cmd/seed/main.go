// Command seed loads a small demo catalog with purchase and cart activity so
// the recommendation endpoints return meaningful data on a fresh database.
package main

import (
	"context"
	"log/slog"
	"os"

	"lelekart/config"
	"lelekart/internal/domain/entity"
	"lelekart/internal/domain/repository"
	"lelekart/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := run(context.Background(), logger); err != nil {
		logger.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Seeding completed")
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{SkipDefaultTransaction: true})

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping PostgreSQL")
	}

	txManager := postgres.NewTransactionManager(db)

	return txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		products := factory.NewProductRepository()
		orders := factory.NewOrderRepository()
		carts := factory.NewCartRepository()

		catalog := demoProducts()
		for _, product := range catalog {
			if err := products.CreateProduct(ctx, product); err != nil {
				return errors.Wrapf(err, "failed to create product %q", product.Name)
			}
		}
		logger.Info("Seeded products", slog.Int("count", len(catalog)))

		for _, order := range demoOrders(catalog) {
			if err := orders.CreateOrder(ctx, order); err != nil {
				return errors.Wrapf(err, "failed to create order for user %d", order.UserID)
			}
		}

		for _, entry := range demoCartEntries(catalog) {
			if err := carts.AddEntry(ctx, entry); err != nil {
				return errors.Wrapf(err, "failed to add cart entry for user %d", entry.UserID)
			}
		}

		return nil
	})
}

func demoProducts() []*entity.Product {
	draft := true

	return []*entity.Product{
		{SellerID: 1, Name: "Cotton Kurta", Category: "Fashion", Price: 79900, Approved: true},
		{SellerID: 1, Name: "Silk Saree", Category: "Fashion", Price: 249900, Approved: true},
		{SellerID: 2, Name: "Bluetooth Earbuds", Category: "Electronics", Price: 149900, Approved: true},
		{SellerID: 2, Name: "Smartwatch", Category: "Electronics", Price: 329900, Approved: true},
		{SellerID: 2, Name: "Power Bank", Category: "Electronics", Price: 99900, Approved: true},
		{SellerID: 3, Name: "Steel Water Bottle", Category: "Home", Price: 39900, Approved: true},
		{SellerID: 3, Name: "Ceramic Dinner Set", Category: "Home", Price: 189900, Approved: true},
		// Not customer-facing: pending review, draft and soft-deleted listings.
		{SellerID: 3, Name: "Pending Blender", Category: "Home", Price: 259900, Approved: false},
		{SellerID: 1, Name: "Draft Lehenga", Category: "Fashion", Price: 499900, Approved: true, IsDraft: &draft},
		{SellerID: 2, Name: "Discontinued Charger", Category: "Electronics", Price: 49900, Approved: true, Deleted: true},
	}
}

func demoOrders(catalog []*entity.Product) []*entity.Order {
	return []*entity.Order{
		{
			UserID: 101,
			Status: "delivered",
			Total:  catalog[2].Price + catalog[4].Price,
			Items: []*entity.OrderItem{
				{ProductID: catalog[2].ID, Quantity: 1, Price: catalog[2].Price},
				{ProductID: catalog[4].ID, Quantity: 1, Price: catalog[4].Price},
			},
		},
		{
			UserID: 102,
			Status: "delivered",
			Total:  2 * catalog[2].Price,
			Items: []*entity.OrderItem{
				{ProductID: catalog[2].ID, Quantity: 2, Price: catalog[2].Price},
			},
		},
		{
			UserID: 102,
			Status: "shipped",
			Total:  catalog[0].Price,
			Items: []*entity.OrderItem{
				{ProductID: catalog[0].ID, Quantity: 1, Price: catalog[0].Price},
			},
		},
	}
}

func demoCartEntries(catalog []*entity.Product) []*entity.CartEntry {
	return []*entity.CartEntry{
		{UserID: 101, ProductID: catalog[3].ID, Quantity: 1},
		{UserID: 103, ProductID: catalog[5].ID, Quantity: 2},
	}
}
