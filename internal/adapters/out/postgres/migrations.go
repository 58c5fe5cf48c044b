package postgres

import (
	"bookstore/internal/adapters/out/postgres/deliveryrepo"
	"bookstore/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for all persisted
// aggregates. Child tables are migrated after orders so the cascading
// foreign keys resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.AddressDTO{},
		&orderrepo.CreditCardDTO{},
		&deliveryrepo.DeliveryDTO{},
	)
}
