// Package deliveryrepo provides persistence for shipping methods.
package deliveryrepo

import (
	"bookstore/internal/core/domain/model/delivery"
	"bookstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryDTO represents the database structure for shipping methods.
type DeliveryDTO struct {
	ID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name  string
	Price decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for shipping method rows.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Price: aggregate.Price(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, dto.Name, dto.Price)
}
