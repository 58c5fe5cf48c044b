// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order row carries the snapshot columns (delivery price and recorded
// total); items, addresses, and the credit card live in child tables owned
// by the order via cascading foreign keys.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;index"`
	Status        string          `gorm:"index"`
	CompletedDate time.Time       `gorm:"type:date"`
	DeliveryID    *uuid.UUID      `gorm:"type:uuid;index"`
	DeliveryPrice decimal.Decimal `gorm:"type:numeric"`
	TotalPrice    decimal.Decimal `gorm:"type:numeric"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Addresses  []AddressDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreditCard *CreditCardDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one book line of an order. Position records the
// line's place in the aggregate's insertion order; it survives the
// delete-and-recreate child replacement on update, so reads sort on it.
type OrderItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	BookID    uuid.UUID       `gorm:"type:uuid;index"`
	Position  int
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for order item rows.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// AddressDTO represents a billing or shipping address. The composite primary
// key (order, role) allows one address per role per order.
type AddressDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role      string    `gorm:"primaryKey"`
	FirstName string
	LastName  string
	Street    string
	City      string
	Country   string
	Zip       string
	Phone     string
}

// TableName specifies the database table name for address rows.
func (AddressDTO) TableName() string {
	return "addresses"
}

// CreditCardDTO represents the payment card attached to an order. One card
// per order.
type CreditCardDTO struct {
	OrderID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number          string
	CVV             string
	ExpirationMonth int
	ExpirationYear  int
}

// TableName specifies the database table name for credit card rows.
func (CreditCardDTO) TableName() string {
	return "credit_cards"
}

// fromDomain converts an order aggregate to its database representation.
// It runs the aggregate's pre-save hook first so the persisted total always
// reflects the current items and delivery price.
func fromDomain(aggregate *order.Order) OrderDTO {
	total := aggregate.PrepareForSave()

	var deliveryID *uuid.UUID
	if id := aggregate.DeliveryID(); id != nil {
		raw := id.Bytes()
		deliveryID = &raw
	}

	orderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   orderID,
			BookID:    item.BookID().Bytes(),
			Position:  i,
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	addresses := make([]AddressDTO, 0, 2)
	if billing := aggregate.BillingAddress(); billing != nil {
		addresses = append(addresses, addressFromDomain(orderID, billing))
	}
	if shipping := aggregate.ShippingAddress(); shipping != nil {
		addresses = append(addresses, addressFromDomain(orderID, shipping))
	}

	var card *CreditCardDTO
	if c := aggregate.CreditCard(); c != nil {
		card = &CreditCardDTO{
			OrderID:         orderID,
			Number:          c.Number(),
			CVV:             c.CVV(),
			ExpirationMonth: c.ExpirationMonth(),
			ExpirationYear:  c.ExpirationYear(),
		}
	}

	return OrderDTO{
		ID:            orderID,
		UserID:        aggregate.UserID().Bytes(),
		Status:        aggregate.Status().String(),
		CompletedDate: aggregate.CompletedDate(),
		DeliveryID:    deliveryID,
		DeliveryPrice: aggregate.DeliveryPrice(),
		TotalPrice:    total,
		Items:         items,
		Addresses:     addresses,
		CreditCard:    card,
	}
}

func addressFromDomain(orderID uuid.UUID, address *order.Address) AddressDTO {
	return AddressDTO{
		OrderID:   orderID,
		Role:      address.Role().String(),
		FirstName: address.FirstName(),
		LastName:  address.LastName(),
		Street:    address.Street(),
		City:      address.City(),
		Country:   address.Country(),
		Zip:       address.Zip(),
		Phone:     address.Phone(),
	}
}

// toDomain converts a database DTO to an order aggregate. Reconstructs the
// complete aggregate including child records using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromName(dto.Status)
	if err != nil {
		return nil, err
	}

	var deliveryID *kernel.UUID
	if dto.DeliveryID != nil {
		dID, deliveryErr := kernel.UUIDFromBytes((*dto.DeliveryID)[:])
		if deliveryErr != nil {
			return nil, deliveryErr
		}

		deliveryID = &dID
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		bookID, itemErr := kernel.UUIDFromBytes(itemDTO.BookID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreOrderItem(itemID, bookID, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var billing, shipping *order.Address
	for _, addressDTO := range dto.Addresses {
		role, addressErr := order.RoleFromName(addressDTO.Role)
		if addressErr != nil {
			return nil, addressErr
		}

		address, addressErr := order.RestoreAddress(
			role,
			addressDTO.FirstName,
			addressDTO.LastName,
			addressDTO.Street,
			addressDTO.City,
			addressDTO.Country,
			addressDTO.Zip,
			addressDTO.Phone,
		)
		if addressErr != nil {
			return nil, addressErr
		}

		switch role {
		case order.Billing:
			billing = address
		case order.Shipping:
			shipping = address
		}
	}

	var card *order.CreditCard
	if dto.CreditCard != nil {
		card, err = order.RestoreCreditCard(
			dto.CreditCard.Number,
			dto.CreditCard.CVV,
			dto.CreditCard.ExpirationMonth,
			dto.CreditCard.ExpirationYear,
		)
		if err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		id,
		userID,
		dto.CompletedDate,
		status,
		deliveryID,
		dto.DeliveryPrice,
		dto.TotalPrice,
		items,
		billing,
		shipping,
		card,
	)
}
