// Package queries contains the read side of the ordering use cases. Query
// handlers go straight to the database with raw SQL and return flat response
// structs; they never materialize domain aggregates.
package queries

import (
	"errors"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its line items and totals.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to read.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the read model for a single order. The Has*
// flags report whether checkout details exist without exposing their
// contents.
type GetOrderQueryResponse struct {
	ID                 kernel.UUID
	UserID             kernel.UUID
	Status             string
	CompletedDate      time.Time
	DeliveryID         *kernel.UUID
	DeliveryPrice      decimal.Decimal
	TotalPrice         decimal.Decimal
	HasBillingAddress  bool
	HasShippingAddress bool
	HasCreditCard      bool
	Items              []GetOrderQueryItem
}

// GetOrderQueryItem is one line item in the order read model.
type GetOrderQueryItem struct {
	BookID    kernel.UUID
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}
