package http

import (
	"github.com/oapi-codegen/runtime/types"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body for POST /api/v1/orders. CompletedDate is
// optional; the order defaults it to today.
type CreateOrderRequest struct {
	UserID        string      `json:"user_id"`
	CompletedDate *types.Date `json:"completed_date,omitempty"`
}

// CreateOrderResponse returns the identifier of the freshly created order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// AddItemRequest is the body for POST /api/v1/orders/:orderID/items.
// UnitPrice is a decimal string, for example "9.99". Quantity is optional
// and defaults to one copy.
type AddItemRequest struct {
	BookID    string `json:"book_id"`
	Quantity  *int   `json:"quantity,omitempty"`
	UnitPrice string `json:"unit_price"`
}

// AttachDeliveryRequest is the body for POST /api/v1/orders/:orderID/delivery.
type AttachDeliveryRequest struct {
	DeliveryID string `json:"delivery_id"`
}

// TransitionRequest is the body for POST /api/v1/orders/:orderID/transitions.
// Event is one of "process", "deliver", "ship", "cancel".
type TransitionRequest struct {
	Event string `json:"event"`
}

// AddressPayload carries a partial address update. Absent fields are left
// untouched.
type AddressPayload struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Street    *string `json:"street,omitempty"`
	City      *string `json:"city,omitempty"`
	Country   *string `json:"country,omitempty"`
	Zip       *string `json:"zip,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// CreditCardPayload carries a partial payment card update. Absent fields are
// left untouched.
type CreditCardPayload struct {
	Number          *string `json:"number,omitempty"`
	CVV             *string `json:"cvv,omitempty"`
	ExpirationMonth *int    `json:"expiration_month,omitempty"`
	ExpirationYear  *int    `json:"expiration_year,omitempty"`
}

// UpdateOrderRequest is the body for PUT /api/v1/orders/:orderID. Each
// section is optional; the whole bundle applies atomically.
type UpdateOrderRequest struct {
	CompletedDate   *types.Date        `json:"completed_date,omitempty"`
	BillingAddress  *AddressPayload    `json:"billing_address,omitempty"`
	ShippingAddress *AddressPayload    `json:"shipping_address,omitempty"`
	CreditCard      *CreditCardPayload `json:"credit_card,omitempty"`
}

// OrderItem is one book line in an order response. Prices are decimal
// strings.
type OrderItem struct {
	BookID    string `json:"book_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

// Order is the full order representation returned by
// GET /api/v1/orders/:orderID.
type Order struct {
	ID                 string      `json:"id"`
	UserID             string      `json:"user_id"`
	Status             string      `json:"status"`
	CompletedDate      types.Date  `json:"completed_date"`
	DeliveryID         *string     `json:"delivery_id,omitempty"`
	DeliveryPrice      string      `json:"delivery_price"`
	TotalPrice         string      `json:"total_price"`
	HasBillingAddress  bool        `json:"has_billing_address"`
	HasShippingAddress bool        `json:"has_shipping_address"`
	HasCreditCard      bool        `json:"has_credit_card"`
	Items              []OrderItem `json:"items"`
}

// ActiveOrder is one row of GET /api/v1/orders/active.
type ActiveOrder struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Status     string `json:"status"`
	TotalPrice string `json:"total_price"`
}
