package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its items straight from the
// database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an errs.ObjectNotFoundError when the
// order does not exist. The persisted total is returned as stored; the
// pre-save hook guarantees it matches the items plus delivery price.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			status,
			completed_date,
			delivery_id,
			delivery_price,
			total_price,
			EXISTS (SELECT 1 FROM addresses WHERE order_id = orders.id AND role = ?) AS has_billing_address,
			EXISTS (SELECT 1 FROM addresses WHERE order_id = orders.id AND role = ?) AS has_shipping_address,
			EXISTS (SELECT 1 FROM credit_cards WHERE order_id = orders.id) AS has_credit_card
		FROM orders
		WHERE id = ?
	`, order.Billing.String(), order.Shipping.String(), query.OrderID().Bytes()).Row()

	var (
		id                 uuid.UUID
		userID             uuid.UUID
		status             string
		completedDate      time.Time
		deliveryID         *uuid.UUID
		deliveryPrice      decimal.Decimal
		totalPrice         decimal.Decimal
		hasBillingAddress  bool
		hasShippingAddress bool
		hasCreditCard      bool
	)

	err := row.Scan(
		&id, &userID, &status, &completedDate, &deliveryID, &deliveryPrice, &totalPrice,
		&hasBillingAddress, &hasShippingAddress, &hasCreditCard,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	response.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.UserID, err = kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if deliveryID != nil {
		dID, dErr := kernel.UUIDFromBytes((*deliveryID)[:])
		if dErr != nil {
			return GetOrderQueryResponse{}, dErr
		}
		response.DeliveryID = &dID
	}
	response.Status = status
	response.CompletedDate = completedDate
	response.DeliveryPrice = deliveryPrice
	response.TotalPrice = totalPrice
	response.HasBillingAddress = hasBillingAddress
	response.HasShippingAddress = hasShippingAddress
	response.HasCreditCard = hasCreditCard

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Items = items

	return response, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]GetOrderQueryItem, error) {
	items := make([]GetOrderQueryItem, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			book_id,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			bookID    uuid.UUID
			quantity  int
			unitPrice decimal.Decimal
		)

		if err = rows.Scan(&bookID, &quantity, &unitPrice); err != nil {
			return nil, err
		}

		itemBookID, idErr := kernel.UUIDFromBytes(bookID[:])
		if idErr != nil {
			return nil, idErr
		}

		items = append(items, GetOrderQueryItem{
			BookID:    itemBookID,
			Quantity:  quantity,
			UnitPrice: unitPrice,
			LineTotal: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
