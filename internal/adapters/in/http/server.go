// Package http is the inbound HTTP adapter. It translates echo requests
// into commands and queries, keeping all parsing and coercion of raw input
// at this boundary so the core only ever sees typed values.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler     commands.CreateOrderCommandHandler
	addBookHandler         commands.AddBookCommandHandler
	removeBookHandler      commands.RemoveBookCommandHandler
	updateOrderHandler     commands.UpdateOrderCommandHandler
	attachDeliveryHandler  commands.AttachDeliveryCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler

	getOrderHandler             queries.GetOrderQueryHandler
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addBookHandler commands.AddBookCommandHandler,
	removeBookHandler commands.RemoveBookCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	attachDeliveryHandler commands.AttachDeliveryCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		addBookHandler:              addBookHandler,
		removeBookHandler:           removeBookHandler,
		updateOrderHandler:          updateOrderHandler,
		attachDeliveryHandler:       attachDeliveryHandler,
		transitionOrderHandler:      transitionOrderHandler,
		getOrderHandler:             getOrderHandler,
		getUncompletedOrdersHandler: getUncompletedOrdersHandler,
	}
}

// RegisterRoutes attaches all order endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/active", s.GetActiveOrders)
	v1.GET("/orders/:orderID", s.GetOrder)
	v1.PUT("/orders/:orderID", s.UpdateOrder)
	v1.POST("/orders/:orderID/items", s.AddItem)
	v1.DELETE("/orders/:orderID/items/:bookID", s.RemoveItem)
	v1.POST("/orders/:orderID/delivery", s.AttachDelivery)
	v1.POST("/orders/:orderID/transitions", s.TransitionOrder)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders - opens a new cart for a user.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user_id: "+err.Error())
	}

	var completedDate time.Time
	if req.CompletedDate != nil {
		completedDate = req.CompletedDate.Time
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, userID, completedDate)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetActiveOrders handles GET /api/v1/orders/active - lists orders that have
// not reached a terminal state.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetUncompletedOrdersQuery()

	orders, err := s.getUncompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ActiveOrder, len(orders))
	for i, o := range orders {
		response[i] = ActiveOrder{
			ID:         o.ID.String(),
			UserID:     o.UserID.String(),
			Status:     o.Status,
			TotalPrice: o.TotalPrice.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderID - reads one order with its
// items and totals.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]OrderItem, len(result.Items))
	for i, item := range result.Items {
		items[i] = OrderItem{
			BookID:    item.BookID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
			LineTotal: item.LineTotal.String(),
		}
	}

	var deliveryID *string
	if result.DeliveryID != nil {
		raw := result.DeliveryID.String()
		deliveryID = &raw
	}

	return ctx.JSON(http.StatusOK, Order{
		ID:                 result.ID.String(),
		UserID:             result.UserID.String(),
		Status:             result.Status,
		CompletedDate:      types.Date{Time: result.CompletedDate},
		DeliveryID:         deliveryID,
		DeliveryPrice:      result.DeliveryPrice.String(),
		TotalPrice:         result.TotalPrice.String(),
		HasBillingAddress:  result.HasBillingAddress,
		HasShippingAddress: result.HasShippingAddress,
		HasCreditCard:      result.HasCreditCard,
		Items:              items,
	})
}

// AddItem handles POST /api/v1/orders/:orderID/items - puts a book in the
// cart, merging with an existing line for the same book.
func (s *Server) AddItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req AddItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	bookID, err := kernel.UUIDFromString(req.BookID)
	if err != nil {
		return badRequest(ctx, "Invalid book_id: "+err.Error())
	}

	unitPrice, err := decimal.NewFromString(req.UnitPrice)
	if err != nil {
		return badRequest(ctx, "Invalid unit_price: "+err.Error())
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	cmd, err := commands.NewAddBookCommand(orderID, bookID, quantity, unitPrice)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.addBookHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveItem handles DELETE /api/v1/orders/:orderID/items/:bookID - drops a
// book line from the cart.
func (s *Server) RemoveItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	bookID, err := kernel.UUIDFromString(ctx.Param("bookID"))
	if err != nil {
		return badRequest(ctx, "Invalid book ID: "+err.Error())
	}

	cmd, err := commands.NewRemoveBookCommand(orderID, bookID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.removeBookHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrder handles PUT /api/v1/orders/:orderID - applies checkout details
// (dates, addresses, payment card) as one atomic bundle. The
// use_billing_address query flag copies the billing address over the
// shipping address.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	copyBilling := false
	if raw := ctx.QueryParam("use_billing_address"); raw != "" {
		copyBilling, err = strconv.ParseBool(raw)
		if err != nil {
			return badRequest(ctx, "Invalid use_billing_address: "+err.Error())
		}
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, toOrderUpdate(req), copyBilling)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AttachDelivery handles POST /api/v1/orders/:orderID/delivery - picks a
// shipping method for the order.
func (s *Server) AttachDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req AttachDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deliveryID, err := kernel.UUIDFromString(req.DeliveryID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery_id: "+err.Error())
	}

	cmd, err := commands.NewAttachDeliveryCommand(orderID, deliveryID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.attachDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransitionOrder handles POST /api/v1/orders/:orderID/transitions - fires a
// fulfillment event by name.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	event, err := order.EventFromName(req.Event)
	if err != nil {
		return badRequest(ctx, "Invalid event: "+err.Error())
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, event)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func toOrderUpdate(req UpdateOrderRequest) order.OrderUpdate {
	var update order.OrderUpdate

	if req.CompletedDate != nil {
		date := req.CompletedDate.Time
		update.CompletedDate = &date
	}
	if req.BillingAddress != nil {
		update.BillingAddress = toAddressUpdate(*req.BillingAddress)
	}
	if req.ShippingAddress != nil {
		update.ShippingAddress = toAddressUpdate(*req.ShippingAddress)
	}
	if req.CreditCard != nil {
		update.CreditCard = &order.CreditCardUpdate{
			Number:          req.CreditCard.Number,
			CVV:             req.CreditCard.CVV,
			ExpirationMonth: req.CreditCard.ExpirationMonth,
			ExpirationYear:  req.CreditCard.ExpirationYear,
		}
	}

	return update
}

func toAddressUpdate(payload AddressPayload) *order.AddressUpdate {
	return &order.AddressUpdate{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Street:    payload.Street,
		City:      payload.City,
		Country:   payload.Country,
		Zip:       payload.Zip,
		Phone:     payload.Phone,
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain errors onto HTTP statuses: validation problems are
// 400, missing objects 404, rejected fulfillment events 409, everything
// else 500.
func writeError(ctx echo.Context, err error) error {
	var (
		notFound   *errs.ObjectNotFoundError
		invalid    *errs.ValueIsInvalidError
		outOfRange *errs.ValueIsOutOfRangeError
		required   *errs.ValueIsRequiredError
		illegal    *errs.IllegalTransitionError
	)

	switch {
	case errors.As(err, &illegal):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.As(err, &notFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.As(err, &invalid), errors.As(err, &outOfRange), errors.As(err, &required):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
