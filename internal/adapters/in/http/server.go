// Package http exposes the fulfillment use cases over a REST API.
// Identity is taken from the path as-is; authentication sits in front
// of this service.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addCartItemHandler          commands.AddCartItemCommandHandler
	removeCartItemHandler       commands.RemoveCartItemCommandHandler
	checkoutHandler             commands.CheckoutCommandHandler
	processPaymentHandler       commands.ProcessPaymentCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	createProductHandler        commands.CreateProductCommandHandler
	moderateProductHandler      commands.ModerateProductCommandHandler

	// Query handlers
	getCartHandler               queries.GetCartQueryHandler
	getOrderHandler              queries.GetOrderQueryHandler
	getAssignedDeliveriesHandler queries.GetAssignedDeliveriesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addCartItemHandler commands.AddCartItemCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	processPaymentHandler commands.ProcessPaymentCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	moderateProductHandler commands.ModerateProductCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAssignedDeliveriesHandler queries.GetAssignedDeliveriesQueryHandler,
) *Server {
	return &Server{
		addCartItemHandler:           addCartItemHandler,
		removeCartItemHandler:        removeCartItemHandler,
		checkoutHandler:              checkoutHandler,
		processPaymentHandler:        processPaymentHandler,
		updateDeliveryStatusHandler:  updateDeliveryStatusHandler,
		createProductHandler:         createProductHandler,
		moderateProductHandler:       moderateProductHandler,
		getCartHandler:               getCartHandler,
		getOrderHandler:              getOrderHandler,
		getAssignedDeliveriesHandler: getAssignedDeliveriesHandler,
	}
}

// RegisterRoutes binds all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/cart", s.AddCartItem)
	api.GET("/cart/:session", s.GetCart)
	api.DELETE("/cart/:session/:item", s.RemoveCartItem)

	api.POST("/orders", s.Checkout)
	api.POST("/orders/:id/payment", s.ProcessPayment)
	api.GET("/orders/:id", s.GetOrder)

	api.GET("/delivery/:courier/orders", s.GetAssignedDeliveries)
	api.PUT("/delivery/:courier/orders/:id/status", s.UpdateDeliveryStatus)

	api.POST("/products", s.CreateProduct)
	api.PUT("/products/:id/moderation", s.ModerateProduct)
}

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrUnverified):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrCartIsEmpty):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func parseUUIDParam(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, err
	}
	return id, nil
}

// AddCartItemRequest is the body for POST /api/v1/cart.
type AddCartItemRequest struct {
	SessionID string `json:"sessionId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// AddCartItem handles POST /api/v1/cart - adds a product to a session cart.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var request AddCartItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	cmd, err := commands.NewAddCartItemCommand(request.SessionID, productID, request.Quantity)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCart handles GET /api/v1/cart/:session - returns the cart contents.
func (s *Server) GetCart(ctx echo.Context) error {
	query, err := queries.NewGetCartQuery(ctx.Param("session"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cart, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cart)
}

// RemoveCartItem handles DELETE /api/v1/cart/:session/:item.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	productID, err := parseUUIDParam(ctx, "item")
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	cmd, err := commands.NewRemoveCartItemCommand(ctx.Param("session"), productID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CheckoutRequest is the body for POST /api/v1/orders.
type CheckoutRequest struct {
	SessionID       string  `json:"sessionId"`
	ClientName      string  `json:"clientName"`
	ClientEmail     string  `json:"clientEmail"`
	ClientPhone     string  `json:"clientPhone"`
	DeliveryAddress string  `json:"deliveryAddress"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
}

// CheckoutResponse carries the identifier of the created order.
type CheckoutResponse struct {
	OrderID string `json:"orderId"`
}

// Checkout handles POST /api/v1/orders - turns a session cart into an order.
func (s *Server) Checkout(ctx echo.Context) error {
	var request CheckoutRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCheckoutCommand(request.SessionID, request.ClientName,
		request.ClientEmail, request.ClientPhone, request.DeliveryAddress,
		request.Latitude, request.Longitude)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{OrderID: orderID.String()})
}

// ProcessPaymentRequest is the body for POST /api/v1/orders/:id/payment.
type ProcessPaymentRequest struct {
	Reference string `json:"reference"`
}

// ProcessPayment handles POST /api/v1/orders/:id/payment.
func (s *Server) ProcessPayment(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request ProcessPaymentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewProcessPaymentCommand(orderID, request.Reference)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.processPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	summary, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summary)
}

// GetAssignedDeliveries handles GET /api/v1/delivery/:courier/orders.
func (s *Server) GetAssignedDeliveries(ctx echo.Context) error {
	courierID, err := parseUUIDParam(ctx, "courier")
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	query, err := queries.NewGetAssignedDeliveriesQuery(courierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	deliveries, err := s.getAssignedDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveries)
}

// UpdateDeliveryStatusRequest is the body for PUT /api/v1/delivery/:courier/orders/:id/status.
type UpdateDeliveryStatusRequest struct {
	Status string `json:"status"`
}

// UpdateDeliveryStatus handles PUT /api/v1/delivery/:courier/orders/:id/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	courierID, err := parseUUIDParam(ctx, "courier")
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request UpdateDeliveryStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(courierID, orderID, request.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateProductRequest is the body for POST /api/v1/products.
type CreateProductRequest struct {
	VendorID    string  `json:"vendorId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// CreateProductResponse carries the identifier of the created listing.
type CreateProductResponse struct {
	ProductID string `json:"productId"`
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request CreateProductRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vendorID, err := kernel.UUIDFromString(request.VendorID)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id")
	}

	cmd, err := commands.NewCreateProductCommand(vendorID, request.Name,
		request.Description, request.Price, request.Stock)
	if err != nil {
		return errorResponse(ctx, err)
	}

	productID, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateProductResponse{ProductID: productID.String()})
}

// ModerateProductRequest is the body for PUT /api/v1/products/:id/moderation.
type ModerateProductRequest struct {
	AdminID string `json:"adminId"`
	Approve bool   `json:"approve"`
}

// ModerateProduct handles PUT /api/v1/products/:id/moderation.
func (s *Server) ModerateProduct(ctx echo.Context) error {
	productID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	var request ModerateProductRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	adminID, err := kernel.UUIDFromString(request.AdminID)
	if err != nil {
		return badRequest(ctx, "Invalid admin id")
	}

	cmd, err := commands.NewModerateProductCommand(adminID, productID, request.Approve)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.moderateProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
