// Package http exposes the ordering core over JSON endpoints.
// Handlers translate between wire DTOs and application commands/queries;
// mutating routes are serialized by a single server mutex so order and
// delivery transitions never interleave.
package http

import (
	"net/http"
	"strconv"
	"sync"

	"myfood/internal/core/application/usecases/commands"
	"myfood/internal/core/application/usecases/queries"
	"myfood/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	mu sync.Mutex

	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	addItemHandler          commands.AddItemCommandHandler
	removeItemHandler       commands.RemoveItemCommandHandler
	closeOrderHandler       commands.CloseOrderCommandHandler
	markOrderReadyHandler   commands.MarkOrderReadyCommandHandler
	createDeliveryHandler   commands.CreateDeliveryCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler

	// Query handlers
	getOrderAttributeHandler     queries.GetOrderAttributeQueryHandler
	getOrderNumberHandler        queries.GetOrderNumberQueryHandler
	getDeliveryAttributeHandler  queries.GetDeliveryAttributeQueryHandler
	getDeliveryForOrderHandler   queries.GetDeliveryForOrderQueryHandler
	selectOrderForCourierHandler queries.SelectOrderForCourierQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	removeItemHandler commands.RemoveItemCommandHandler,
	closeOrderHandler commands.CloseOrderCommandHandler,
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler,
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	getOrderAttributeHandler queries.GetOrderAttributeQueryHandler,
	getOrderNumberHandler queries.GetOrderNumberQueryHandler,
	getDeliveryAttributeHandler queries.GetDeliveryAttributeQueryHandler,
	getDeliveryForOrderHandler queries.GetDeliveryForOrderQueryHandler,
	selectOrderForCourierHandler queries.SelectOrderForCourierQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		addItemHandler:               addItemHandler,
		removeItemHandler:            removeItemHandler,
		closeOrderHandler:            closeOrderHandler,
		markOrderReadyHandler:        markOrderReadyHandler,
		createDeliveryHandler:        createDeliveryHandler,
		completeDeliveryHandler:      completeDeliveryHandler,
		getOrderAttributeHandler:     getOrderAttributeHandler,
		getOrderNumberHandler:        getOrderNumberHandler,
		getDeliveryAttributeHandler:  getDeliveryAttributeHandler,
		getDeliveryForOrderHandler:   getDeliveryForOrderHandler,
		selectOrderForCourierHandler: selectOrderForCourierHandler,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", RequestID())

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/number", s.GetOrderNumber)
	api.POST("/orders/:number/items", s.AddItem)
	api.DELETE("/orders/:number/items/:name", s.RemoveItem)
	api.POST("/orders/:number/close", s.CloseOrder)
	api.POST("/orders/:number/ready", s.MarkOrderReady)
	api.GET("/orders/:number/attributes/:name", s.GetOrderAttribute)
	api.GET("/orders/:number/delivery", s.GetDeliveryForOrder)

	api.POST("/deliveries", s.CreateDelivery)
	api.POST("/deliveries/:id/complete", s.CompleteDelivery)
	api.GET("/deliveries/:id/attributes/:name", s.GetDeliveryAttribute)

	api.GET("/couriers/:id/next-order", s.SelectOrderForCourier)
}

// CreateOrder handles POST /api/v1/orders - opens a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.UserID(body.CustomerID), kernel.CompanyID(body.CompanyID))
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	s.mu.Lock()
	number, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	s.mu.Unlock()
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{Number: number.Int()})
}

// AddItem handles POST /api/v1/orders/:number/items - adds a product to the basket.
func (s *Server) AddItem(ctx echo.Context) error {
	number, err := pathInt(ctx, "number")
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	var body NewItem
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddItemCommand(kernel.OrderNumber(number), kernel.ProductID(body.ProductID))
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	s.mu.Lock()
	err = s.addItemHandler.Handle(ctx.Request().Context(), cmd)
	s.mu.Unlock()
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveItem handles DELETE /api/v1/orders/:number/items/:name - removes the
// first basket item with the given product name.
func (s *Server) RemoveItem(ctx echo.Context) error {
	number, err := pathInt(ctx, "number")
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	cmd, err := commands.NewRemoveItemCommand(kernel.OrderNumber(number), ctx.Param("name"))
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	s.mu.Lock()
	err = s.removeItemHandler.Handle(ctx.Request().Context(), cmd)
	s.mu.Unlock()
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CloseOrder handles POST /api/v1/orders/:number/close - sends the order to preparation.
func (s *Server) CloseOrder(ctx echo.Context) error {
	number, err := pathInt(ctx, "number")
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	cmd, err := commands.NewCloseOrderCommand(kernel.OrderNumber(number))
	if err != nil {
		return badRequest(ctx, "Invalid order number: "+err.Error())
	}

	s.mu.Lock()
	err = s.closeOrderHandler.Handle(ctx.Request().Context(), cmd)
	s.mu.Unlock()
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderReady handles POST /api/v1/orders/:number/ready - marks preparation finished.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	number, err := pathInt(ctx, "number")
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	cmd, err := commands.NewMarkOrderReadyCommand(kernel.OrderNumber(number))
	if err != nil {
		return badRequest(ctx, "Invalid order number: "+err.Error())
	}

	s.mu.Lock()
	err = s.markOrderReadyHandler.Handle(ctx.Request().Context(), cmd)
	s.mu.Unlock()
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderAttribute handles GET /api/v1/orders/:number/attributes/:name.
func (s *Server) GetOrderAttribute(ctx echo.Context) error {
	number, err := pathInt(ctx, "number")
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	query, err := queries.NewGetOrderAttributeQuery(kernel.OrderNumber(number), ctx.Param("name"))
	if err != nil {
		return badRequest(ctx, "Invalid attribute request: "+err.Error())
	}

	value, err := s.getOrderAttributeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AttributeValue{Value: value})
}

// GetOrderNumber handles GET /api/v1/orders/number - resolves the number of
// the index-th order placed at a company.
func (s *Server) GetOrderNumber(ctx echo.Context) error {
	customerID, err := queryInt(ctx, "customerId")
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}
	companyID, err := queryInt(ctx, "companyId")
	if err != nil {
		return badRequest(ctx, "Invalid company id")
	}
	index, err := queryInt(ctx, "index")
	if err != nil {
		return badRequest(ctx, "Invalid index")
	}

	query, err := queries.NewGetOrderNumberQuery(kernel.UserID(customerID), kernel.CompanyID(companyID), index)
	if err != nil {
		return badRequest(ctx, "Invalid lookup: "+err.Error())
	}

	number, err := s.getOrderNumberHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderCreated{Number: number.Int()})
}

// CreateDelivery handles POST /api/v1/deliveries - binds a ready order to a courier.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var body NewDelivery
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.OrderNumber(body.OrderNumber),
		kernel.UserID(body.CourierID),
		body.Destination,
	)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	s.mu.Lock()
	id, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	s.mu.Unlock()
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, DeliveryCreated{ID: id.Int()})
}

// CompleteDelivery handles POST /api/v1/deliveries/:id/complete - marks the
// delivered order as entregue.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	id, err := pathInt(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(kernel.DeliveryID(id))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id: "+err.Error())
	}

	s.mu.Lock()
	err = s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	s.mu.Unlock()
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryAttribute handles GET /api/v1/deliveries/:id/attributes/:name.
func (s *Server) GetDeliveryAttribute(ctx echo.Context) error {
	id, err := pathInt(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	query, err := queries.NewGetDeliveryAttributeQuery(kernel.DeliveryID(id), ctx.Param("name"))
	if err != nil {
		return badRequest(ctx, "Invalid attribute request: "+err.Error())
	}

	value, err := s.getDeliveryAttributeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AttributeValue{Value: value})
}

// GetDeliveryForOrder handles GET /api/v1/orders/:number/delivery - resolves
// the delivery bound to an order.
func (s *Server) GetDeliveryForOrder(ctx echo.Context) error {
	number, err := pathInt(ctx, "number")
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	query, err := queries.NewGetDeliveryForOrderQuery(kernel.OrderNumber(number))
	if err != nil {
		return badRequest(ctx, "Invalid order number: "+err.Error())
	}

	id, err := s.getDeliveryForOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeliveryCreated{ID: id.Int()})
}

// SelectOrderForCourier handles GET /api/v1/couriers/:id/next-order - asks
// which ready order the courier should pick up next.
func (s *Server) SelectOrderForCourier(ctx echo.Context) error {
	id, err := pathInt(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	query, err := queries.NewSelectOrderForCourierQuery(kernel.UserID(id))
	if err != nil {
		return badRequest(ctx, "Invalid courier id: "+err.Error())
	}

	number, err := s.selectOrderForCourierHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderCreated{Number: number.Int()})
}

func pathInt(ctx echo.Context, name string) (int, error) {
	return strconv.Atoi(ctx.Param(name))
}

func queryInt(ctx echo.Context, name string) (int, error) {
	return strconv.Atoi(ctx.QueryParam(name))
}
