package http

import (
	"fmt"
	"net/http"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	views, err := s.h.ListOrders.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return err
	}

	response := make([]servers.Order, len(views))
	for i, v := range views {
		response[i] = orderToAPI(v.Order, v.Customer, v.Product)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id servers.Id) error {
	v, err := s.h.GetOrder.Handle(ctx.Request().Context(), queries.NewGetOrderQuery(id))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, orderToAPI(v.Order, v.Customer, v.Product))
}

// CreateOrder handles POST /api/orders. The stored order is returned with the
// customer and product it references.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	details, status, err := orderFromAPI(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(details, status)
	if err != nil {
		return err
	}

	created, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	ctx.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/orders/%d", created.Order.ID()))
	return ctx.JSON(http.StatusCreated, orderToAPI(created.Order, created.Customer, created.Product))
}

// CompleteOrder handles PUT /api/orders/{id}/complete.
func (s *Server) CompleteOrder(ctx echo.Context, id servers.Id) error {
	cmd, err := commands.NewCompleteOrderCommand(id)
	if err != nil {
		return err
	}
	return s.transition(ctx, cmd, fmt.Sprintf("Order %d has been marked as completed", id))
}

// CancelOrder handles PUT /api/orders/{id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, id servers.Id) error {
	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return err
	}
	return s.transition(ctx, cmd, fmt.Sprintf("Order %d has been cancelled", id))
}

func (s *Server) transition(ctx echo.Context, cmd commands.TransitionOrderCommand, message string) error {
	o, err := s.h.TransitionOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	response, err := s.resolvedOrder(ctx, o.ID())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.OrderTransition{
		Message: message,
		Order:   response,
	})
}

// resolvedOrder reads a just written order back with its customer and product.
func (s *Server) resolvedOrder(ctx echo.Context, id int64) (servers.Order, error) {
	v, err := s.h.GetOrder.Handle(ctx.Request().Context(), queries.NewGetOrderQuery(id))
	if err != nil {
		return servers.Order{}, err
	}
	return orderToAPI(v.Order, v.Customer, v.Product), nil
}

// OverrideOrder handles PUT /api/admin/orders/{id}, the administrative
// correction path. The status is required and written as given. The stored
// order is returned with the customer and product it references.
func (s *Server) OverrideOrder(ctx echo.Context, id servers.Id) error {
	var body servers.OverrideOrderJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	if err := matchID(id, body.TransactionId); err != nil {
		return err
	}

	details, status, err := orderFromAPI(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewOverrideOrderCommand(id, details, status)
	if err != nil {
		return err
	}

	overridden, err := s.h.OverrideOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	response, err := s.resolvedOrder(ctx, overridden.ID())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, response)
}
