package http

import (
	"fmt"
	"net/http"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListCustomers handles GET /api/customers.
func (s *Server) ListCustomers(ctx echo.Context) error {
	found, err := s.h.ListCustomers.Handle(ctx.Request().Context(), queries.NewListCustomersQuery())
	if err != nil {
		return err
	}

	response := make([]servers.Customer, len(found))
	for i, c := range found {
		response[i] = customerToAPI(c)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCustomer handles GET /api/customers/{id}.
func (s *Server) GetCustomer(ctx echo.Context, id servers.Id) error {
	c, err := s.h.GetCustomer.Handle(ctx.Request().Context(), queries.NewGetCustomerQuery(id))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, customerToAPI(c))
}

// CreateCustomer handles POST /api/customers. A customerId in the body is ignored.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body servers.CreateCustomerJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCustomerCommand(customerDetailsFromAPI(body))
	if err != nil {
		return err
	}

	created, err := s.h.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	ctx.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/customers/%d", created.ID()))
	return ctx.JSON(http.StatusCreated, customerToAPI(created))
}

// UpdateCustomer handles PUT /api/customers/{id}: every attribute is replaced.
func (s *Server) UpdateCustomer(ctx echo.Context, id servers.Id) error {
	var body servers.UpdateCustomerJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	if err := matchID(id, body.CustomerId); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCustomerCommand(id, customerDetailsFromAPI(body))
	if err != nil {
		return err
	}

	updated, err := s.h.UpdateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, customerToAPI(updated))
}

// bindBody decodes the JSON body and runs the registered validator on it.
func bindBody(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return err
	}
	return ctx.Validate(body)
}

// matchID rejects a body whose id is set and differs from the path id.
func matchID(pathID int64, bodyID *int64) error {
	if bodyID != nil && *bodyID != pathID {
		return errIDMismatch
	}
	return nil
}
