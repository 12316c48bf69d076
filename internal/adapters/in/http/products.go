package http

import (
	"fmt"
	"net/http"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListProducts handles GET /api/products.
func (s *Server) ListProducts(ctx echo.Context) error {
	found, err := s.h.ListProducts.Handle(ctx.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return err
	}

	response := make([]servers.Product, len(found))
	for i, p := range found {
		response[i] = productToAPI(p)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetProduct handles GET /api/products/{id}. Reads go through the product cache.
func (s *Server) GetProduct(ctx echo.Context, id servers.Id) error {
	p, err := s.h.GetProduct.Handle(ctx.Request().Context(), queries.NewGetProductQuery(id))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, productToAPI(p))
}

// CreateProduct handles POST /api/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body servers.CreateProductJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateProductCommand(productDetailsFromAPI(body))
	if err != nil {
		return err
	}

	created, err := s.h.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	ctx.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/products/%d", created.ID()))
	return ctx.JSON(http.StatusCreated, productToAPI(created))
}

// UpdateProduct handles PUT /api/products/{id}.
func (s *Server) UpdateProduct(ctx echo.Context, id servers.Id) error {
	var body servers.UpdateProductJSONRequestBody
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	if err := matchID(id, body.ProductId); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateProductCommand(id, productDetailsFromAPI(body))
	if err != nil {
		return err
	}

	updated, err := s.h.UpdateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, productToAPI(updated))
}

// DeleteProduct handles DELETE /api/products/{id}. Orders of the product go with it.
func (s *Server) DeleteProduct(ctx echo.Context, id servers.Id) error {
	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return err
	}

	if err = s.h.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.Message{
		Message: fmt.Sprintf("Product with ID %d has been deleted successfully", id),
	})
}
