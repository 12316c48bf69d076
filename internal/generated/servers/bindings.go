package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Defines values for OrderStatus.
const (
	Cancelled OrderStatus = "Cancelled"
	Completed OrderStatus = "Completed"
	Pending   OrderStatus = "Pending"
)

// Customer defines model for Customer.
type Customer struct {
	Age               *int                `json:"age,omitempty"`
	AverageOrderValue *Money              `json:"averageOrderValue,omitempty"`
	Churned           *bool               `json:"churned,omitempty"`
	CustomerId        *int64              `json:"customerId,omitempty"`
	Email             *string             `json:"email,omitempty"`
	FirstName         *string             `json:"firstName,omitempty"`
	Frequency         *int                `json:"frequency,omitempty"`
	Gender            *string             `json:"gender,omitempty"`
	JoinDate          *openapi_types.Date `json:"joinDate,omitempty"`
	LastName          *string             `json:"lastName,omitempty"`
	LastPurchaseDate  *openapi_types.Date `json:"lastPurchaseDate,omitempty"`
	MembershipStatus  *string             `json:"membershipStatus,omitempty"`
	PhoneNumber       *string             `json:"phoneNumber,omitempty"`
	PostalCode        *string             `json:"postalCode,omitempty"`
	PreferredCategory *string             `json:"preferredCategory,omitempty"`
	TotalSpending     *Money              `json:"totalSpending,omitempty"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Message defines model for Message.
type Message struct {
	Message string `json:"message"`
}

// Money defines model for Money.
type Money = decimal.Decimal

// Order defines model for Order.
type Order struct {
	Channel        *string             `json:"channel,omitempty"`
	Customer       *Customer           `json:"customer,omitempty"`
	CustomerId     *int64              `json:"customerId,omitempty"`
	DiscountAmount *Money              `json:"discountAmount,omitempty"`
	OrderDate      *openapi_types.Date `json:"orderDate,omitempty"`
	OrderTime      *string             `json:"orderTime,omitempty"`
	PaymentMethod  *string             `json:"paymentMethod,omitempty"`
	Price          *Money              `json:"price,omitempty"`
	Product        *Product            `json:"product,omitempty"`
	ProductId      *int64              `json:"productId,omitempty"`
	PromotionId    *int                `json:"promotionId,omitempty"`
	Quantity       *int                `json:"quantity,omitempty"`
	Status         *OrderStatus        `json:"status,omitempty" validate:"omitempty,oneof=Pending Completed Cancelled"`
	StoreId        *int                `json:"storeId,omitempty"`
	TransactionId  *int64              `json:"transactionId,omitempty"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// OrderTransition defines model for OrderTransition.
type OrderTransition struct {
	Message string `json:"message"`
	Order   Order  `json:"order"`
}

// Product defines model for Product.
type Product struct {
	Active         *bool               `json:"active,omitempty"`
	Category       *string             `json:"category,omitempty"`
	Cost           *Money              `json:"cost,omitempty"`
	Ingredients    *string             `json:"ingredients,omitempty"`
	IntroducedDate *openapi_types.Date `json:"introducedDate,omitempty"`
	Price          *Money              `json:"price,omitempty"`
	ProductId      *int64              `json:"productId,omitempty"`
	ProductName    *string             `json:"productName,omitempty"`
	Seasonal       *bool               `json:"seasonal,omitempty"`
}

// Id defines model for Id.
type Id = int64

// CreateCustomerJSONRequestBody defines body for CreateCustomer for application/json ContentType.
type CreateCustomerJSONRequestBody = Customer

// UpdateCustomerJSONRequestBody defines body for UpdateCustomer for application/json ContentType.
type UpdateCustomerJSONRequestBody = Customer

// CreateProductJSONRequestBody defines body for CreateProduct for application/json ContentType.
type CreateProductJSONRequestBody = Product

// UpdateProductJSONRequestBody defines body for UpdateProduct for application/json ContentType.
type UpdateProductJSONRequestBody = Product

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = Order

// OverrideOrderJSONRequestBody defines body for OverrideOrder for application/json ContentType.
type OverrideOrderJSONRequestBody = Order

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Replace every attribute and the status of an order
	// (PUT /api/admin/orders/{id})
	OverrideOrder(ctx echo.Context, id Id) error
	// List customers ordered by id
	// (GET /api/customers)
	ListCustomers(ctx echo.Context) error
	// Create a customer
	// (POST /api/customers)
	CreateCustomer(ctx echo.Context) error
	// Get a customer
	// (GET /api/customers/{id})
	GetCustomer(ctx echo.Context, id Id) error
	// Replace every attribute of a customer
	// (PUT /api/customers/{id})
	UpdateCustomer(ctx echo.Context, id Id) error
	// List orders with their customer and product
	// (GET /api/orders)
	ListOrders(ctx echo.Context) error
	// Create an order, deriving its price from the product
	// (POST /api/orders)
	CreateOrder(ctx echo.Context) error
	// Get an order with its customer and product
	// (GET /api/orders/{id})
	GetOrder(ctx echo.Context, id Id) error
	// Move a pending order to Cancelled
	// (PUT /api/orders/{id}/cancel)
	CancelOrder(ctx echo.Context, id Id) error
	// Move a pending order to Completed
	// (PUT /api/orders/{id}/complete)
	CompleteOrder(ctx echo.Context, id Id) error
	// List products ordered by id
	// (GET /api/products)
	ListProducts(ctx echo.Context) error
	// Create a product
	// (POST /api/products)
	CreateProduct(ctx echo.Context) error
	// Delete a product and, by cascade, its orders
	// (DELETE /api/products/{id})
	DeleteProduct(ctx echo.Context, id Id) error
	// Get a product
	// (GET /api/products/{id})
	GetProduct(ctx echo.Context, id Id) error
	// Replace every attribute of a product
	// (PUT /api/products/{id})
	UpdateProduct(ctx echo.Context, id Id) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// bindID binds the "id" path parameter shared by every item route.
func bindID(ctx echo.Context) (Id, error) {
	var id Id

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return id, nil
}

// OverrideOrder converts echo context to params.
func (w *ServerInterfaceWrapper) OverrideOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.OverrideOrder(ctx, id)
}

// ListCustomers converts echo context to params.
func (w *ServerInterfaceWrapper) ListCustomers(ctx echo.Context) error {
	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.ListCustomers(ctx)
}

// CreateCustomer converts echo context to params.
func (w *ServerInterfaceWrapper) CreateCustomer(ctx echo.Context) error {
	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.CreateCustomer(ctx)
}

// GetCustomer converts echo context to params.
func (w *ServerInterfaceWrapper) GetCustomer(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.GetCustomer(ctx, id)
}

// UpdateCustomer converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateCustomer(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.UpdateCustomer(ctx, id)
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.ListOrders(ctx)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.CreateOrder(ctx)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.GetOrder(ctx, id)
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.CancelOrder(ctx, id)
}

// CompleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CompleteOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.CompleteOrder(ctx, id)
}

// ListProducts converts echo context to params.
func (w *ServerInterfaceWrapper) ListProducts(ctx echo.Context) error {
	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.ListProducts(ctx)
}

// CreateProduct converts echo context to params.
func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.CreateProduct(ctx)
}

// DeleteProduct converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteProduct(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.DeleteProduct(ctx, id)
}

// GetProduct converts echo context to params.
func (w *ServerInterfaceWrapper) GetProduct(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.GetProduct(ctx, id)
}

// UpdateProduct converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateProduct(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	return w.Handler.UpdateProduct(ctx, id)
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register handlers.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.PUT(baseURL+"/api/admin/orders/:id", wrapper.OverrideOrder)
	router.GET(baseURL+"/api/customers", wrapper.ListCustomers)
	router.POST(baseURL+"/api/customers", wrapper.CreateCustomer)
	router.GET(baseURL+"/api/customers/:id", wrapper.GetCustomer)
	router.PUT(baseURL+"/api/customers/:id", wrapper.UpdateCustomer)
	router.GET(baseURL+"/api/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/orders/:id", wrapper.GetOrder)
	router.PUT(baseURL+"/api/orders/:id/cancel", wrapper.CancelOrder)
	router.PUT(baseURL+"/api/orders/:id/complete", wrapper.CompleteOrder)
	router.GET(baseURL+"/api/products", wrapper.ListProducts)
	router.POST(baseURL+"/api/products", wrapper.CreateProduct)
	router.DELETE(baseURL+"/api/products/:id", wrapper.DeleteProduct)
	router.GET(baseURL+"/api/products/:id", wrapper.GetProduct)
	router.PUT(baseURL+"/api/products/:id", wrapper.UpdateProduct)
}
