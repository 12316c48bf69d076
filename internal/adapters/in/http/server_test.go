package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	httpin "bakery/internal/adapters/in/http"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/generated/servers"
	"bakery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

type mockCreateCustomer struct{ mock.Mock }

func (m *mockCreateCustomer) Handle(ctx context.Context, cmd commands.CreateCustomerCommand) (*customer.Customer, error) {
	args := m.Called(ctx, cmd)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

type mockUpdateCustomer struct{ mock.Mock }

func (m *mockUpdateCustomer) Handle(ctx context.Context, cmd commands.UpdateCustomerCommand) (*customer.Customer, error) {
	args := m.Called(ctx, cmd)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

type mockGetCustomer struct{ mock.Mock }

func (m *mockGetCustomer) Handle(ctx context.Context, query queries.GetCustomerQuery) (*customer.Customer, error) {
	args := m.Called(ctx, query)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

type mockUpdateProduct struct{ mock.Mock }

func (m *mockUpdateProduct) Handle(ctx context.Context, cmd commands.UpdateProductCommand) (*product.Product, error) {
	args := m.Called(ctx, cmd)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

type mockDeleteProduct struct{ mock.Mock }

func (m *mockDeleteProduct) Handle(ctx context.Context, cmd commands.DeleteProductCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockListProducts struct{ mock.Mock }

func (m *mockListProducts) Handle(ctx context.Context, query queries.ListProductsQuery) ([]*product.Product, error) {
	args := m.Called(ctx, query)
	p, _ := args.Get(0).([]*product.Product)
	return p, args.Error(1)
}

type mockCreateOrder struct{ mock.Mock }

func (m *mockCreateOrder) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreatedOrder, error) {
	args := m.Called(ctx, cmd)
	created, _ := args.Get(0).(commands.CreatedOrder)
	return created, args.Error(1)
}

type mockTransitionOrder struct{ mock.Mock }

func (m *mockTransitionOrder) Handle(ctx context.Context, cmd commands.TransitionOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type mockOverrideOrder struct{ mock.Mock }

func (m *mockOverrideOrder) Handle(ctx context.Context, cmd commands.OverrideOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type mockGetOrder struct{ mock.Mock }

func (m *mockGetOrder) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	v, _ := args.Get(0).(queries.OrderView)
	return v, args.Error(1)
}

// readBack answers GetOrder for id with the order and the records it references.
func readBack(id int64, o *order.Order) *mockGetOrder {
	get := new(mockGetOrder)
	get.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderQuery) bool {
		return q.ID() == id
	})).Return(queries.OrderView{
		Order:    o,
		Customer: customer.RestoreCustomer(3, 0, customer.Details{FirstName: kernel.Some("Noor")}),
		Product:  product.RestoreProduct(7, 0, product.Details{Name: kernel.Some("Baklava")}),
	}, nil).Once()
	return get
}

type mockListOrders struct{ mock.Mock }

func (m *mockListOrders) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.OrderView)
	return views, args.Error(1)
}

func newTestEcho(t *testing.T, handlers httpin.Handlers) *echo.Echo {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e, err := httpin.NewEcho(httpin.NewServer(handlers), logger)
	require.NoError(t, err)
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, rec.Code, body.Code)
	return body
}

func TestHealthAndDocument(t *testing.T) {
	e := newTestEcho(t, httpin.Handlers{})

	rec := do(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec = do(e, http.MethodGet, "/openapi.json", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"openapi":"3.0.3"`)
}

func TestCreateCustomer(t *testing.T) {
	t.Run("should answer 201 with the stored customer", func(t *testing.T) {
		create := new(mockCreateCustomer)
		create.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateCustomerCommand) bool {
			return cmd.Details().Email == kernel.Some("mariam@example.com") && cmd.Details().Age == kernel.Some(31)
		})).Return(customer.RestoreCustomer(5, 0, customer.Details{
			Email:         kernel.Some("mariam@example.com"),
			Age:           kernel.Some(31),
			JoinDate:      kernel.Some(kernel.NewDate(2024, time.May, 10)),
			TotalSpending: kernel.Some(decimal.RequireFromString("12.50")),
		}), nil).Once()

		e := newTestEcho(t, httpin.Handlers{CreateCustomer: create})
		rec := do(e, http.MethodPost, "/api/customers", `{"email":"mariam@example.com","age":31}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "/api/customers/5", rec.Header().Get(echo.HeaderLocation))
		assert.JSONEq(t, `{
			"customerId": 5,
			"email": "mariam@example.com",
			"age": 31,
			"joinDate": "2024-05-10",
			"totalSpending": 12.5
		}`, rec.Body.String())
		create.AssertExpectations(t)
	})

	t.Run("should answer 400 for a duplicate email", func(t *testing.T) {
		create := new(mockCreateCustomer)
		create.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewDuplicateValueError("email", "mariam@example.com")).Once()

		e := newTestEcho(t, httpin.Handlers{CreateCustomer: create})
		rec := do(e, http.MethodPost, "/api/customers", `{"email":"mariam@example.com"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "A customer with this email already exists", decodeError(t, rec).Message)
	})

	t.Run("should answer 400 without calling the use case for invalid fields", func(t *testing.T) {
		create := new(mockCreateCustomer)

		e := newTestEcho(t, httpin.Handlers{CreateCustomer: create})
		rec := do(e, http.MethodPost, "/api/customers", `{"age":200,"gender":"xy"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		message := decodeError(t, rec).Message
		assert.Contains(t, message, "age")
		assert.Contains(t, message, "gender")
		create.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should answer 400 for malformed JSON", func(t *testing.T) {
		e := newTestEcho(t, httpin.Handlers{CreateCustomer: new(mockCreateCustomer)})
		rec := do(e, http.MethodPost, "/api/customers", `{"email":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		decodeError(t, rec)
	})

	t.Run("should answer 500 for unexpected failures", func(t *testing.T) {
		create := new(mockCreateCustomer)
		create.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset")).Once()

		e := newTestEcho(t, httpin.Handlers{CreateCustomer: create})
		rec := do(e, http.MethodPost, "/api/customers", `{}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, decodeError(t, rec).Message, "connection reset")
	})
}

func TestGetCustomer(t *testing.T) {
	t.Run("should answer 404 for a missing customer", func(t *testing.T) {
		get := new(mockGetCustomer)
		get.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetCustomerQuery) bool {
			return q.ID() == 9
		})).Return(nil, errs.NewObjectNotFoundError("customer", int64(9))).Once()

		e := newTestEcho(t, httpin.Handlers{GetCustomer: get})
		rec := do(e, http.MethodGet, "/api/customers/9", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Customer with ID 9 not found", decodeError(t, rec).Message)
	})

	t.Run("should answer 400 for a non numeric id", func(t *testing.T) {
		get := new(mockGetCustomer)

		e := newTestEcho(t, httpin.Handlers{GetCustomer: get})
		rec := do(e, http.MethodGet, "/api/customers/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		get.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestUpdateCustomer(t *testing.T) {
	t.Run("should answer 200 with the updated customer", func(t *testing.T) {
		update := new(mockUpdateCustomer)
		update.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateCustomerCommand) bool {
			return cmd.CustomerID() == 4 && cmd.Details().FirstName == kernel.Some("Noor")
		})).Return(customer.RestoreCustomer(4, 1, customer.Details{FirstName: kernel.Some("Noor")}), nil).Once()

		e := newTestEcho(t, httpin.Handlers{UpdateCustomer: update})
		rec := do(e, http.MethodPut, "/api/customers/4", `{"customerId":4,"firstName":"Noor"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.JSONEq(t, `{"customerId":4,"firstName":"Noor"}`, rec.Body.String())
		update.AssertExpectations(t)
	})

	t.Run("should take the path id when the body has none", func(t *testing.T) {
		update := new(mockUpdateCustomer)
		update.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateCustomerCommand) bool {
			return cmd.CustomerID() == 4
		})).Return(customer.RestoreCustomer(4, 1, customer.Details{}), nil).Once()

		e := newTestEcho(t, httpin.Handlers{UpdateCustomer: update})
		rec := do(e, http.MethodPut, "/api/customers/4", `{}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"customerId":4}`, rec.Body.String())
	})

	t.Run("should reject a body id that differs from the path", func(t *testing.T) {
		update := new(mockUpdateCustomer)

		e := newTestEcho(t, httpin.Handlers{UpdateCustomer: update})
		rec := do(e, http.MethodPut, "/api/customers/4", `{"customerId":5}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "ID mismatch", decodeError(t, rec).Message)
		update.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should answer 409 for a concurrent update", func(t *testing.T) {
		update := new(mockUpdateCustomer)
		update.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewConcurrencyConflictError("customer", int64(4), 1)).Once()

		e := newTestEcho(t, httpin.Handlers{UpdateCustomer: update})
		rec := do(e, http.MethodPut, "/api/customers/4", `{}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestUpdateProduct(t *testing.T) {
	update := new(mockUpdateProduct)
	update.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateProductCommand) bool {
		return cmd.ProductID() == 2
	})).Return(product.RestoreProduct(2, 3, product.Details{
		Name:      kernel.Some("Ma'amoul"),
		UnitPrice: kernel.Some(decimal.RequireFromString("2.25")),
	}), nil).Once()

	e := newTestEcho(t, httpin.Handlers{UpdateProduct: update})
	rec := do(e, http.MethodPut, "/api/products/2", `{"productId":2,"productName":"Ma'amoul","price":2.25}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"productId":2,"productName":"Ma'amoul","price":2.25}`, rec.Body.String())
	update.AssertExpectations(t)
}

func TestUpdateProduct_RejectsAmountTooLargeToStore(t *testing.T) {
	update := new(mockUpdateProduct)

	e := newTestEcho(t, httpin.Handlers{UpdateProduct: update})
	rec := do(e, http.MethodPut, "/api/products/2", `{"price":100000000}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "price")
	update.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestProducts(t *testing.T) {
	t.Run("should list products", func(t *testing.T) {
		list := new(mockListProducts)
		list.On("Handle", mock.Anything, mock.Anything).Return([]*product.Product{
			product.RestoreProduct(1, 0, product.Details{
				Name:      kernel.Some("Kunafa"),
				UnitPrice: kernel.Some(decimal.RequireFromString("4.75")),
				Active:    kernel.Some(true),
			}),
		}, nil).Once()

		e := newTestEcho(t, httpin.Handlers{ListProducts: list})
		rec := do(e, http.MethodGet, "/api/products", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"productId":1,"productName":"Kunafa","price":4.75,"active":true}]`, rec.Body.String())
	})

	t.Run("should list nothing as an empty array", func(t *testing.T) {
		list := new(mockListProducts)
		list.On("Handle", mock.Anything, mock.Anything).Return([]*product.Product{}, nil).Once()

		e := newTestEcho(t, httpin.Handlers{ListProducts: list})
		rec := do(e, http.MethodGet, "/api/products", "")

		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("should confirm a delete", func(t *testing.T) {
		del := new(mockDeleteProduct)
		del.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.DeleteProductCommand) bool {
			return cmd.ProductID() == 3
		})).Return(nil).Once()

		e := newTestEcho(t, httpin.Handlers{DeleteProduct: del})
		rec := do(e, http.MethodDelete, "/api/products/3", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Product with ID 3 has been deleted successfully"}`, rec.Body.String())
	})

	t.Run("should answer 404 when deleting a missing product", func(t *testing.T) {
		del := new(mockDeleteProduct)
		del.On("Handle", mock.Anything, mock.Anything).Return(errs.NewObjectNotFoundError("product", int64(3))).Once()

		e := newTestEcho(t, httpin.Handlers{DeleteProduct: del})
		rec := do(e, http.MethodDelete, "/api/products/3", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Product with ID 3 not found", decodeError(t, rec).Message)
	})
}

func TestCreateOrder(t *testing.T) {
	t.Run("should answer 201 with the referenced records", func(t *testing.T) {
		tod, _ := kernel.NewTimeOfDay(8, 30, 0)
		stored := order.RestoreOrder(12, 0, order.Details{
			CustomerID: kernel.Some(int64(2)),
			ProductID:  kernel.Some(int64(7)),
			OrderDate:  kernel.Some(kernel.NewDate(2024, time.May, 10)),
			OrderTime:  kernel.Some(tod),
			Quantity:   kernel.Some(3),
			Price:      kernel.Some(decimal.RequireFromString("15.00")),
		}, order.Pending)

		create := new(mockCreateOrder)
		create.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
			d := cmd.Details()
			return d.Quantity == kernel.Some(3) &&
				d.OrderTime == kernel.Some(tod) &&
				!cmd.Status().IsPresent()
		})).Return(commands.CreatedOrder{
			Order:    stored,
			Customer: customer.RestoreCustomer(2, 0, customer.Details{FirstName: kernel.Some("Noor")}),
			Product:  product.RestoreProduct(7, 0, product.Details{Name: kernel.Some("Baklava")}),
		}, nil).Once()

		e := newTestEcho(t, httpin.Handlers{CreateOrder: create})
		rec := do(e, http.MethodPost, "/api/orders",
			`{"customerId":2,"productId":7,"quantity":3,"orderTime":"08:30:00.250"}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "/api/orders/12", rec.Header().Get(echo.HeaderLocation))
		assert.JSONEq(t, `{
			"transactionId": 12,
			"customerId": 2,
			"productId": 7,
			"orderDate": "2024-05-10",
			"orderTime": "08:30:00",
			"quantity": 3,
			"price": 15,
			"status": "Pending",
			"customer": {"customerId": 2, "firstName": "Noor"},
			"product": {"productId": 7, "productName": "Baklava"}
		}`, rec.Body.String())
	})

	t.Run("should answer 400 for a dangling reference", func(t *testing.T) {
		create := new(mockCreateOrder)
		create.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewReferenceNotFoundError("product", int64(3))).Once()

		e := newTestEcho(t, httpin.Handlers{CreateOrder: create})
		rec := do(e, http.MethodPost, "/api/orders", `{"productId":3,"quantity":1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Product with ID 3 does not exist", decodeError(t, rec).Message)
	})

	t.Run("should reject malformed fields before the use case", func(t *testing.T) {
		bodies := map[string]string{
			"unknown status":   `{"quantity":1,"status":"Shipped"}`,
			"bad time":         `{"quantity":1,"orderTime":"25:00"}`,
			"bad date":         `{"quantity":1,"orderDate":"10/05/2024"}`,
		}
		for name, body := range bodies {
			t.Run(name, func(t *testing.T) {
				create := new(mockCreateOrder)

				e := newTestEcho(t, httpin.Handlers{CreateOrder: create})
				rec := do(e, http.MethodPost, "/api/orders", body)

				assert.Equal(t, http.StatusBadRequest, rec.Code)
				create.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
			})
		}
	})
}

func TestOrderTransitions(t *testing.T) {
	t.Run("should complete", func(t *testing.T) {
		transition := new(mockTransitionOrder)
		transition.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.TransitionOrderCommand) bool {
			return cmd.OrderID() == 8 && cmd.Target() == order.Completed
		})).Return(order.RestoreOrder(8, 1, order.Details{Quantity: kernel.Some(1)}, order.Completed), nil).Once()
		get := readBack(8, order.RestoreOrder(8, 1, order.Details{
			CustomerID: kernel.Some(int64(3)),
			ProductID:  kernel.Some(int64(7)),
			Quantity:   kernel.Some(1),
		}, order.Completed))

		e := newTestEcho(t, httpin.Handlers{TransitionOrder: transition, GetOrder: get})
		rec := do(e, http.MethodPut, "/api/orders/8/complete", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var body servers.OrderTransition
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Order 8 has been marked as completed", body.Message)
		require.NotNil(t, body.Order.Status)
		assert.Equal(t, servers.Completed, *body.Order.Status)
		require.NotNil(t, body.Order.Customer)
		assert.Equal(t, "Noor", *body.Order.Customer.FirstName)
		require.NotNil(t, body.Order.Product)
		assert.Equal(t, "Baklava", *body.Order.Product.ProductName)
		get.AssertExpectations(t)
	})

	t.Run("should cancel", func(t *testing.T) {
		transition := new(mockTransitionOrder)
		transition.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.TransitionOrderCommand) bool {
			return cmd.Target() == order.Cancelled
		})).Return(order.RestoreOrder(8, 1, order.Details{}, order.Cancelled), nil).Once()
		get := readBack(8, order.RestoreOrder(8, 1, order.Details{ProductID: kernel.Some(int64(7))}, order.Cancelled))

		e := newTestEcho(t, httpin.Handlers{TransitionOrder: transition, GetOrder: get})
		rec := do(e, http.MethodPut, "/api/orders/8/cancel", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Order 8 has been cancelled")
		assert.Contains(t, rec.Body.String(), `"productName":"Baklava"`)
	})

	t.Run("should answer 400 with the reason of a refused transition", func(t *testing.T) {
		transition := new(mockTransitionOrder)
		transition.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewInvalidTransitionError("Completed", "Cancelled", "Cannot cancel a completed order")).Once()

		e := newTestEcho(t, httpin.Handlers{TransitionOrder: transition})
		rec := do(e, http.MethodPut, "/api/orders/8/cancel", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Cannot cancel a completed order", decodeError(t, rec).Message)
	})
}

func TestOverrideOrder(t *testing.T) {
	t.Run("should write the status as given and answer with the order", func(t *testing.T) {
		override := new(mockOverrideOrder)
		override.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.OverrideOrderCommand) bool {
			return cmd.OrderID() == 8 && cmd.Status() == order.Pending
		})).Return(order.RestoreOrder(8, 2, order.Details{Quantity: kernel.Some(2)}, order.Pending), nil).Once()
		get := readBack(8, order.RestoreOrder(8, 2, order.Details{Quantity: kernel.Some(2)}, order.Pending))

		e := newTestEcho(t, httpin.Handlers{OverrideOrder: override, GetOrder: get})
		rec := do(e, http.MethodPut, "/api/admin/orders/8", `{"status":"Pending","quantity":2}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.JSONEq(t, `{
			"transactionId": 8,
			"quantity": 2,
			"status": "Pending",
			"customer": {"customerId": 3, "firstName": "Noor"},
			"product": {"productId": 7, "productName": "Baklava"}
		}`, rec.Body.String())
		override.AssertExpectations(t)
		get.AssertExpectations(t)
	})

	t.Run("should require a status", func(t *testing.T) {
		override := new(mockOverrideOrder)

		e := newTestEcho(t, httpin.Handlers{OverrideOrder: override})
		rec := do(e, http.MethodPut, "/api/admin/orders/8", `{"quantity":2}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "status")
		override.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestListOrders(t *testing.T) {
	list := new(mockListOrders)
	list.On("Handle", mock.Anything, mock.Anything).Return([]queries.OrderView{
		{Order: order.RestoreOrder(1, 0, order.Details{Quantity: kernel.Some(2)}, order.Cancelled)},
	}, nil).Once()

	e := newTestEcho(t, httpin.Handlers{ListOrders: list})
	rec := do(e, http.MethodGet, "/api/orders", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"transactionId":1,"quantity":2,"status":"Cancelled"}]`, rec.Body.String())
}
