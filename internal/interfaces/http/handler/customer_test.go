package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	partnerapp "github.com/lanzy-lanzy/tailoring/internal/application/partner"
	"github.com/lanzy-lanzy/tailoring/internal/domain/partner"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
	"github.com/lanzy-lanzy/tailoring/internal/interfaces/http/dto"
)

// MockCustomerRepository is a mock implementation of partner.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Search(ctx context.Context, query string, limit int) ([]partner.Customer, error) {
	args := m.Called(ctx, query, limit)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) SaveWithLock(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByContactNumber(ctx context.Context, contactNumber string) (bool, error) {
	args := m.Called(ctx, contactNumber)
	return args.Bool(0), args.Error(1)
}

// MockOrderCounter is a mock implementation of partnerapp.OrderCounter
type MockOrderCounter struct {
	mock.Mock
}

func (m *MockOrderCounter) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func testCustomer(t *testing.T) *partner.Customer {
	t.Helper()
	customer, err := partner.NewCustomer("Ana Reyes", "09171234567", "Poblacion, Dipolog City", "")
	require.NoError(t, err)
	return customer
}

func newCustomerTestAPI() (*gin.Engine, *MockCustomerRepository, *MockOrderCounter) {
	repo := new(MockCustomerRepository)
	orders := new(MockOrderCounter)
	service := partnerapp.NewCustomerService(repo, orders)

	engine := gin.New()
	NewCustomerHandler(service).RegisterRoutes(engine.Group("/api/v1"))
	return engine, repo, orders
}

func doJSON(engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestCustomerHandler_Create(t *testing.T) {
	t.Run("creates a customer", func(t *testing.T) {
		engine, repo, _ := newCustomerTestAPI()
		repo.On("ExistsByContactNumber", mock.Anything, "09181234567").Return(false, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Customer")).Return(nil)

		w := doJSON(engine, http.MethodPost, "/api/v1/customers", partnerapp.CreateCustomerRequest{
			Name:          "Ben Santos",
			ContactNumber: "09181234567",
			Address:       "Miputak, Dipolog City",
		})

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var resp struct {
			Data partnerapp.CustomerResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Ben Santos", resp.Data.Name)
		assert.NotEqual(t, uuid.Nil, resp.Data.ID)
		repo.AssertExpectations(t)
	})

	t.Run("rejects a duplicate contact number", func(t *testing.T) {
		engine, repo, _ := newCustomerTestAPI()
		repo.On("ExistsByContactNumber", mock.Anything, "09171234567").Return(true, nil)

		w := doJSON(engine, http.MethodPost, "/api/v1/customers", partnerapp.CreateCustomerRequest{
			Name:          "Ana Reyes",
			ContactNumber: "09171234567",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeAlreadyExists, resp.Error.Code)
	})

	t.Run("rejects a missing contact number", func(t *testing.T) {
		engine, _, _ := newCustomerTestAPI()

		w := doJSON(engine, http.MethodPost, "/api/v1/customers", gin.H{"name": "Ben Santos"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCustomerHandler_List(t *testing.T) {
	engine, repo, _ := newCustomerTestAPI()
	customer := testCustomer(t)
	repo.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).
		Return([]partner.Customer{*customer}, nil)
	repo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).
		Return(int64(41), nil)

	w := doJSON(engine, http.MethodGet, "/api/v1/customers?page=2&page_size=20", nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(41), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestCustomerHandler_Search(t *testing.T) {
	t.Run("searches by query", func(t *testing.T) {
		engine, repo, _ := newCustomerTestAPI()
		customer := testCustomer(t)
		repo.On("Search", mock.Anything, "ana", 10).
			Return([]partner.Customer{*customer}, nil)

		w := doJSON(engine, http.MethodGet, "/api/v1/customers/search?q=ana", nil)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp struct {
			Data []partnerapp.CustomerResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "Ana Reyes", resp.Data[0].Name)
	})

	t.Run("requires a query", func(t *testing.T) {
		engine, _, _ := newCustomerTestAPI()

		w := doJSON(engine, http.MethodGet, "/api/v1/customers/search", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCustomerHandler_Get(t *testing.T) {
	t.Run("returns a customer", func(t *testing.T) {
		engine, repo, _ := newCustomerTestAPI()
		customer := testCustomer(t)
		repo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)

		w := doJSON(engine, http.MethodGet, "/api/v1/customers/"+customer.ID.String(), nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data partnerapp.CustomerResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, customer.ID, resp.Data.ID)
	})

	t.Run("returns 404 for an unknown customer", func(t *testing.T) {
		engine, repo, _ := newCustomerTestAPI()
		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		w := doJSON(engine, http.MethodGet, "/api/v1/customers/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("returns 400 for a malformed ID", func(t *testing.T) {
		engine, _, _ := newCustomerTestAPI()

		w := doJSON(engine, http.MethodGet, "/api/v1/customers/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCustomerHandler_Delete(t *testing.T) {
	t.Run("deletes a customer without orders", func(t *testing.T) {
		engine, repo, orders := newCustomerTestAPI()
		customer := testCustomer(t)
		repo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		orders.On("CountByCustomer", mock.Anything, customer.ID).Return(int64(0), nil)
		repo.On("Delete", mock.Anything, customer.ID).Return(nil)

		w := doJSON(engine, http.MethodDelete, "/api/v1/customers/"+customer.ID.String(), nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("refuses to delete a customer with order history", func(t *testing.T) {
		engine, repo, orders := newCustomerTestAPI()
		customer := testCustomer(t)
		repo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		orders.On("CountByCustomer", mock.Anything, customer.ID).Return(int64(3), nil)

		w := doJSON(engine, http.MethodDelete, "/api/v1/customers/"+customer.ID.String(), nil)

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeHasOrders, resp.Error.Code)
		repo.AssertNotCalled(t, "Delete", mock.Anything, customer.ID)
	})
}
