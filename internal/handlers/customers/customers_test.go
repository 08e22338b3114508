package customers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/erpfinance/internal/domain"
	"github.com/GlebRadaev/erpfinance/internal/dto"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*CustomerHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func acme() *domain.Customer {
	return &domain.Customer{
		ID:                  1,
		Name:                "ACME GmbH",
		ContactInfo:         "billing@acme.example",
		CreditLimit:         decimal.RequireFromString("10000"),
		OutstandingPayments: decimal.RequireFromString("250.5"),
	}
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Customers", func(t *testing.T) {
		service.EXPECT().List(gomock.Any()).Return([]domain.Customer{*acme()}, nil)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/api/customers", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.CustomerResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Len(t, body, 1)
		assert.Equal(t, "ACME GmbH", body[0].Name)
		assert.True(t, decimal.RequireFromString("250.5").Equal(body[0].OutstandingPayments))
	})

	t.Run("Internal server error", func(t *testing.T) {
		service.EXPECT().List(gomock.Any()).Return(nil, errors.New("db is down"))

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/api/customers", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Found",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 1).Return(acme(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not found",
			id:   "2",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 2).Return(nil, fmt.Errorf("%w: customer 2", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid id",
			id:           "two",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.Get(w, withID(httptest.NewRequest(http.MethodGet, "/", nil), tt.id))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestCreateUpdateHandler(t *testing.T) {
	handler, service := NewMock(t)
	body := `{"name":"ACME GmbH","contactInfo":"billing@acme.example","creditLimit":"10000","outstandingPayments":"250.5"}`

	tests := []struct {
		name         string
		body         string
		update       bool
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Created",
			body: body,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
						assert.Equal(t, "ACME GmbH", c.Name)
						assert.True(t, decimal.RequireFromString("10000").Equal(c.CreditLimit))
						return acme(), nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Negative credit limit",
			body: `{"name":"ACME GmbH","creditLimit":"-1"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: credit limit can't be negative", domain.ErrValidation))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing name",
			body:         `{"contactInfo":"x"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Updated",
			body:   body,
			update: true,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), 1, gomock.Any()).Return(acme(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Update of missing customer",
			body:   body,
			update: true,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), 1, gomock.Any()).Return(nil, fmt.Errorf("%w: customer 1", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid request body",
			body:         `{"name":`,
			update:       true,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			if tt.update {
				handler.Update(w, withID(httptest.NewRequest(http.MethodPut, "/", bytes.NewBufferString(tt.body)), "1"))
			} else {
				handler.Create(w, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body)))
			}

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestDeleteHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Delete(gomock.Any(), 1).Return(nil)
	service.EXPECT().Delete(gomock.Any(), 2).Return(fmt.Errorf("%w: customer 2", domain.ErrNotFound))

	w := httptest.NewRecorder()
	handler.Delete(w, withID(httptest.NewRequest(http.MethodDelete, "/", nil), "1"))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	handler.Delete(w, withID(httptest.NewRequest(http.MethodDelete, "/", nil), "2"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
