package inventories

import (
	"bytes"
	"context"
	"encoding/json"
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

func NewMock(t *testing.T) (*InventoryHandler, *MockService) {
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

func paper() *domain.Inventory {
	return &domain.Inventory{
		ID:            3,
		ProductName:   "A4 paper",
		Category:      "Office",
		StockQuantity: 120,
		ReorderLevel:  20,
		PricePerUnit:  decimal.RequireFromString("4.99"),
	}
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().List(gomock.Any()).Return([]domain.Inventory{*paper()}, nil)

	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest(http.MethodGet, "/api/inventories", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.InventoryResponseDTO
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Len(t, body, 1)
	assert.Equal(t, 120, body[0].StockQuantity)
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
			id:   "3",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 3).Return(paper(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not found",
			id:   "4",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 4).Return(nil, fmt.Errorf("%w: inventory item 4", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
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
	body := `{"productName":"A4 paper","category":"Office","stockQuantity":120,"reorderLevel":20,"pricePerUnit":"4.99"}`

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
					DoAndReturn(func(_ context.Context, item *domain.Inventory) (*domain.Inventory, error) {
						assert.Equal(t, "A4 paper", item.ProductName)
						assert.Equal(t, 20, item.ReorderLevel)
						return paper(), nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Negative stock",
			body:         `{"productName":"A4 paper","stockQuantity":-1}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Updated",
			body:   body,
			update: true,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), 3, gomock.Any()).Return(paper(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Update of missing item",
			body:   body,
			update: true,
			prepareMock: func() {
				service.EXPECT().Update(gomock.Any(), 3, gomock.Any()).Return(nil, fmt.Errorf("%w: inventory item 3", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			if tt.update {
				handler.Update(w, withID(httptest.NewRequest(http.MethodPut, "/", bytes.NewBufferString(tt.body)), "3"))
			} else {
				handler.Create(w, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body)))
			}

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestDeleteHandler(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().Delete(gomock.Any(), 3).Return(nil)

	w := httptest.NewRecorder()
	handler.Delete(w, withID(httptest.NewRequest(http.MethodDelete, "/", nil), "3"))

	assert.Equal(t, http.StatusNoContent, w.Code)
}
