package categories

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/erpfinance/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*CategoryHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Categories",
			prepareMock: func() {
				service.EXPECT().ListCategories(gomock.Any()).Return([]domain.ExpenseCategory{{ID: 1, Name: "Meals"}, {ID: 2, Name: "Travel"}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":1,"name":"Meals"},{"id":2,"name":"Travel"}]`,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().ListCategories(gomock.Any()).Return(nil, errors.New("db is down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/expense-categories", nil)
			w := httptest.NewRecorder()

			handler.List(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Created",
			body: `{"name":"Conferences"}`,
			prepareMock: func() {
				service.EXPECT().CreateCategory(gomock.Any(), "Conferences").Return(&domain.ExpenseCategory{ID: 7, Name: "Conferences"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Duplicate",
			body: `{"name":"Travel"}`,
			prepareMock: func() {
				service.EXPECT().CreateCategory(gomock.Any(), "Travel").Return(nil, fmt.Errorf("%w: category Travel already exists", domain.ErrConflict))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Missing name",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid request body",
			body:         `[`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/expense-categories", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Create(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
