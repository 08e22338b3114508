package users

import (
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
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*UserHandler, *MockService) {
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

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Users listed",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any()).Return([]domain.User{
					{ID: 1, Username: "alice", Role: domain.RoleEmployee},
					{ID: 2, Username: "acc", Role: domain.RoleAccountant, Active: true},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "No users",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any()).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any()).Return(nil, errors.New("db is down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/users/allusers", nil)
			w := httptest.NewRecorder()

			handler.List(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.UserResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestActivateDeactivateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		call         func(w http.ResponseWriter, r *http.Request)
		prepareMock  func()
		expectedCode int
		expectActive bool
	}{
		{
			name: "Activate",
			id:   "3",
			call: handler.Activate,
			prepareMock: func() {
				service.EXPECT().Activate(gomock.Any(), 3).Return(&domain.User{ID: 3, Active: true}, nil)
			},
			expectedCode: http.StatusOK,
			expectActive: true,
		},
		{
			name: "Deactivate",
			id:   "3",
			call: handler.Deactivate,
			prepareMock: func() {
				service.EXPECT().Deactivate(gomock.Any(), 3).Return(&domain.User{ID: 3}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown user",
			id:   "99",
			call: handler.Activate,
			prepareMock: func() {
				service.EXPECT().Activate(gomock.Any(), 99).Return(nil, fmt.Errorf("%w: user 99", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid id",
			id:           "abc",
			call:         handler.Deactivate,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withID(httptest.NewRequest(http.MethodPut, "/", nil), tt.id)
			w := httptest.NewRecorder()

			tt.call(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.UserResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectActive, body.Active)
			}
		})
	}
}

func TestDeleteHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Deleted",
			id:   "4",
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), 4).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Still referenced",
			id:   "4",
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), 4).Return(fmt.Errorf("%w: user 4 has 2 expenses or comments", domain.ErrConflict))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Invalid id",
			id:           "0",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withID(httptest.NewRequest(http.MethodDelete, "/", nil), tt.id)
			w := httptest.NewRecorder()

			handler.Delete(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
