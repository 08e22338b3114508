package expenses

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GlebRadaev/erpfinance/internal/domain"
	"github.com/GlebRadaev/erpfinance/internal/dto"
	"github.com/GlebRadaev/erpfinance/internal/service/expenseservice"
	"github.com/GlebRadaev/erpfinance/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const maxUpload = 1 << 20

func NewMock(t *testing.T) (*ExpenseHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, maxUpload)
	defer ctrl.Finish()
	return handler, service
}

func asUser(r *http.Request, userID int, id string) *http.Request {
	ctx := context.WithValue(r.Context(), auth.UserIDKey, userID)
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

type form struct {
	fields  map[string]string
	file    string
	content []byte
}

func (f form) encode(t *testing.T) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range f.fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if f.file != "" {
		part, err := mw.CreateFormFile("receipt", f.file)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func validFields() map[string]string {
	return map[string]string{
		"title":       "Hotel",
		"description": "Berlin",
		"amount":      "300.50",
		"expenseDate": "2024-05-01",
		"categoryId":  "2",
	}
}

func TestSubmitHandler(t *testing.T) {
	handler, service := NewMock(t)
	created := &domain.Expense{
		ID: 5, Title: "Hotel", Description: "Berlin", Amount: decimal.RequireFromString("300.50"),
		ExpenseDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Status: domain.ExpenseStatusPending,
		Category:    &domain.ExpenseCategory{ID: 2, Name: "Travel"},
		SubmittedBy: &domain.User{ID: 1, Username: "alice"},
	}

	with := func(key, value string) map[string]string {
		f := validFields()
		f[key] = value
		return f
	}

	tests := []struct {
		name          string
		form          form
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Submitted with receipt",
			form: form{fields: validFields(), file: "hotel.pdf", content: []byte("%PDF-1.4")},
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in expenseservice.SubmitInput) (*domain.Expense, error) {
						assert.Equal(t, "Hotel", in.Title)
						assert.Equal(t, 1, in.SubmitterID)
						assert.Equal(t, 2, in.CategoryID)
						assert.True(t, decimal.RequireFromString("300.50").Equal(in.Amount))
						assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), in.ExpenseDate)
						require.NotNil(t, in.Receipt)
						assert.Equal(t, "hotel.pdf", in.Receipt.FileName)
						content, err := io.ReadAll(in.Receipt.Content)
						assert.NoError(t, err)
						assert.Equal(t, "%PDF-1.4", string(content))
						return created, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Submitted without receipt",
			form: form{fields: validFields()},
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in expenseservice.SubmitInput) (*domain.Expense, error) {
						assert.Nil(t, in.Receipt)
						return created, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid amount",
			form:          form{fields: with("amount", "lots")},
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid amount",
		},
		{
			name:          "Invalid date",
			form:          form{fields: with("expenseDate", "01.05.2024")},
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid expense date",
		},
		{
			name:          "Invalid category",
			form:          form{fields: with("categoryId", "travel")},
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid category id",
		},
		{
			name:          "Receipt too large",
			form:          form{fields: validFields(), file: "scan.png", content: bytes.Repeat([]byte("x"), maxUpload+1)},
			prepareMock:   func() {},
			expectedCode:  http.StatusRequestEntityTooLarge,
			expectedError: "Request is too large",
		},
		{
			name: "Category not found",
			form: form{fields: validFields()},
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: category 2", domain.ErrNotFound))
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "category 2",
		},
		{
			name: "Storage failure",
			form: form{fields: validFields(), file: "hotel.pdf", content: []byte("x")},
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: disk full", domain.ErrStorage))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			body, contentType := tt.form.encode(t)
			r := asUser(httptest.NewRequest(http.MethodPost, "/api/expenses/submit", body), 1, "")
			r.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()

			handler.Submit(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var resp dto.ExpenseResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, 5, resp.ID)
				assert.Equal(t, "PENDING", resp.Status)
				assert.Equal(t, &dto.CategoryDTO{ID: 2, Name: "Travel"}, resp.Category)
			}
		})
	}
}

func TestSubmitHandlerNotMultipart(t *testing.T) {
	handler, _ := NewMock(t)

	r := asUser(httptest.NewRequest(http.MethodPost, "/api/expenses/submit", strings.NewReader(`{"title":"x"}`)), 1, "")
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Submit(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid multipart form")
}

func TestListPendingHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Pending expenses",
			prepareMock: func() {
				service.EXPECT().ListPending(gomock.Any()).Return([]domain.Expense{
					{ID: 1, Title: "Taxi", Amount: decimal.RequireFromString("12"), Status: domain.ExpenseStatusPending},
					{ID: 2, Title: "Lunch", Amount: decimal.RequireFromString("8.5"), Status: domain.ExpenseStatusPending},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"title":"Lunch"`,
		},
		{
			name: "Nothing pending",
			prepareMock: func() {
				service.EXPECT().ListPending(gomock.Any()).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "[]",
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().ListPending(gomock.Any()).Return(nil, errors.New("db is down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := asUser(httptest.NewRequest(http.MethodGet, "/api/expenses/pending", nil), 9, "")
			w := httptest.NewRecorder()

			handler.ListPending(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
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
			id:   "5",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 5).Return(&domain.Expense{ID: 5, Status: domain.ExpenseStatusPending}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not found",
			id:   "6",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 6).Return(nil, fmt.Errorf("%w: expense 6", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid id",
			id:           "x",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := asUser(httptest.NewRequest(http.MethodGet, "/", nil), 1, tt.id)
			w := httptest.NewRecorder()

			handler.Get(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestApproveHandler(t *testing.T) {
	handler, service := NewMock(t)
	approvedAt := time.Date(2024, 5, 3, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Approved by caller",
			id:   "5",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), 5, 9).Return(&domain.Expense{
					ID: 5, Status: domain.ExpenseStatusApproved, ApprovedAt: &approvedAt,
					ApprovedBy: &domain.User{ID: 9, Username: "acc"},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Already reviewed",
			id:   "5",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), 5, 9).Return(nil, fmt.Errorf("%w: expense 5 is already DENIED", domain.ErrConflict))
			},
			expectedCode:  http.StatusConflict,
			expectedError: "already DENIED",
		},
		{
			name: "Caller is not a reviewer",
			id:   "5",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), 5, 9).Return(nil, fmt.Errorf("%w: user 9 can't review expenses", domain.ErrForbidden))
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := asUser(httptest.NewRequest(http.MethodPut, "/", nil), 9, tt.id)
			w := httptest.NewRecorder()

			handler.Approve(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var resp dto.ExpenseDetailsResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "APPROVED", resp.Status)
				assert.Equal(t, &dto.UserRefDTO{ID: 9, Username: "acc"}, resp.ApprovedBy)
				assert.Nil(t, resp.DenialReason)
			}
		})
	}
}

func TestDenyHandler(t *testing.T) {
	handler, service := NewMock(t)
	reason := "Receipt is not readable"

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Denied",
			body: `{"denialReason":"Receipt is not readable"}`,
			prepareMock: func() {
				service.EXPECT().Deny(gomock.Any(), 5, 9, reason).Return(&domain.Expense{
					ID: 5, Status: domain.ExpenseStatusDenied, DenialReason: &reason,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Missing reason",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "DenialReason: required",
		},
		{
			name: "Blank reason",
			body: `{"denialReason":"   "}`,
			prepareMock: func() {
				service.EXPECT().Deny(gomock.Any(), 5, 9, "   ").Return(nil, fmt.Errorf("%w: denial reason is required", domain.ErrValidation))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "denial reason is required",
		},
		{
			name:          "Invalid request body",
			body:          `{"denialReason":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := asUser(httptest.NewRequest(http.MethodPut, "/", strings.NewReader(tt.body)), 9, "5")
			w := httptest.NewRecorder()

			handler.Deny(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"denialReason":"Receipt is not readable"`)
			}
		})
	}
}

func TestCommentsHandler(t *testing.T) {
	handler, service := NewMock(t)
	at := time.Date(2024, 5, 2, 11, 0, 0, 0, time.UTC)

	t.Run("Add comment", func(t *testing.T) {
		service.EXPECT().AddComment(gomock.Any(), 5, 1, "Please attach the invoice").Return(&domain.ExpenseComment{
			ID: 7, ExpenseID: 5, Text: "Please attach the invoice", CommentedAt: at,
			Author: &domain.User{ID: 1, Username: "alice"},
		}, nil)

		r := asUser(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"commentText":"Please attach the invoice"}`)), 1, "5")
		w := httptest.NewRecorder()
		handler.AddComment(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp dto.CommentResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, dto.CommentResponseDTO{
			ID: 7, CommentText: "Please attach the invoice", CommentedAt: at,
			Author: &dto.UserRefDTO{ID: 1, Username: "alice"},
		}, resp)
	})

	t.Run("Empty comment", func(t *testing.T) {
		r := asUser(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"commentText":""}`)), 1, "5")
		w := httptest.NewRecorder()
		handler.AddComment(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Comment on missing expense", func(t *testing.T) {
		service.EXPECT().AddComment(gomock.Any(), 8, 1, "hi").Return(nil, fmt.Errorf("%w: expense 8", domain.ErrNotFound))

		r := asUser(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"commentText":"hi"}`)), 1, "8")
		w := httptest.NewRecorder()
		handler.AddComment(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("List comments", func(t *testing.T) {
		service.EXPECT().ListComments(gomock.Any(), 5).Return([]domain.ExpenseComment{
			{ID: 7, Text: "first", CommentedAt: at},
			{ID: 8, Text: "second", CommentedAt: at.Add(time.Minute)},
		}, nil)

		r := asUser(httptest.NewRequest(http.MethodGet, "/", nil), 1, "5")
		w := httptest.NewRecorder()
		handler.ListComments(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp []dto.CommentResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "first", resp[0].CommentText)
	})
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
			id:   "5",
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), 5).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Not found",
			id:   "5",
			prepareMock: func() {
				service.EXPECT().Delete(gomock.Any(), 5).Return(fmt.Errorf("%w: expense 5", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := asUser(httptest.NewRequest(http.MethodDelete, "/", nil), 1, tt.id)
			w := httptest.NewRecorder()

			handler.Delete(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
