package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/erpfinance/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRespond(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Not found",
			err:          fmt.Errorf("%w: expense 5", domain.ErrNotFound),
			expectedCode: http.StatusNotFound,
			expectedBody: "not found: expense 5",
		},
		{
			name:         "Validation",
			err:          fmt.Errorf("%w: denial reason is required", domain.ErrValidation),
			expectedCode: http.StatusBadRequest,
			expectedBody: "denial reason is required",
		},
		{
			name:         "Conflict",
			err:          fmt.Errorf("%w: expense 5 is already APPROVED", domain.ErrConflict),
			expectedCode: http.StatusConflict,
			expectedBody: "already APPROVED",
		},
		{
			name:         "Forbidden",
			err:          fmt.Errorf("%w: user 1 can't review expenses", domain.ErrForbidden),
			expectedCode: http.StatusForbidden,
			expectedBody: "can't review",
		},
		{
			name:         "Storage failure is hidden",
			err:          fmt.Errorf("%w: disk full", domain.ErrStorage),
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Internal server error",
		},
		{
			name:         "Unknown error",
			err:          errors.New("connection reset"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Respond(w, tt.err)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.NotContains(t, w.Body.String(), "disk full")
		})
	}
}
