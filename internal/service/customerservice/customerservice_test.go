package customerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/erpfinance/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestGet(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Customer found",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Customer{ID: 1, Name: "Acme"}, nil)
			},
		},
		{
			name: "Customer not found",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name: "Database error",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			customer, err := service.Get(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, customer)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "Acme", customer.Name)
		})
	}
}

func TestCreate(t *testing.T) {
	service, repo := NewMock(t)

	_, err := service.Create(context.Background(), &domain.Customer{Name: "Acme", CreditLimit: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
		c.ID = 3
		return c, nil
	})
	customer, err := service.Create(context.Background(), &domain.Customer{Name: "Acme", CreditLimit: decimal.NewFromInt(1000)})
	assert.NoError(t, err)
	assert.Equal(t, 3, customer.ID)
}

func TestUpdate(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
		assert.Equal(t, 4, c.ID)
		return c, nil
	})
	customer, err := service.Update(context.Background(), 4, &domain.Customer{Name: "Globex"})
	assert.NoError(t, err)
	assert.Equal(t, "Globex", customer.Name)

	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, nil)
	_, err = service.Update(context.Background(), 5, &domain.Customer{Name: "Nobody"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListDelete(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().FindAll(gomock.Any()).Return([]domain.Customer{{ID: 1}}, nil)
	customers, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, customers, 1)

	repo.EXPECT().Delete(gomock.Any(), 1).Return(true, nil)
	assert.NoError(t, service.Delete(context.Background(), 1))

	repo.EXPECT().Delete(gomock.Any(), 2).Return(false, nil)
	assert.ErrorIs(t, service.Delete(context.Background(), 2), domain.ErrNotFound)
}
