package inventoryservice

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

func TestCreate(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		item          *domain.Inventory
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Item created",
			item: &domain.Inventory{ProductName: "Paper", StockQuantity: 10, ReorderLevel: 2, PricePerUnit: decimal.NewFromInt(3)},
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, item *domain.Inventory) (*domain.Inventory, error) {
					item.ID = 1
					return item, nil
				})
			},
		},
		{
			name:          "Negative stock",
			item:          &domain.Inventory{ProductName: "Paper", StockQuantity: -1},
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Negative price",
			item:          &domain.Inventory{ProductName: "Paper", PricePerUnit: decimal.NewFromInt(-3)},
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name: "Database error",
			item: &domain.Inventory{ProductName: "Paper"},
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			item, err := service.Create(context.Background(), tt.item)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, item)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, item.ID)
		})
	}
}

func TestGetUpdateDelete(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().FindByID(gomock.Any(), 9).Return(nil, nil)
	_, err := service.Get(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, item *domain.Inventory) (*domain.Inventory, error) {
		return item, nil
	})
	item, err := service.Update(context.Background(), 1, &domain.Inventory{ProductName: "Paper", StockQuantity: 1, ReorderLevel: 5})
	assert.NoError(t, err)
	assert.Equal(t, 1, item.ID)

	repo.EXPECT().Delete(gomock.Any(), 1).Return(false, nil)
	assert.ErrorIs(t, service.Delete(context.Background(), 1), domain.ErrNotFound)

	repo.EXPECT().FindAll(gomock.Any()).Return([]domain.Inventory{}, nil)
	items, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, items)
}
