package background

import (
	"context"
	"testing"

	"stockit/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLocationHistoryService struct {
	mock.Mock
}

func (m *MockLocationHistoryService) Append(ctx context.Context, productID uuid.UUID, fromLocation *string, toLocation string) error {
	args := m.Called(ctx, productID, fromLocation, toLocation)
	return args.Error(0)
}

func (m *MockLocationHistoryService) History(ctx context.Context, productID uuid.UUID) ([]*models.LocationHistory, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]*models.LocationHistory), args.Error(1)
}

func (m *MockLocationHistoryService) Backfill(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) List(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *MockInventoryService) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockInventoryService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockInventoryService) Update(ctx context.Context, id uuid.UUID, upd *models.ProductUpdate) (*models.Product, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockInventoryService) LookupByBarcode(ctx context.Context, barcode string) (*models.Product, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockInventoryService) Move(ctx context.Context, id uuid.UUID, toLocation string) (*models.Product, error) {
	args := m.Called(ctx, id, toLocation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockInventoryService) ListLowStock(ctx context.Context, threshold int) ([]*models.Product, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).([]*models.Product), args.Error(1)
}

func TestBackfillJob_RunsBackfill(t *testing.T) {
	historySvc := &MockLocationHistoryService{}
	inventorySvc := &MockInventoryService{}
	historySvc.On("Backfill", mock.Anything).Return(int64(2), nil)

	js, err := NewJobScheduler(historySvc, inventorySvc, 5)
	require.NoError(t, err)
	defer js.Stop()

	js.backfillLocationHistory()

	historySvc.AssertExpectations(t)
}

func TestLowStockScan_QueriesThreshold(t *testing.T) {
	historySvc := &MockLocationHistoryService{}
	inventorySvc := &MockInventoryService{}
	inventorySvc.On("ListLowStock", mock.Anything, 5).Return([]*models.Product{
		{ID: uuid.New(), Name: "Toner A", Stoc: 1, CurrentLocation: "warehouse"},
	}, nil)

	js, err := NewJobScheduler(historySvc, inventorySvc, 5)
	require.NoError(t, err)
	defer js.Stop()

	js.scanLowStock()

	inventorySvc.AssertExpectations(t)
}
