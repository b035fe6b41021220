package services

import (
	"context"
	"testing"

	"stockit/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InventoryServiceTestSuite struct {
	suite.Suite
	productRepo *MockProductRepository
	cache       *MockCacheService
	service     InventoryService
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.productRepo = &MockProductRepository{}
	suite.cache = &MockCacheService{}
	suite.service = NewInventoryService(suite.productRepo, suite.cache)
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}

func (suite *InventoryServiceTestSuite) TestCreate_DefaultsLocationAndWritesInitialHistory() {
	product := &models.Product{Name: "Toner A", Cat: "toner", Stoc: 5}

	var captured *models.LocationHistory
	suite.productRepo.On("Create", mock.Anything, product, mock.AnythingOfType("*models.LocationHistory")).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(*models.LocationHistory)
		}).
		Return(nil)

	err := suite.service.Create(context.Background(), product)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, product.ID)
	suite.Equal(models.DefaultLocation, product.CurrentLocation)
	suite.Require().NotNil(captured)
	suite.Nil(captured.FromLocation)
	suite.Equal(models.DefaultLocation, captured.ToLocation)
	suite.Equal(product.ID, captured.ProductID)
	suite.productRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestCreate_KeepsExplicitLocation() {
	product := &models.Product{Name: "Drill", Cat: "tools", Stoc: 2, CurrentLocation: "site-A"}

	suite.productRepo.On("Create", mock.Anything, product, mock.MatchedBy(func(h *models.LocationHistory) bool {
		return h.FromLocation == nil && h.ToLocation == "site-A"
	})).Return(nil)

	suite.NoError(suite.service.Create(context.Background(), product))
	suite.Equal("site-A", product.CurrentLocation)
	suite.productRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestMove_RecordsPreMoveLocation() {
	id := uuid.New()
	product := &models.Product{ID: id, Name: "Drill", Cat: "tools", CurrentLocation: "warehouse"}

	suite.productRepo.On("GetByID", mock.Anything, id).Return(product, nil)
	suite.productRepo.On("Move", mock.Anything, product, mock.MatchedBy(func(h *models.LocationHistory) bool {
		return h.FromLocation != nil && *h.FromLocation == "warehouse" && h.ToLocation == "site-A" && h.ProductID == id
	})).Return(nil)
	suite.cache.On("DeleteProduct", mock.Anything, id).Return(nil)

	moved, err := suite.service.Move(context.Background(), id, "site-A")

	suite.NoError(err)
	suite.Equal("site-A", moved.CurrentLocation)
	suite.productRepo.AssertExpectations(suite.T())
	suite.cache.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestMove_ProductNotFound() {
	id := uuid.New()
	suite.productRepo.On("GetByID", mock.Anything, id).Return(nil, ErrNotFound)

	_, err := suite.service.Move(context.Background(), id, "site-A")

	suite.ErrorIs(err, ErrNotFound)
	suite.productRepo.AssertNotCalled(suite.T(), "Move")
}

func (suite *InventoryServiceTestSuite) TestUpdate_AppliesOnlyProvidedFields() {
	id := uuid.New()
	product := &models.Product{ID: id, Name: "Toner A", Cat: "toner", Stoc: 5, CurrentLocation: "warehouse"}
	newStoc := 12

	suite.productRepo.On("GetByID", mock.Anything, id).Return(product, nil)
	suite.productRepo.On("Update", mock.Anything, product).Return(nil)
	suite.cache.On("DeleteProduct", mock.Anything, id).Return(nil)

	updated, err := suite.service.Update(context.Background(), id, &models.ProductUpdate{Stoc: &newStoc})

	suite.NoError(err)
	suite.Equal(12, updated.Stoc)
	suite.Equal("Toner A", updated.Name)
	suite.Equal("toner", updated.Cat)
	suite.productRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestLookupByBarcode_CacheMissFallsThrough() {
	barcode := "X123"
	product := &models.Product{ID: uuid.New(), Name: "Toner A", Barcode: &barcode}

	suite.cache.On("GetProductByBarcode", mock.Anything, barcode).Return(nil, nil)
	suite.productRepo.On("GetByBarcode", mock.Anything, barcode).Return(product, nil)
	suite.cache.On("SetProductByBarcode", mock.Anything, product, productCacheTTL).Return(nil)

	found, err := suite.service.LookupByBarcode(context.Background(), barcode)

	suite.NoError(err)
	suite.Equal(product, found)
	suite.cache.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestLookupByBarcode_NoMatch() {
	suite.cache.On("GetProductByBarcode", mock.Anything, "X123").Return(nil, nil)
	suite.productRepo.On("GetByBarcode", mock.Anything, "X123").Return(nil, ErrNotFound)

	_, err := suite.service.LookupByBarcode(context.Background(), "X123")

	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *InventoryServiceTestSuite) TestGetByID_CacheHitSkipsRepo() {
	id := uuid.New()
	product := &models.Product{ID: id, Name: "Toner A"}

	suite.cache.On("GetProduct", mock.Anything, id).Return(product, nil)

	found, err := suite.service.GetByID(context.Background(), id)

	suite.NoError(err)
	suite.Equal(product, found)
	suite.productRepo.AssertNotCalled(suite.T(), "GetByID")
}
