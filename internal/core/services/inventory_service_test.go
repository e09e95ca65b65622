package services_test

import (
	"context"
	"testing"

	"github.com/bukupintar/bukupintar_app/internal/apperrors"
	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	portssvc "github.com/bukupintar/bukupintar_app/internal/core/ports/services"
	"github.com/bukupintar/bukupintar_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListWarehouses(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- Test Suite ---
type InventoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProductRepository
	service  portssvc.InventorySvcFacade
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProductRepository)
	suite.service = services.NewInventoryService(suite.mockRepo)
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ProductID: "P001",
			Name:      "Kopi Arabica Gayo 1kg",
			MinStock:  50,
			Stocks:    map[string]int64{"Gudang Utama": 100, "Gudang Cabang": 50, "Toko": 45},
		},
		{
			ProductID: "P002",
			Name:      "Gula Aren Organik 500g",
			MinStock:  50,
			Stocks:    map[string]int64{"Gudang Utama": 20, "Gudang Cabang": 10, "Toko": 15},
		},
	}
}

// --- Test Cases ---

func (suite *InventoryServiceTestSuite) TestGetProductByID_Success() {
	ctx := context.Background()
	product := seedProducts()[0]
	suite.mockRepo.On("FindProductByID", ctx, "P001").Return(&product, nil).Once()

	got, err := suite.service.GetProductByID(ctx, "P001")

	suite.Require().NoError(err)
	suite.Equal("Kopi Arabica Gayo 1kg", got.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestGetProductByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindProductByID", ctx, "P404").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetProductByID(ctx, "P404")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestListLowStockProducts() {
	ctx := context.Background()
	suite.mockRepo.On("ListProducts", ctx).Return(seedProducts(), nil).Once()

	got, err := suite.service.ListLowStockProducts(ctx)

	suite.Require().NoError(err)
	// P001 totals 195 against a minimum of 50; only P002 (45) is low
	suite.Require().Len(got, 1)
	suite.Equal("P002", got[0].ProductID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestListWarehouseStocks() {
	ctx := context.Background()
	suite.mockRepo.On("ListWarehouses", ctx).Return([]string{"Gudang Utama", "Gudang Cabang", "Toko"}, nil).Once()
	suite.mockRepo.On("ListProducts", ctx).Return(seedProducts(), nil).Once()

	got, err := suite.service.ListWarehouseStocks(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(got, 3)
	suite.Equal("Gudang Utama", got[0].Warehouse)
	suite.Equal(int64(120), got[0].TotalStock)
	suite.Equal(int64(60), got[1].TotalStock)
	suite.Equal(int64(60), got[2].TotalStock)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
