package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nanduks/driver_logistics_app/internal/apperrors"
	"github.com/nanduks/driver_logistics_app/internal/core/domain"
	portssvc "github.com/nanduks/driver_logistics_app/internal/core/ports/services"
	"github.com/nanduks/driver_logistics_app/internal/core/services"
	"github.com/nanduks/driver_logistics_app/internal/dto"
)

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateAssignedOrder(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *MockOrderRepository) FindOrdersByDriver(ctx context.Context, driverID string, limit int, offset int) ([]domain.Order, error) {
	args := m.Called(ctx, driverID, limit, offset)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *MockOrderRepository) FindCurrentOrderForDriver(ctx context.Context, driverID string) (*domain.Order, error) {
	args := m.Called(ctx, driverID)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *MockOrderRepository) SaveStatusChange(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// --- Test Suite ---
type OrderServiceTestSuite struct {
	suite.Suite
	mockOrderRepo *MockOrderRepository
	mockUserRepo  *MockUserRepository
	service       portssvc.OrderSvcFacade

	admin  *domain.User
	driver *domain.User
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewOrderService(suite.mockOrderRepo, suite.mockUserRepo)

	suite.admin = &domain.User{UserID: uuid.NewString(), Name: "Dispatch Admin", Role: domain.RoleAdmin}
	suite.driver = &domain.User{
		UserID:       uuid.NewString(),
		Name:         "Driver One",
		Role:         domain.RoleDriver,
		Availability: domain.AvailabilityAvailable,
	}
}

func (suite *OrderServiceTestSuite) assignRequest() dto.AssignOrderRequest {
	return dto.AssignOrderRequest{
		DriverID:         suite.driver.UserID,
		PickupLocation:   "Kochi Port",
		DeliveryLocation: "Bengaluru Depot",
		GoodsType:        "electronics",
		Fare:             decimal.NewFromInt(12500),
		DistanceKm:       decimal.NewFromInt(550),
	}
}

func (suite *OrderServiceTestSuite) TestAssignOrder_Success() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByID", ctx, suite.admin.UserID).Return(suite.admin, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.driver.UserID).Return(suite.driver, nil).Once()
	suite.mockOrderRepo.On("CreateAssignedOrder", ctx, mock.MatchedBy(func(order domain.Order) bool {
		return order.DriverID == suite.driver.UserID &&
			order.AssignedByAdmin == suite.admin.UserID &&
			order.DriverName == "Driver One" &&
			order.Status == domain.OrderAssigned
	})).Return(nil).Once()

	order, err := suite.service.AssignOrder(ctx, suite.admin.UserID, suite.assignRequest())

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.NotEmpty(order.OrderID)
	suite.True(order.Fare.Equal(decimal.NewFromInt(12500)))
	suite.mockOrderRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestAssignOrder_NonAdminForbidden() {
	ctx := context.Background()
	notAdmin := &domain.User{UserID: uuid.NewString(), Role: domain.RoleDriver}

	suite.mockUserRepo.On("FindUserByID", ctx, notAdmin.UserID).Return(notAdmin, nil).Once()

	order, err := suite.service.AssignOrder(ctx, notAdmin.UserID, suite.assignRequest())

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "CreateAssignedOrder")
}

func (suite *OrderServiceTestSuite) TestAssignOrder_DriverAlreadyOnTrip() {
	ctx := context.Background()
	suite.driver.Availability = domain.AvailabilityOnTrip

	suite.mockUserRepo.On("FindUserByID", ctx, suite.admin.UserID).Return(suite.admin, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, suite.driver.UserID).Return(suite.driver, nil).Once()

	order, err := suite.service.AssignOrder(ctx, suite.admin.UserID, suite.assignRequest())

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "CreateAssignedOrder")
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_Delivered() {
	ctx := context.Background()
	order := &domain.Order{
		OrderID:  uuid.NewString(),
		DriverID: suite.driver.UserID,
		Status:   domain.OrderAssigned,
	}

	suite.mockOrderRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()
	suite.mockOrderRepo.On("SaveStatusChange", ctx, mock.MatchedBy(func(o domain.Order) bool {
		return o.Status == domain.OrderDelivered && o.OrderID == order.OrderID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateOrderStatus(ctx, suite.driver.UserID, order.OrderID, domain.OrderDelivered)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderDelivered, updated.Status)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_OtherDriversOrder() {
	ctx := context.Background()
	order := &domain.Order{OrderID: uuid.NewString(), DriverID: uuid.NewString(), Status: domain.OrderAssigned}

	suite.mockOrderRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()

	updated, err := suite.service.UpdateOrderStatus(ctx, suite.driver.UserID, order.OrderID, domain.OrderDelivered)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "SaveStatusChange")
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_IllegalTransition() {
	ctx := context.Background()
	order := &domain.Order{OrderID: uuid.NewString(), DriverID: suite.driver.UserID, Status: domain.OrderDelivered}

	suite.mockOrderRepo.On("FindOrderByID", ctx, order.OrderID).Return(order, nil).Once()

	updated, err := suite.service.UpdateOrderStatus(ctx, suite.driver.UserID, order.OrderID, domain.OrderCancelled)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "SaveStatusChange")
}

func (suite *OrderServiceTestSuite) TestListOrdersForDriver() {
	ctx := context.Background()
	orders := []domain.Order{
		{OrderID: uuid.NewString(), DriverID: suite.driver.UserID},
		{OrderID: uuid.NewString(), DriverID: suite.driver.UserID},
	}

	suite.mockOrderRepo.On("FindOrdersByDriver", ctx, suite.driver.UserID, 20, 0).Return(orders, nil).Once()

	got, err := suite.service.ListOrdersForDriver(ctx, suite.driver.UserID, 20, 0)

	suite.Require().NoError(err)
	suite.Len(got, 2)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
