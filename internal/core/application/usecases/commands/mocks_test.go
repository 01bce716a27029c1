package commands_test

import (
	"context"

	"myfood/internal/core/application/usecases/commands"
	"myfood/internal/core/domain/model/delivery"
	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/order"
	"myfood/internal/core/domain/model/registry"
	"myfood/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextNumber(ctx context.Context) (kernel.OrderNumber, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.OrderNumber), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	args := m.Called(ctx, number)
	if aggregate := args.Get(0); aggregate != nil {
		return aggregate.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetOpen(
	ctx context.Context,
	customerID kernel.UserID,
	companyID kernel.CompanyID,
) (*order.Order, error) {
	args := m.Called(ctx, customerID, companyID)
	if aggregate := args.Get(0); aggregate != nil {
		return aggregate.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAllReady(
	ctx context.Context,
	companyIDs []kernel.CompanyID,
) ([]*order.Order, error) {
	args := m.Called(ctx, companyIDs)
	if aggregates := args.Get(0); aggregates != nil {
		return aggregates.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) NextID(ctx context.Context) (kernel.DeliveryID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.DeliveryID), args.Error(1)
}

func (m *MockDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.DeliveryID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if aggregate := args.Get(0); aggregate != nil {
		return aggregate.(*delivery.Delivery), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDeliveryRepository) GetByOrder(
	ctx context.Context,
	number kernel.OrderNumber,
) (*delivery.Delivery, error) {
	args := m.Called(ctx, number)
	if aggregate := args.Get(0); aggregate != nil {
		return aggregate.(*delivery.Delivery), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRegistry struct{ mock.Mock }

func (m *MockRegistry) GetUser(ctx context.Context, id kernel.UserID) (registry.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(registry.User), args.Error(1)
}

func (m *MockRegistry) GetCompany(ctx context.Context, id kernel.CompanyID) (registry.Company, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(registry.Company), args.Error(1)
}

func (m *MockRegistry) GetProduct(ctx context.Context, id kernel.ProductID) (registry.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(registry.Product), args.Error(1)
}

func (m *MockRegistry) CourierCompanies(ctx context.Context, courierID kernel.UserID) ([]kernel.CompanyID, error) {
	args := m.Called(ctx, courierID)
	if ids := args.Get(0); ids != nil {
		return ids.([]kernel.CompanyID), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRegistry) Couriers(ctx context.Context) ([]registry.User, error) {
	args := m.Called(ctx)
	if couriers := args.Get(0); couriers != nil {
		return couriers.([]registry.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
