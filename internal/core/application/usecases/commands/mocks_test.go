package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/client"
	"pedidos/internal/core/domain/model/driver"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/loan"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/product"
	"pedidos/internal/core/domain/model/zone"
	"pedidos/internal/core/ports"
)

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Get(ctx context.Context, phone kernel.Phone) (*client.Client, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *MockClientRepository) Exists(ctx context.Context, phone kernel.Phone) (bool, error) {
	args := m.Called(ctx, phone)
	return args.Bool(0), args.Error(1)
}

type MockZoneRepository struct{ mock.Mock }

func (m *MockZoneRepository) Add(ctx context.Context, z *zone.Zone) error {
	args := m.Called(ctx, z)
	return args.Error(0)
}

func (m *MockZoneRepository) Update(ctx context.Context, z *zone.Zone) error {
	args := m.Called(ctx, z)
	return args.Error(0)
}

func (m *MockZoneRepository) Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zone.Zone), args.Error(1)
}

func (m *MockZoneRepository) GetAll(ctx context.Context) ([]*zone.Zone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*zone.Zone), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, phone kernel.Phone) (*driver.Driver, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAllActive(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAllInIssuedStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockLoanRepository struct{ mock.Mock }

func (m *MockLoanRepository) Add(ctx context.Context, l *loan.Loan) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLoanRepository) Update(ctx context.Context, l *loan.Loan) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLoanRepository) Get(ctx context.Context, id kernel.UUID) (*loan.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*loan.Loan), args.Error(1)
}

func (m *MockLoanRepository) GetAllUnreturned(ctx context.Context) ([]*loan.Loan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*loan.Loan), args.Error(1)
}

// MockUoW satisfies every command unit of work interface so each test wires
// only the repositories its handler touches.
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

func (m *MockUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}

func (m *MockUoW) ZoneRepository() ports.ZoneRepository {
	args := m.Called()
	return args.Get(0).(ports.ZoneRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) LoanRepository() ports.LoanRepository {
	args := m.Called()
	return args.Get(0).(ports.LoanRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockAssignUoWFactory struct{ mock.Mock }

func (m *MockAssignUoWFactory) Create() commands.AssignUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignUoW)
}

type MockLoanUoWFactory struct{ mock.Mock }

func (m *MockLoanUoWFactory) Create() commands.LoanUoW {
	args := m.Called()
	return args.Get(0).(commands.LoanUoW)
}

type MockClientUoWFactory struct{ mock.Mock }

func (m *MockClientUoWFactory) Create() commands.ClientUoW {
	args := m.Called()
	return args.Get(0).(commands.ClientUoW)
}
