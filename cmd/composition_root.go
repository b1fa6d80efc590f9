package cmd

import (
	"gorm.io/gorm"

	httpserver "pedidos/internal/adapters/in/http"
	"pedidos/internal/adapters/out/postgres"
	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// Handlers bundles every command and query handler for the HTTP server.
func (c *CompositionRoot) Handlers() httpserver.Handlers {
	return httpserver.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		AssignDriver:       c.CreateAssignDriverCommandHandler(),
		UnassignDriver:     c.CreateUnassignDriverCommandHandler(),
		CancelOrder:        c.CreateCancelOrderCommandHandler(),
		DeleteOrder:        c.CreateDeleteOrderCommandHandler(),
		ChangeOrderPayment: c.CreateChangeOrderPaymentCommandHandler(),
		CreateClient:       c.CreateCreateClientCommandHandler(),
		CreateZone:         c.CreateCreateZoneCommandHandler(),
		CreateProduct:      c.CreateCreateProductCommandHandler(),
		CreateDriver:       c.CreateCreateDriverCommandHandler(),
		CreateLoan:         c.CreateCreateLoanCommandHandler(),
		ReturnLoan:         c.CreateReturnLoanCommandHandler(),

		GetUnassignedOrders: c.CreateGetUnassignedOrdersQueryHandler(),
		GetDailyRevenue:     c.CreateGetDailyRevenueQueryHandler(),
		GetOverdueLoans:     c.CreateGetOverdueLoansQueryHandler(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.AssignUoWFactory = FuncAssignUoWFactory(func() commands.AssignUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateUnassignDriverCommandHandler() commands.UnassignDriverCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnassignDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderPaymentCommandHandler() commands.ChangeOrderPaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	var f commands.ClientUoWFactory = FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateClientCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateZoneCommandHandler() commands.CreateZoneCommandHandler {
	var f commands.ZoneUoWFactory = FuncZoneUoWFactory(func() commands.ZoneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateZoneCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateLoanCommandHandler() commands.CreateLoanCommandHandler {
	var f commands.LoanUoWFactory = FuncLoanUoWFactory(func() commands.LoanUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateLoanCommandHandler(f)
}

func (c *CompositionRoot) CreateReturnLoanCommandHandler() commands.ReturnLoanCommandHandler {
	var f commands.LoanUoWFactory = FuncLoanUoWFactory(func() commands.LoanUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReturnLoanCommandHandler(f)
}

func (c *CompositionRoot) CreateGetUnassignedOrdersQueryHandler() queries.GetUnassignedOrdersQueryHandler {
	return queries.NewGetUnassignedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDailyRevenueQueryHandler() queries.GetDailyRevenueQueryHandler {
	return queries.NewGetDailyRevenueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueLoansQueryHandler() queries.GetOverdueLoansQueryHandler {
	return queries.NewGetOverdueLoansQueryHandler(c.gormDB)
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAssignUoWFactory func() commands.AssignUoW

func (f FuncAssignUoWFactory) Create() commands.AssignUoW {
	return f()
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncZoneUoWFactory func() commands.ZoneUoW

func (f FuncZoneUoWFactory) Create() commands.ZoneUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncLoanUoWFactory func() commands.LoanUoW

func (f FuncLoanUoWFactory) Create() commands.LoanUoW {
	return f()
}
