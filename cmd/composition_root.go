package cmd

import (
	"logistics/internal/adapters/out/excel"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	fuelRate   float64
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		fuelRate:   configs.FuelRate,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() (commands.CompleteOrderCommandHandler, error) {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory(), c.fuelRate)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReconcileResourcesCommandHandler() commands.ReconcileResourcesCommandHandler {
	return commands.NewReconcileResourcesCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	var f commands.ClientUoWFactory = FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateClientCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTruckCommandHandler() commands.CreateTruckCommandHandler {
	var f commands.TruckUoWFactory = FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTruckCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTrailerCommandHandler() commands.CreateTrailerCommandHandler {
	var f commands.TrailerUoWFactory = FuncTrailerUoWFactory(func() commands.TrailerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTrailerCommandHandler(f)
}

func (c *CompositionRoot) CreateArchiveResourceCommandHandler() commands.ArchiveResourceCommandHandler {
	return commands.NewArchiveResourceCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRestoreResourceCommandHandler() commands.RestoreResourceCommandHandler {
	return commands.NewRestoreResourceCommandHandler(c.resourceUoWFactory())
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCompletedOrdersQueryHandler() queries.GetCompletedOrdersQueryHandler {
	return queries.NewGetCompletedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableResourcesQueryHandler() queries.GetAvailableResourcesQueryHandler {
	return queries.NewGetAvailableResourcesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCompletedOrdersReport() excel.CompletedOrdersReport {
	return excel.NewCompletedOrdersReport()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) resourceUoWFactory() commands.ResourceUoWFactory {
	return FuncResourceUoWFactory(func() commands.ResourceUoW {
		return c.uowFactory.Create()
	})
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncResourceUoWFactory func() commands.ResourceUoW

func (f FuncResourceUoWFactory) Create() commands.ResourceUoW {
	return f()
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncTruckUoWFactory func() commands.TruckUoW

func (f FuncTruckUoWFactory) Create() commands.TruckUoW {
	return f()
}

type FuncTrailerUoWFactory func() commands.TrailerUoW

func (f FuncTrailerUoWFactory) Create() commands.TrailerUoW {
	return f()
}
