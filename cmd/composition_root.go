package cmd

import (
	"myfood/internal/adapters/out/postgres"
	"myfood/internal/adapters/out/postgres/registryrepo"
	"myfood/internal/core/application/usecases/commands"
	"myfood/internal/core/application/usecases/queries"
	"myfood/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	registry   *registryrepo.GormRegistry
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   registryrepo.NewGormRegistry(gormDB),
	}
}

func (c *CompositionRoot) Registry() ports.Registry {
	return c.registry
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.registry)
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddItemCommandHandler(f, c.registry)
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveItemCommandHandler(f)
}

func (c *CompositionRoot) CreateCloseOrderCommandHandler() commands.CloseOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCloseOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkOrderReadyCommandHandler() commands.MarkOrderReadyCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderReadyCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f, c.registry)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderAttributeQueryHandler() queries.GetOrderAttributeQueryHandler {
	return queries.NewGetOrderAttributeQueryHandler(c.gormDB, c.registry)
}

func (c *CompositionRoot) CreateGetOrderNumberQueryHandler() queries.GetOrderNumberQueryHandler {
	return queries.NewGetOrderNumberQueryHandler(c.gormDB, c.registry)
}

func (c *CompositionRoot) CreateGetDeliveryAttributeQueryHandler() queries.GetDeliveryAttributeQueryHandler {
	return queries.NewGetDeliveryAttributeQueryHandler(c.gormDB, c.registry)
}

func (c *CompositionRoot) CreateGetDeliveryForOrderQueryHandler() queries.GetDeliveryForOrderQueryHandler {
	return queries.NewGetDeliveryForOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSelectOrderForCourierQueryHandler() queries.SelectOrderForCourierQueryHandler {
	// Dispatch selection only reads, so the repository runs outside any
	// transaction, straight on the shared connection.
	return queries.NewSelectOrderForCourierQueryHandler(c.uowFactory.Create().OrderRepository(), c.registry)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
