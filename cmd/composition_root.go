package cmd

import (
	"log/slog"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/envconfig"
	"dispatch/internal/adapters/out/notifications"
	"dispatch/internal/adapters/out/payments"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/systemclock"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use cases. Everything hangs off the
// shared GORM handle and one unit of work factory; each Create* method
// hands out a ready handler.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cfg        ports.ConfigProvider
	clock      ports.Clock
	notifier   ports.NotificationSink
	gateway    ports.PaymentGateway
	engine     services.DispatchEngine
	logger     *slog.Logger
}

// NewCompositionRoot builds the application graph on top of a connected
// database handle.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cfg:        envconfig.NewProvider(),
		clock:      systemclock.NewClock(),
		notifier:   notifications.NewSlogNotificationSink(logger),
		gateway:    payments.NewLoggingGateway(logger),
		engine:     services.NewDispatchEngine(nil),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateRegisterCourierCommandHandler() commands.RegisterCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchOrderCommandHandler(f, c.engine, c.cfg, c.clock, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAcceptDeliveryCommandHandler() commands.AcceptDeliveryCommandHandler {
	return commands.NewAcceptDeliveryCommandHandler(c.deliveryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreatePickUpDeliveryCommandHandler() commands.PickUpDeliveryCommandHandler {
	return commands.NewPickUpDeliveryCommandHandler(c.deliveryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateStartTransitCommandHandler() commands.StartTransitCommandHandler {
	return commands.NewStartTransitCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateMarkArrivedCommandHandler() commands.MarkArrivedCommandHandler {
	return commands.NewMarkArrivedCommandHandler(c.deliveryUoWFactory(), c.clock, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f, c.cfg, c.clock, c.logger)
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	return commands.NewCancelDeliveryCommandHandler(c.deliveryUoWFactory(), c.clock, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateReassignDeliveryCommandHandler() commands.ReassignDeliveryCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReassignDeliveryCommandHandler(f, c.engine, c.cfg, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateDistributeCommissionCommandHandler() commands.DistributeCommissionCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDistributeCommissionCommandHandler(f, c.cfg, c.clock)
}

func (c *CompositionRoot) CreateSweepWaitingTimeoutsCommandHandler() commands.SweepWaitingTimeoutsCommandHandler {
	var f commands.SweepUoWFactory = FuncSweepUoWFactory(func() commands.SweepUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepWaitingTimeoutsCommandHandler(f, c.cfg, c.clock, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateTopUpWalletCommandHandler() commands.TopUpWalletCommandHandler {
	return commands.NewTopUpWalletCommandHandler(c.walletUoWFactory(), c.gateway, c.cfg, c.clock)
}

func (c *CompositionRoot) CreateWithdrawFromWalletCommandHandler() commands.WithdrawFromWalletCommandHandler {
	return commands.NewWithdrawFromWalletCommandHandler(c.walletUoWFactory(), c.gateway, c.cfg, c.clock)
}

func (c *CompositionRoot) CreateGetOpenDeliveriesQueryHandler() queries.GetOpenDeliveriesQueryHandler {
	return queries.NewGetOpenDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWalletStatementQueryHandler() queries.GetWalletStatementQueryHandler {
	return queries.NewGetWalletStatementQueryHandler(c.gormDB)
}

// CreateJobManager builds the background job manager with the sweep
// handler wired in.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSweepWaitingTimeoutsCommandHandler(), c.logger)
}

// CreateHTTPServer builds the REST server with every handler wired in.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateRegisterCourierCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateDispatchOrderCommandHandler(),
		c.CreateAcceptDeliveryCommandHandler(),
		c.CreatePickUpDeliveryCommandHandler(),
		c.CreateStartTransitCommandHandler(),
		c.CreateMarkArrivedCommandHandler(),
		c.CreateCompleteDeliveryCommandHandler(),
		c.CreateCancelDeliveryCommandHandler(),
		c.CreateReassignDeliveryCommandHandler(),
		c.CreateDistributeCommissionCommandHandler(),
		c.CreateTopUpWalletCommandHandler(),
		c.CreateWithdrawFromWalletCommandHandler(),
		c.CreateGetOpenDeliveriesQueryHandler(),
		c.CreateGetWalletStatementQueryHandler(),
	)
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) walletUoWFactory() commands.WalletUoWFactory {
	return FuncWalletUoWFactory(func() commands.WalletUoW {
		return c.uowFactory.Create()
	})
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncWalletUoWFactory func() commands.WalletUoW

func (f FuncWalletUoWFactory) Create() commands.WalletUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}

type FuncSweepUoWFactory func() commands.SweepUoW

func (f FuncSweepUoWFactory) Create() commands.SweepUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
