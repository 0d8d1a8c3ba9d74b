package cmd

import (
	"log/slog"
	"os"

	"coldchain/internal/adapters/out/postgres"
	"coldchain/internal/core/application/usecases/commands"
	"coldchain/internal/core/application/usecases/queries"
	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires application dependencies: the database, the unit of
// work factory, and the registry owner principal fixed at startup.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	owner      kernel.Principal
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	owner, err := kernel.NewPrincipal(config.RegistryOwner)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		owner:      owner,
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}, nil
}

// Owner returns the registry owner principal.
func (c *CompositionRoot) Owner() kernel.Principal {
	return c.owner
}

// Logger returns the process-wide structured logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateLogTemperatureCommandHandler() commands.LogTemperatureCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewLogTemperatureCommandHandler(f)
}

func (c *CompositionRoot) CreateTransferCustodyCommandHandler() commands.TransferCustodyCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransferCustodyCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateReportEmergencyCommandHandler() commands.ReportEmergencyCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportEmergencyCommandHandler(f)
}

func (c *CompositionRoot) CreateGrantHandlerCommandHandler() commands.GrantHandlerCommandHandler {
	var f commands.RegistryUoWFactory = FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGrantHandlerCommandHandler(c.owner, f)
}

func (c *CompositionRoot) CreateRevokeHandlerCommandHandler() commands.RevokeHandlerCommandHandler {
	var f commands.RegistryUoWFactory = FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRevokeHandlerCommandHandler(c.owner, f)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentStatusQueryHandler() queries.GetShipmentStatusQueryHandler {
	return queries.NewGetShipmentStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTemperatureLogQueryHandler() queries.GetTemperatureLogQueryHandler {
	return queries.NewGetTemperatureLogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetQualityAssessmentQueryHandler() queries.GetQualityAssessmentQueryHandler {
	return queries.NewGetQualityAssessmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateIsTemperatureCompliantQueryHandler() queries.IsTemperatureCompliantQueryHandler {
	return queries.NewIsTemperatureCompliantQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateIsAuthorizedHandlerQueryHandler() queries.IsAuthorizedHandlerQueryHandler {
	return queries.NewIsAuthorizedHandlerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNonCompliantShipmentsQueryHandler() queries.GetNonCompliantShipmentsQueryHandler {
	return queries.NewGetNonCompliantShipmentsQueryHandler(c.gormDB)
}

// CreateJobManager wires the background jobs with the given cron spec.
func (c *CompositionRoot) CreateJobManager(complianceSpec string) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetNonCompliantShipmentsQueryHandler(), complianceSpec, c.logger)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncRegistryUoWFactory func() commands.RegistryUoW

func (f FuncRegistryUoWFactory) Create() commands.RegistryUoW {
	return f()
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
