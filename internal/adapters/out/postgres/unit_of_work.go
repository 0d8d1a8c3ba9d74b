// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern over the tracking stores.
//
// Every mutating operation of the tracking core runs inside exactly one unit
// of work: the shipment update, the log append, and the sequence allocation of
// a single call commit or roll back together, so readers never observe a
// partial operation.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance carries its own transaction; concurrent operations
// must use separate instances created from the shared factory.
package postgres

import (
	"context"

	"coldchain/internal/adapters/out/postgres/handlerrepo"
	"coldchain/internal/adapters/out/postgres/sequencerepo"
	"coldchain/internal/adapters/out/postgres/shipmentrepo"
	"coldchain/internal/adapters/out/postgres/templogrepo"
	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Kept for post-commit processing such as audit publishing.
type trackedAggregate struct {
	ID        kernel.TrackingID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection. Each business operation gets a fresh unit of work with
// proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for a business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions across the shipment
// registry, the temperature log, the handler authorization set, and the
// sequence counter.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin on an instance with an active transaction is a no-op; nested
// transactions are never created.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ShipmentRepository returns a ShipmentRepository bound to the current
// transaction if one is active, otherwise to the main connection.
func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

// TemperatureLogRepository returns a TemperatureLogRepository bound to the
// current transaction if one is active, otherwise to the main connection.
func (uow *GormUnitOfWork) TemperatureLogRepository() ports.TemperatureLogRepository {
	return templogrepo.NewGormTemperatureLogRepository(uow.conn())
}

// HandlerRegistry returns a HandlerRegistry bound to the current transaction
// if one is active, otherwise to the main connection.
func (uow *GormUnitOfWork) HandlerRegistry() ports.HandlerRegistry {
	return handlerrepo.NewGormHandlerRegistry(uow.conn())
}

// SequenceCounter returns a SequenceCounter bound to the current transaction
// if one is active, otherwise to the main connection. Binding to the
// transaction is what keeps allocation and append atomic.
func (uow *GormUnitOfWork) SequenceCounter() ports.SequenceCounter {
	return sequencerepo.NewGormSequenceCounter(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Called by repository implementations on add and update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.TrackingID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
