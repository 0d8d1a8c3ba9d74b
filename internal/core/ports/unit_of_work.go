package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each operation.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
//
// Every mutating operation of the tracking core runs inside exactly one unit of
// work: the shipment update, the log append, and the sequence allocation of a
// single call commit or roll back together, so readers never observe a partial
// operation. The serialized-execution guarantee the core relies on is provided
// here, by the database transaction, rather than by any locking in the domain.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ShipmentRepository returns a ShipmentRepository bound to the current transaction.
	ShipmentRepository() ShipmentRepository

	// TemperatureLogRepository returns a TemperatureLogRepository bound to the current transaction.
	TemperatureLogRepository() TemperatureLogRepository

	// HandlerRegistry returns a HandlerRegistry bound to the current transaction.
	HandlerRegistry() HandlerRegistry

	// SequenceCounter returns a SequenceCounter bound to the current transaction.
	SequenceCounter() SequenceCounter
}
