// Package commands contains the mutating operations of the tracking core.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence. Each handler runs inside exactly one unit of work, so the
// effects of an operation commit or roll back together.
package commands

import (
	"context"

	"coldchain/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers depend on the narrowest interface covering the stores they touch.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment registry within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// TemperatureLogRepoFactory provides access to the temperature log within a transaction.
	TemperatureLogRepoFactory interface {
		TemperatureLogRepository() ports.TemperatureLogRepository
	}

	// HandlerRegistryFactory provides access to the authorization set within a transaction.
	HandlerRegistryFactory interface {
		HandlerRegistry() ports.HandlerRegistry
	}

	// SequenceCounterFactory provides access to the log sequence counter within a transaction.
	SequenceCounterFactory interface {
		SequenceCounter() ports.SequenceCounter
	}

	// ShipmentUoW manages transactions for shipment-only operations
	// (custody transfer, delivery completion).
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// RegistryUoW manages transactions for authorization-set operations
	// (grant, revoke).
	RegistryUoW interface {
		TxManager
		HandlerRegistryFactory
	}

	// RegistryUoWFactory creates new registry unit of work instances.
	RegistryUoWFactory interface {
		Create() RegistryUoW
	}

	// TrackingUoW manages transactions spanning the shipment registry, the
	// temperature log, and the sequence counter. Used by shipment creation,
	// whose initial origin reading shares the registration transaction.
	TrackingUoW interface {
		TxManager
		ShipmentRepoFactory
		TemperatureLogRepoFactory
		SequenceCounterFactory
	}

	// TrackingUoWFactory creates new tracking unit of work instances.
	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	// UoW manages transactions across all four stores. Used by operations that
	// additionally consult the authorization set (temperature logging,
	// emergency reporting).
	UoW interface {
		TxManager
		ShipmentRepoFactory
		TemperatureLogRepoFactory
		HandlerRegistryFactory
		SequenceCounterFactory
	}

	// UoWFactory creates new unit of work instances for cross-store operations.
	UoWFactory interface {
		Create() UoW
	}
)
