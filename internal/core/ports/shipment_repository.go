package ports

import (
	"context"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// Implementations own the shipment registry table exclusively.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate.
	// Fails with an already-exists error when the tracking ID is registered.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	// Fails with a not-found error when the tracking ID is unknown.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by tracking ID.
	// Fails with a not-found error when the tracking ID is unknown.
	Get(ctx context.Context, id kernel.TrackingID) (*shipment.Shipment, error)
}
