package ports

import (
	"context"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/templog"
)

// TemperatureLogRepository defines the persistence contract for the append-only
// temperature log. Entries are immutable: there is no update or delete.
type TemperatureLogRepository interface {
	// Append persists a new log entry under its (shipment ID, sequence) key.
	Append(ctx context.Context, entry templog.Entry) error

	// Get retrieves a single log entry by shipment ID and sequence number.
	// Fails with a not-found error when no such entry exists.
	Get(ctx context.Context, id kernel.TrackingID, seq uint64) (templog.Entry, error)
}
