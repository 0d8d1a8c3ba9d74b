package commands

import (
	"context"
	"fmt"

	"coldchain/internal/core/domain/model/shipment"
	"coldchain/internal/core/domain/model/templog"
	"coldchain/internal/pkg/errs"
)

// LogTemperatureCommandHandler handles temperature readings.
//
// A reading appends an immutable log entry at the next global sequence number
// and updates the shipment (current temperature, breach count, quality score)
// in the same transaction. When the reading breaches the configured range the
// handler still commits and then returns shipment.ErrTemperatureBreach together
// with the assigned sequence number: the breach outcome is a warning about a
// recorded fact, not a rejected operation.
type LogTemperatureCommandHandler struct {
	uowFactory UoWFactory
}

// NewLogTemperatureCommandHandler creates a handler for temperature readings.
func NewLogTemperatureCommandHandler(uowFactory UoWFactory) LogTemperatureCommandHandler {
	return LogTemperatureCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reading and returns the assigned sequence number.
// Fails with not-found for unknown shipments, not-authorized when the caller
// neither holds custody nor appears in the authorization set, and
// already-completed for delivered shipments.
func (h *LogTemperatureCommandHandler) Handle(ctx context.Context, cmd LogTemperatureCommand) (uint64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	aggregate, err := repo.Get(ctx, cmd.TrackingID())
	if err != nil {
		return 0, err
	}

	if !aggregate.IsHeldBy(cmd.Caller()) {
		authorized, authErr := uow.HandlerRegistry().IsAuthorized(ctx, cmd.Caller())
		if authErr != nil {
			return 0, authErr
		}
		if !authorized {
			return 0, errs.NewNotAuthorizedError(cmd.Caller().String(), "log temperature")
		}
	}

	breach, err := aggregate.RecordReading(cmd.Temperature(), cmd.OccurredAt())
	if err != nil {
		return 0, err
	}

	seq, err := uow.SequenceCounter().Next(ctx)
	if err != nil {
		return 0, err
	}

	entry, err := templog.NewEntry(
		aggregate.ID(),
		seq,
		cmd.Temperature(),
		cmd.OccurredAt(),
		cmd.Location(),
		cmd.Caller(),
		cmd.SensorID(),
	)
	if err != nil {
		return 0, err
	}

	if err = uow.TemperatureLogRepository().Append(ctx, entry); err != nil {
		return 0, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	if breach {
		return seq, fmt.Errorf("shipment %s: %w", aggregate.ID(), shipment.ErrTemperatureBreach)
	}

	return seq, nil
}
