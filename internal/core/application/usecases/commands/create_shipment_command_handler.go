package commands

import (
	"context"

	"coldchain/internal/core/domain/model/shipment"
	"coldchain/internal/core/domain/model/templog"
)

// CreateShipmentCommandHandler handles the business logic for shipment registration.
//
// Registration is a compound operation: it creates the shipment record and
// writes the first temperature log entry (location "Origin", reserved sensor
// identifier) in the same transaction. The inner log write is a direct domain
// call and is never re-authorized: the caller just became the current handler.
type CreateShipmentCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment registration.
func NewCreateShipmentCommandHandler(uowFactory TrackingUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment registration command.
// Fails when the tracking ID is already registered, when the temperature range
// is inverted (rejected at command construction), or when the initial
// temperature lies outside the range. The origin reading consumes one sequence
// number; since the temperature was range-checked, it can never be a breach.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := shipment.NewShipment(
		cmd.TrackingID(),
		cmd.Caller(),
		cmd.Destination(),
		cmd.ProductType(),
		cmd.TemperatureRange(),
		cmd.InitialTemp(),
		cmd.OccurredAt(),
	)
	if err != nil {
		return err
	}

	seq, err := uow.SequenceCounter().Next(ctx)
	if err != nil {
		return err
	}

	entry, err := templog.NewEntry(
		aggregate.ID(),
		seq,
		cmd.InitialTemp(),
		cmd.OccurredAt(),
		templog.OriginLocation,
		cmd.Caller(),
		templog.OriginSensorID,
	)
	if err != nil {
		return err
	}

	if err = uow.TemperatureLogRepository().Append(ctx, entry); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
