package commands

import (
	"context"
)

// TransferCustodyCommandHandler handles custody transfers.
// The aggregate enforces that only the current handler may transfer and that
// completed shipments reject the operation.
type TransferCustodyCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewTransferCustodyCommandHandler creates a handler for custody transfers.
func NewTransferCustodyCommandHandler(uowFactory ShipmentUoWFactory) TransferCustodyCommandHandler {
	return TransferCustodyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the custody transfer command.
func (h *TransferCustodyCommandHandler) Handle(ctx context.Context, cmd TransferCustodyCommand) error {
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

	repo := uow.ShipmentRepository()
	aggregate, err := repo.Get(ctx, cmd.TrackingID())
	if err != nil {
		return err
	}

	if err = aggregate.TransferCustody(cmd.Caller(), cmd.NewHandler(), cmd.OccurredAt()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
