package commands

import (
	"context"
)

// CompleteDeliveryCommandHandler handles delivery completion.
// Returns the quality score captured before the transition: the score the
// delivery is settled against, untouched by anything recorded afterwards.
type CompleteDeliveryCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(uowFactory ShipmentUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery completion command and returns the final
// quality score. Fails with not-found, not-authorized (caller is not the
// destination), or already-completed.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) (int, error) {
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

	finalScore, err := aggregate.CompleteDelivery(cmd.Caller(), cmd.OccurredAt())
	if err != nil {
		return 0, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return finalScore, nil
}
