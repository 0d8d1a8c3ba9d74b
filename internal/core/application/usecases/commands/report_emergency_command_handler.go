package commands

import (
	"context"

	"coldchain/internal/pkg/errs"
)

// ReportEmergencyCommandHandler handles emergency reports.
//
// The status transition is unconditional, even for completed shipments: an
// emergency may surface after delivery (for example spoilage discovered at
// unpacking). The quality score is not affected.
type ReportEmergencyCommandHandler struct {
	uowFactory UoWFactory
}

// NewReportEmergencyCommandHandler creates a handler for emergency reports.
func NewReportEmergencyCommandHandler(uowFactory UoWFactory) ReportEmergencyCommandHandler {
	return ReportEmergencyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the emergency report command.
// Fails with not-found for unknown shipments and not-authorized when the
// caller neither holds custody nor appears in the authorization set.
func (h *ReportEmergencyCommandHandler) Handle(ctx context.Context, cmd ReportEmergencyCommand) error {
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

	if !aggregate.IsHeldBy(cmd.Caller()) {
		authorized, authErr := uow.HandlerRegistry().IsAuthorized(ctx, cmd.Caller())
		if authErr != nil {
			return authErr
		}
		if !authorized {
			return errs.NewNotAuthorizedError(cmd.Caller().String(), "report emergency")
		}
	}

	if err = aggregate.ReportEmergency(cmd.EmergencyType(), cmd.Description(), cmd.OccurredAt()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
