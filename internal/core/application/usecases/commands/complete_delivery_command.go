package commands

import (
	"errors"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/pkg/guard"
)

var (
	ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
		"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
	)
)

// CompleteDeliveryCommand represents a request to mark a shipment as delivered.
// Only the destination principal may complete a delivery.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID
	caller     kernel.Principal
	occurredAt int64

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery.
func NewCompleteDeliveryCommand(
	trackingID kernel.TrackingID,
	caller kernel.Principal,
	occurredAt int64,
) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		occurredAt: occurredAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingID(trackingID),
		cmd.setCaller(caller),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// TrackingID returns the shipment identifier.
func (c CompleteDeliveryCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Caller returns the principal completing the delivery.
func (c CompleteDeliveryCommand) Caller() kernel.Principal {
	return c.caller
}

// OccurredAt returns the logical timestamp of the operation.
func (c CompleteDeliveryCommand) OccurredAt() int64 {
	return c.occurredAt
}

func (c *CompleteDeliveryCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *CompleteDeliveryCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}
