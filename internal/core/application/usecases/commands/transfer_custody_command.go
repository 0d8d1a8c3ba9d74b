package commands

import (
	"errors"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/pkg/guard"
)

var (
	ErrTransferCustodyCommandIsNotConstructed = errors.New(
		"TransferCustodyCommand must be created via NewTransferCustodyCommand constructor",
	)
)

// TransferCustodyCommand represents a request to hand a shipment to a new
// handler. Only the current custody holder may transfer.
type TransferCustodyCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID
	caller     kernel.Principal
	newHandler kernel.Principal
	occurredAt int64

	guard guard.ConstructorGuard
}

// NewTransferCustodyCommand creates a command to transfer custody of a shipment.
func NewTransferCustodyCommand(
	trackingID kernel.TrackingID,
	caller kernel.Principal,
	newHandler kernel.Principal,
	occurredAt int64,
) (TransferCustodyCommand, error) {
	cmd := TransferCustodyCommand{
		occurredAt: occurredAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingID(trackingID),
		cmd.setCaller(caller),
		cmd.setNewHandler(newHandler),
	); err != nil {
		return TransferCustodyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransferCustodyCommand) Validate() error {
	return c.guard.Validate(ErrTransferCustodyCommandIsNotConstructed)
}

// TrackingID returns the shipment identifier.
func (c TransferCustodyCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Caller returns the principal requesting the transfer.
func (c TransferCustodyCommand) Caller() kernel.Principal {
	return c.caller
}

// NewHandler returns the principal taking custody.
func (c TransferCustodyCommand) NewHandler() kernel.Principal {
	return c.newHandler
}

// OccurredAt returns the logical timestamp of the operation.
func (c TransferCustodyCommand) OccurredAt() int64 {
	return c.occurredAt
}

func (c *TransferCustodyCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *TransferCustodyCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *TransferCustodyCommand) setNewHandler(newHandler kernel.Principal) error {
	if err := newHandler.Validate(); err != nil {
		return err
	}
	c.newHandler = newHandler
	return nil
}
