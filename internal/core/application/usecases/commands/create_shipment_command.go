package commands

import (
	"errors"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/shipment"
	"coldchain/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
)

// CreateShipmentCommand represents a request to register a new shipment.
// The caller becomes both origin and initial custody holder. The initial
// temperature must already lie within the configured range; registration also
// writes the first temperature log entry at the reserved "Origin" location.
//
// Example:
//
//	id, _ := kernel.NewTrackingID("SHIP-001")
//	producer, _ := kernel.NewPrincipal("producer-1")
//	pharmacy, _ := kernel.NewPrincipal("pharmacy-9")
//	cmd, err := NewCreateShipmentCommand(id, producer, pharmacy, "Vaccines", 2, 8, 5, clock.Next())
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	trackingID  kernel.TrackingID
	caller      kernel.Principal
	destination kernel.Principal
	productType string
	tempRange   shipment.TemperatureRange
	initialTemp int
	occurredAt  int64

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Validates the identifiers and constructs the temperature range, so an
// inverted range is rejected before any handler work happens.
func NewCreateShipmentCommand(
	trackingID kernel.TrackingID,
	caller kernel.Principal,
	destination kernel.Principal,
	productType string,
	minTemp, maxTemp, initialTemp int,
	occurredAt int64,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		productType: productType,
		initialTemp: initialTemp,
		occurredAt:  occurredAt,
		guard:       guard.NewConstructorGuard(),
	}

	tempRange, rangeErr := shipment.NewTemperatureRange(minTemp, maxTemp)
	cmd.tempRange = tempRange

	if err := errors.Join(
		cmd.setTrackingID(trackingID),
		cmd.setCaller(caller),
		cmd.setDestination(destination),
		rangeErr,
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// TrackingID returns the identifier to register the shipment under.
func (c CreateShipmentCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Caller returns the registering principal (origin and first handler).
func (c CreateShipmentCommand) Caller() kernel.Principal {
	return c.caller
}

// Destination returns the principal entitled to complete delivery.
func (c CreateShipmentCommand) Destination() kernel.Principal {
	return c.destination
}

// ProductType returns the product category of the goods.
func (c CreateShipmentCommand) ProductType() string {
	return c.productType
}

// TemperatureRange returns the configured [min, max] band.
func (c CreateShipmentCommand) TemperatureRange() shipment.TemperatureRange {
	return c.tempRange
}

// InitialTemp returns the temperature at registration time.
func (c CreateShipmentCommand) InitialTemp() int {
	return c.initialTemp
}

// OccurredAt returns the logical timestamp of the operation.
func (c CreateShipmentCommand) OccurredAt() int64 {
	return c.occurredAt
}

func (c *CreateShipmentCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *CreateShipmentCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *CreateShipmentCommand) setDestination(destination kernel.Principal) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	c.destination = destination
	return nil
}
