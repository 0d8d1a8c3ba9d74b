package commands

import (
	"errors"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/pkg/errs"
	"coldchain/internal/pkg/guard"
)

var (
	ErrLogTemperatureCommandIsNotConstructed = errors.New(
		"LogTemperatureCommand must be created via NewLogTemperatureCommand constructor",
	)
)

// LogTemperatureCommand represents a request to record a temperature reading
// against a shipment. The caller must be the current handler or an authorized
// handler from the authorization set.
//
// Example:
//
//	id, _ := kernel.NewTrackingID("SHIP-001")
//	carrier, _ := kernel.NewPrincipal("carrier-acme")
//	cmd, err := NewLogTemperatureCommand(id, carrier, 10, "Truck 12", "SNS-1", clock.Next())
//	if err != nil {
//	    return err
//	}
//
//	seq, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, shipment.ErrTemperatureBreach) {
//	    // The reading was recorded and the quality penalty applied; the error
//	    // is a warning, not a rollback.
//	}
type LogTemperatureCommand struct { //nolint:recvcheck //using for validation
	trackingID  kernel.TrackingID
	caller      kernel.Principal
	temperature int
	location    string
	sensorID    string
	occurredAt  int64

	guard guard.ConstructorGuard
}

// NewLogTemperatureCommand creates a command to record a temperature reading.
func NewLogTemperatureCommand(
	trackingID kernel.TrackingID,
	caller kernel.Principal,
	temperature int,
	location string,
	sensorID string,
	occurredAt int64,
) (LogTemperatureCommand, error) {
	cmd := LogTemperatureCommand{
		temperature: temperature,
		occurredAt:  occurredAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingID(trackingID),
		cmd.setCaller(caller),
		cmd.setLocation(location),
		cmd.setSensorID(sensorID),
	); err != nil {
		return LogTemperatureCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LogTemperatureCommand) Validate() error {
	return c.guard.Validate(ErrLogTemperatureCommandIsNotConstructed)
}

// TrackingID returns the shipment identifier.
func (c LogTemperatureCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Caller returns the principal reporting the reading.
func (c LogTemperatureCommand) Caller() kernel.Principal {
	return c.caller
}

// Temperature returns the reported temperature.
func (c LogTemperatureCommand) Temperature() int {
	return c.temperature
}

// Location returns where the reading was taken.
func (c LogTemperatureCommand) Location() string {
	return c.location
}

// SensorID returns the identifier of the reporting sensor.
func (c LogTemperatureCommand) SensorID() string {
	return c.sensorID
}

// OccurredAt returns the logical timestamp of the operation.
func (c LogTemperatureCommand) OccurredAt() int64 {
	return c.occurredAt
}

func (c *LogTemperatureCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *LogTemperatureCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *LogTemperatureCommand) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	c.location = location
	return nil
}

func (c *LogTemperatureCommand) setSensorID(sensorID string) error {
	if sensorID == "" {
		return errs.NewValueIsRequiredError("sensor ID")
	}
	c.sensorID = sensorID
	return nil
}
