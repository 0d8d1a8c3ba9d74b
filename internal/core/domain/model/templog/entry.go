package templog

import (
	"errors"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through
// the NewEntry factory function.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Bounds for the free-text fields carried on a log entry.
const (
	MaxLocationLength = 128
	MaxSensorIDLength = 64
)

// Reserved values used for the reading taken automatically at registration.
const (
	// OriginLocation is the location recorded for the registration reading.
	OriginLocation = "Origin"

	// OriginSensorID is the reserved sensor identifier of the registration
	// reading; real sensors never use it.
	OriginSensorID = "SENSOR-ORIGIN"
)

// Entry is a single immutable temperature reading in the append-only log.
// It is identified by (shipment tracking ID, sequence number); sequence numbers
// are assigned from a process-wide monotonic counter, are globally unique across
// shipments, and are never reused. An entry is never mutated after creation.
type Entry struct {
	shipmentID  kernel.TrackingID
	seq         uint64
	temperature int
	recordedAt  int64
	location    string
	handler     kernel.Principal
	sensorID    string

	isConstructed bool
}

// NewEntry creates a log entry for a reading reported by the given handler.
// The sequence number must already be allocated from the log sequence counter.
func NewEntry(
	shipmentID kernel.TrackingID,
	seq uint64,
	temperature int,
	recordedAt int64,
	location string,
	handler kernel.Principal,
	sensorID string,
) (Entry, error) {
	if err := errors.Join(
		shipmentID.Validate(),
		handler.Validate(),
		validateLocation(location),
		validateSensorID(sensorID),
	); err != nil {
		return Entry{}, err
	}
	if seq == 0 {
		return Entry{}, errs.NewValueIsRequiredError("sequence number")
	}

	return Entry{
		shipmentID:    shipmentID,
		seq:           seq,
		temperature:   temperature,
		recordedAt:    recordedAt,
		location:      location,
		handler:       handler,
		sensorID:      sensorID,
		isConstructed: true,
	}, nil
}

// Validate ensures the entry was created via NewEntry.
func (e Entry) Validate() error {
	if !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ShipmentID returns the tracking ID of the shipment the reading belongs to.
func (e Entry) ShipmentID() kernel.TrackingID {
	return e.shipmentID
}

// Seq returns the globally unique sequence number of the entry.
func (e Entry) Seq() uint64 {
	return e.seq
}

// Temperature returns the recorded temperature.
func (e Entry) Temperature() int {
	return e.temperature
}

// RecordedAt returns the logical timestamp of the reading.
func (e Entry) RecordedAt() int64 {
	return e.recordedAt
}

// Location returns where the reading was taken.
func (e Entry) Location() string {
	return e.location
}

// Handler returns the principal that reported the reading.
func (e Entry) Handler() kernel.Principal {
	return e.handler
}

// SensorID returns the identifier of the reporting sensor.
func (e Entry) SensorID() string {
	return e.sensorID
}

func validateLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	if len(location) > MaxLocationLength {
		return errs.NewValueIsOutOfRangeError("location length", len(location), 1, MaxLocationLength)
	}
	return nil
}

func validateSensorID(sensorID string) error {
	if sensorID == "" {
		return errs.NewValueIsRequiredError("sensor ID")
	}
	if len(sensorID) > MaxSensorIDLength {
		return errs.NewValueIsOutOfRangeError("sensor ID length", len(sensorID), 1, MaxSensorIDLength)
	}
	return nil
}
