package shipment

import (
	"fmt"

	"coldchain/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions to ensure shipments
// follow the correct custody workflow.
//
// State transitions:
//
//	Created ──> InTransit ──> Completed
//	    │            │            ▲
//	    └──> Emergency ───────────┘
//
// Completed is terminal for custody transfers and temperature logging.
// Emergency remains loggable and completable, but a shipment never re-enters
// Created. An emergency may still be reported after completion (a downstream
// quality discovery).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status assigned at registration.
	// The origin principal still holds custody.
	Created

	// InTransit indicates custody has been transferred at least once.
	InTransit

	// Completed indicates the shipment has been delivered to its destination.
	// Terminal: transfers and temperature logging are rejected.
	Completed

	// Emergency indicates an emergency has been reported against the shipment.
	// The shipment can still be logged against and completed.
	Emergency
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		InTransit: "InTransit",
		Completed: "Completed",
		Emergency: "Emergency",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		InTransit: "InTransit",
		Completed: "Completed",
		Emergency: "Emergency",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Created, InTransit, Completed, Emergency.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsCompleted reports whether the status is the terminal Completed state.
func (s Status) IsCompleted() bool {
	return s == Completed
}

// Transfer returns the status resulting from a custody transfer.
//
// Valid transitions:
//   - Created -> InTransit (first handoff)
//   - InTransit -> InTransit (subsequent handoffs)
//   - Emergency -> Emergency (custody may move, the emergency flag is not
//     silently cleared)
//
// Completed shipments cannot be transferred and yield ErrShipmentAlreadyCompleted.
func (s Status) Transfer() (Status, error) {
	switch s {
	case Created, InTransit:
		return InTransit, nil
	case Emergency:
		return Emergency, nil
	case Completed:
		return 0, ErrShipmentAlreadyCompleted
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to transfer from", s.String()),
		)
	}
}

// Complete returns the status resulting from delivery completion.
//
// Valid transitions:
//   - Created -> Completed
//   - InTransit -> Completed
//   - Emergency -> Completed (an emergency shipment can still be delivered)
//
// Completing an already completed shipment yields ErrShipmentAlreadyCompleted.
func (s Status) Complete() (Status, error) {
	switch s {
	case Created, InTransit, Emergency:
		return Completed, nil
	case Completed:
		return 0, ErrShipmentAlreadyCompleted
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete from", s.String()),
		)
	}
}

// ReportEmergency returns the status resulting from an emergency report.
// The transition is unconditional for every valid status, including Completed:
// emergencies may surface after delivery.
func (s Status) ReportEmergency() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Emergency, nil
}

// ValidateLoggable checks whether a temperature reading may be recorded in the
// current status. Only Completed rejects readings.
func (s Status) ValidateLoggable() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s == Completed {
		return ErrShipmentAlreadyCompleted
	}
	return nil
}
