package commands

import (
	"errors"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/pkg/errs"
	"coldchain/internal/pkg/guard"
)

var (
	ErrReportEmergencyCommandIsNotConstructed = errors.New(
		"ReportEmergencyCommand must be created via NewReportEmergencyCommand constructor",
	)
)

// ReportEmergencyCommand represents a request to flag a shipment as being in an
// emergency condition. The caller must hold custody or be an authorized handler.
type ReportEmergencyCommand struct { //nolint:recvcheck //using for validation
	trackingID    kernel.TrackingID
	caller        kernel.Principal
	emergencyType string
	description   string
	occurredAt    int64

	guard guard.ConstructorGuard
}

// NewReportEmergencyCommand creates a command to report an emergency.
func NewReportEmergencyCommand(
	trackingID kernel.TrackingID,
	caller kernel.Principal,
	emergencyType string,
	description string,
	occurredAt int64,
) (ReportEmergencyCommand, error) {
	cmd := ReportEmergencyCommand{
		description: description,
		occurredAt:  occurredAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingID(trackingID),
		cmd.setCaller(caller),
		cmd.setEmergencyType(emergencyType),
	); err != nil {
		return ReportEmergencyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportEmergencyCommand) Validate() error {
	return c.guard.Validate(ErrReportEmergencyCommandIsNotConstructed)
}

// TrackingID returns the shipment identifier.
func (c ReportEmergencyCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Caller returns the principal reporting the emergency.
func (c ReportEmergencyCommand) Caller() kernel.Principal {
	return c.caller
}

// EmergencyType returns the emergency category.
func (c ReportEmergencyCommand) EmergencyType() string {
	return c.emergencyType
}

// Description returns the free-text emergency description.
func (c ReportEmergencyCommand) Description() string {
	return c.description
}

// OccurredAt returns the logical timestamp of the operation.
func (c ReportEmergencyCommand) OccurredAt() int64 {
	return c.occurredAt
}

func (c *ReportEmergencyCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *ReportEmergencyCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *ReportEmergencyCommand) setEmergencyType(emergencyType string) error {
	if emergencyType == "" {
		return errs.NewValueIsRequiredError("emergency type")
	}
	c.emergencyType = emergencyType
	return nil
}
