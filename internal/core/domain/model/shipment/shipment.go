package shipment

import (
	"errors"
	"fmt"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrShipmentAlreadyCompleted is returned when a mutating operation targets a
	// shipment whose status is Completed. Completed is terminal.
	ErrShipmentAlreadyCompleted = errors.New("shipment has already been completed")

	// ErrTemperatureBreach signals that a recorded reading was outside the
	// shipment's temperature range. It is a succeeded-with-warning outcome, not a
	// failure: when a caller receives it, the log entry and the quality penalty
	// have already been committed.
	ErrTemperatureBreach = errors.New("temperature reading breached the configured range")
)

// Bounds for the free-text fields carried on a shipment record.
const (
	MaxProductTypeLength          = 64
	MaxEmergencyTypeLength        = 64
	MaxEmergencyDescriptionLength = 256
)

// Shipment is the aggregate root tracking a temperature-sensitive unit of goods
// through its custody chain.
//
// Shipment maintains these invariants:
//   - The temperature range satisfies min <= max (enforced at construction)
//   - The quality score stays within [MinQualityScore, InitialQualityScore]
//   - Status only moves along the transitions defined on Status
//   - updatedAt never precedes createdAt
//   - Once Completed, neither temperature, custody, nor status (except an
//     emergency report) can change
//
// All fields are private; state changes go through validated methods.
type Shipment struct {
	id             kernel.TrackingID
	origin         kernel.Principal
	destination    kernel.Principal
	currentHandler kernel.Principal
	productType    string
	tempRange      TemperatureRange
	currentTemp    int
	status         Status
	createdAt      int64
	updatedAt      int64
	breachCount    int
	qualityScore   int

	// emergencyType and emergencyDescription hold the most recent emergency
	// report; both are empty while no emergency has been reported.
	emergencyType        string
	emergencyDescription string

	isConstructed bool
}

// NewShipment registers a new shipment.
//
// The origin principal (the caller registering the shipment) takes initial
// custody. The initial temperature must lie within the range; registration of a
// shipment that is already out of bounds is rejected rather than recorded as a
// breach. Status starts at Created with a full quality score.
func NewShipment(
	id kernel.TrackingID,
	origin kernel.Principal,
	destination kernel.Principal,
	productType string,
	tempRange TemperatureRange,
	initialTemp int,
	createdAt int64,
) (*Shipment, error) {
	s := &Shipment{
		status:        Created,
		qualityScore:  InitialQualityScore,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setParties(origin, destination),
		s.setProductType(productType),
		s.setTemperatureRange(tempRange),
	); err != nil {
		return nil, err
	}

	if !tempRange.Contains(initialTemp) {
		return nil, errs.NewValueIsOutOfRangeError(
			"initial temperature", initialTemp, tempRange.Min(), tempRange.Max(),
		)
	}

	s.currentHandler = origin
	s.currentTemp = initialTemp
	s.createdAt = createdAt
	s.updatedAt = createdAt

	return s, nil
}

// RestoreShipment reconstructs a shipment from persisted state.
// Used by repository implementations; validates the parts that constrain each
// other but trusts the stored aggregates of the breach history.
func RestoreShipment(
	id kernel.TrackingID,
	origin kernel.Principal,
	destination kernel.Principal,
	currentHandler kernel.Principal,
	productType string,
	tempRange TemperatureRange,
	currentTemp int,
	status Status,
	createdAt int64,
	updatedAt int64,
	breachCount int,
	qualityScore int,
	emergencyType string,
	emergencyDescription string,
) (*Shipment, error) {
	s := &Shipment{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setParties(origin, destination),
		s.setProductType(productType),
		s.setTemperatureRange(tempRange),
		currentHandler.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if qualityScore < MinQualityScore || qualityScore > InitialQualityScore {
		return nil, errs.NewValueIsOutOfRangeError(
			"quality score", qualityScore, MinQualityScore, InitialQualityScore,
		)
	}
	if breachCount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"breach count",
			fmt.Errorf("%d is negative", breachCount),
		)
	}
	if updatedAt < createdAt {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"updated at",
			fmt.Errorf("%d precedes creation time %d", updatedAt, createdAt),
		)
	}

	s.currentHandler = currentHandler
	s.currentTemp = currentTemp
	s.status = status
	s.createdAt = createdAt
	s.updatedAt = updatedAt
	s.breachCount = breachCount
	s.qualityScore = qualityScore
	s.emergencyType = emergencyType
	s.emergencyDescription = emergencyDescription

	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their tracking IDs.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the tracking identifier.
func (s *Shipment) ID() kernel.TrackingID {
	return s.id
}

// Origin returns the principal that registered the shipment.
func (s *Shipment) Origin() kernel.Principal {
	return s.origin
}

// Destination returns the principal entitled to complete delivery.
func (s *Shipment) Destination() kernel.Principal {
	return s.destination
}

// CurrentHandler returns the principal currently holding custody.
func (s *Shipment) CurrentHandler() kernel.Principal {
	return s.currentHandler
}

// ProductType returns the product category of the goods.
func (s *Shipment) ProductType() string {
	return s.productType
}

// TemperatureRange returns the configured [min, max] band.
func (s *Shipment) TemperatureRange() TemperatureRange {
	return s.tempRange
}

// CurrentTemp returns the most recently recorded temperature.
func (s *Shipment) CurrentTemp() int {
	return s.currentTemp
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// CreatedAt returns the logical timestamp of registration.
func (s *Shipment) CreatedAt() int64 {
	return s.createdAt
}

// UpdatedAt returns the logical timestamp of the last mutation.
func (s *Shipment) UpdatedAt() int64 {
	return s.updatedAt
}

// BreachCount returns the number of recorded breach events.
func (s *Shipment) BreachCount() int {
	return s.breachCount
}

// QualityScore returns the current quality score in [0, 100].
func (s *Shipment) QualityScore() int {
	return s.qualityScore
}

// EmergencyType returns the type of the most recent emergency report, or an
// empty string when none was reported.
func (s *Shipment) EmergencyType() string {
	return s.emergencyType
}

// EmergencyDescription returns the description of the most recent emergency
// report, or an empty string when none was reported.
func (s *Shipment) EmergencyDescription() string {
	return s.emergencyDescription
}

// IsHeldBy reports whether the principal currently holds custody.
func (s *Shipment) IsHeldBy(p kernel.Principal) bool {
	return s.currentHandler.IsEqual(p)
}

// IsTemperatureCompliant reports whether the current temperature lies within
// the configured range.
func (s *Shipment) IsTemperatureCompliant() bool {
	return s.tempRange.Contains(s.currentTemp)
}

// QualityAssessment derives the assessment band from the quality score.
func (s *Shipment) QualityAssessment() Assessment {
	return AssessQuality(s.qualityScore)
}

// RecordReading applies a temperature reading to the shipment.
//
// Returns whether the reading breached the configured range. On a breach the
// breach count is incremented and the quality score penalized (floored at
// MinQualityScore); compliant readings leave the score untouched. Readings
// against a completed shipment fail with ErrShipmentAlreadyCompleted. Custody
// and authorization checks are the caller's concern: the authorization set
// lives outside the aggregate.
func (s *Shipment) RecordReading(temperature int, at int64) (bool, error) {
	if err := s.status.ValidateLoggable(); err != nil {
		return false, err
	}

	breach := !s.tempRange.Contains(temperature)
	s.currentTemp = temperature
	if breach {
		s.breachCount++
		s.qualityScore = max(MinQualityScore, s.qualityScore-BreachPenalty)
	}
	s.touch(at)

	return breach, nil
}

// TransferCustody hands the shipment to a new handler.
//
// Only the current handler may transfer. A first transfer moves the status to
// InTransit; a shipment in emergency keeps its emergency status rather than
// having it silently cleared. Completed shipments reject the transfer with
// ErrShipmentAlreadyCompleted.
func (s *Shipment) TransferCustody(caller, newHandler kernel.Principal, at int64) error {
	if err := newHandler.Validate(); err != nil {
		return err
	}
	if !s.IsHeldBy(caller) {
		return errs.NewNotAuthorizedError(caller.String(), "transfer custody")
	}

	newStatus, err := s.status.Transfer()
	if err != nil {
		return err
	}

	s.currentHandler = newHandler
	s.status = newStatus
	s.touch(at)
	return nil
}

// CompleteDelivery marks the shipment as delivered.
//
// Only the destination principal may complete. Returns the quality score
// captured before the transition, which is the score the delivery is settled
// against. Completing twice fails with ErrShipmentAlreadyCompleted.
func (s *Shipment) CompleteDelivery(caller kernel.Principal, at int64) (int, error) {
	if !s.destination.IsEqual(caller) {
		return 0, errs.NewNotAuthorizedError(caller.String(), "complete delivery")
	}

	newStatus, err := s.status.Complete()
	if err != nil {
		return 0, err
	}

	finalScore := s.qualityScore
	s.status = newStatus
	s.touch(at)
	return finalScore, nil
}

// ReportEmergency flags the shipment as being in an emergency condition.
//
// The transition is unconditional for every status, including Completed:
// an emergency may surface after delivery. The quality score is not affected.
func (s *Shipment) ReportEmergency(emergencyType, description string, at int64) error {
	if emergencyType == "" {
		return errs.NewValueIsRequiredError("emergency type")
	}
	if len(emergencyType) > MaxEmergencyTypeLength {
		return errs.NewValueIsOutOfRangeError(
			"emergency type length", len(emergencyType), 1, MaxEmergencyTypeLength,
		)
	}
	if len(description) > MaxEmergencyDescriptionLength {
		return errs.NewValueIsOutOfRangeError(
			"emergency description length", len(description), 0, MaxEmergencyDescriptionLength,
		)
	}

	newStatus, err := s.status.ReportEmergency()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.emergencyType = emergencyType
	s.emergencyDescription = description
	s.touch(at)
	return nil
}

// touch refreshes the update timestamp. The execution environment supplies a
// monotonic logical clock; the floor keeps updatedAt >= createdAt regardless.
func (s *Shipment) touch(at int64) {
	if at > s.updatedAt {
		s.updatedAt = at
	}
}

func (s *Shipment) setID(id kernel.TrackingID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setParties(origin, destination kernel.Principal) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}
	s.origin = origin
	s.destination = destination
	return nil
}

func (s *Shipment) setProductType(productType string) error {
	if productType == "" {
		return errs.NewValueIsRequiredError("product type")
	}
	if len(productType) > MaxProductTypeLength {
		return errs.NewValueIsOutOfRangeError(
			"product type length", len(productType), 1, MaxProductTypeLength,
		)
	}
	s.productType = productType
	return nil
}

func (s *Shipment) setTemperatureRange(tempRange TemperatureRange) error {
	if err := tempRange.Validate(); err != nil {
		return err
	}
	s.tempRange = tempRange
	return nil
}
