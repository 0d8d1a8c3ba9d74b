package kernel

import (
	"fmt"
	"strings"

	"coldchain/internal/pkg/errs"
)

// MaxTrackingIDLength bounds the length of a shipment identifier.
const MaxTrackingIDLength = 64

// TrackingID is the caller-supplied identifier under which a shipment is
// registered. It is unique within the shipment registry and never changes for
// the lifetime of the shipment.
//
// The zero value is invalid; use NewTrackingID.
type TrackingID struct {
	id string
}

// NewTrackingID creates a TrackingID from its string form.
// The string must be non-empty after trimming and at most MaxTrackingIDLength runes.
func NewTrackingID(id string) (TrackingID, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return TrackingID{}, errs.NewValueIsRequiredError("tracking ID")
	}
	if len(id) > MaxTrackingIDLength {
		return TrackingID{}, errs.NewValueIsOutOfRangeError("tracking ID length", len(id), 1, MaxTrackingIDLength)
	}
	return TrackingID{id: id}, nil
}

// String returns the identifier string.
func (t TrackingID) String() string {
	return t.id
}

// IsEqual reports whether two tracking IDs identify the same shipment.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.id == other.id
}

// Validate returns an error if the tracking ID is a zero value.
func (t TrackingID) Validate() error {
	if t.id == "" {
		return errs.NewValueIsRequiredErrorWithCause(
			"tracking ID",
			fmt.Errorf("TrackingID must be created via NewTrackingID"),
		)
	}
	return nil
}
