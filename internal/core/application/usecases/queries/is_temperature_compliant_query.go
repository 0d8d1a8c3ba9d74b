package queries

import (
	"errors"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/pkg/guard"
)

var (
	ErrIsTemperatureCompliantQueryIsNotConstructed = errors.New(
		"IsTemperatureCompliantQuery must be created via NewIsTemperatureCompliantQuery constructor",
	)
)

// IsTemperatureCompliantQuery checks whether a shipment's current temperature
// lies within its configured [min, max] band.
type IsTemperatureCompliantQuery struct {
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewIsTemperatureCompliantQuery creates a compliance check query.
func NewIsTemperatureCompliantQuery(trackingID kernel.TrackingID) (IsTemperatureCompliantQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return IsTemperatureCompliantQuery{}, err
	}
	return IsTemperatureCompliantQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q IsTemperatureCompliantQuery) Validate() error {
	return q.guard.Validate(ErrIsTemperatureCompliantQueryIsNotConstructed)
}

// TrackingID returns the shipment identifier being queried.
func (q IsTemperatureCompliantQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}
