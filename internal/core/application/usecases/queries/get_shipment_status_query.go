package queries

import (
	"errors"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/shipment"
	"coldchain/internal/pkg/guard"
)

var (
	ErrGetShipmentStatusQueryIsNotConstructed = errors.New(
		"GetShipmentStatusQuery must be created via NewGetShipmentStatusQuery constructor",
	)
)

// GetShipmentStatusQuery retrieves the tracking summary of a shipment:
// status, current custody, current temperature, quality score, and the
// timestamp of the last update.
type GetShipmentStatusQuery struct {
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewGetShipmentStatusQuery creates a query for the tracking summary.
func NewGetShipmentStatusQuery(trackingID kernel.TrackingID) (GetShipmentStatusQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return GetShipmentStatusQuery{}, err
	}
	return GetShipmentStatusQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentStatusQueryIsNotConstructed)
}

// TrackingID returns the shipment identifier being queried.
func (q GetShipmentStatusQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}

// GetShipmentStatusQueryResponse is the tracking summary read model.
type GetShipmentStatusQueryResponse struct {
	Status         shipment.Status
	CurrentHandler string
	CurrentTemp    int
	QualityScore   int
	LastUpdated    int64
}
