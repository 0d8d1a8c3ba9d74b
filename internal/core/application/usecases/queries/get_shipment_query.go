// Package queries contains the read operations of the tracking core.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models built with direct SQL and never mutate state;
// calling them any number of times leaves the stores untouched.
package queries

import (
	"errors"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/shipment"
	"coldchain/internal/pkg/guard"
)

var (
	ErrGetShipmentQueryIsNotConstructed = errors.New(
		"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
	)
)

// GetShipmentQuery retrieves the full record of a single shipment.
// Unlike the other shipment queries, an unknown tracking ID yields an absent
// result (nil response), not an error.
type GetShipmentQuery struct {
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for the full shipment record.
func NewGetShipmentQuery(trackingID kernel.TrackingID) (GetShipmentQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}
	return GetShipmentQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// TrackingID returns the shipment identifier being queried.
func (q GetShipmentQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}

// GetShipmentQueryResponse is the full shipment read model.
type GetShipmentQueryResponse struct {
	TrackingID           string
	Origin               string
	Destination          string
	CurrentHandler       string
	ProductType          string
	MinTemp              int
	MaxTemp              int
	CurrentTemp          int
	Status               shipment.Status
	CreatedAt            int64
	UpdatedAt            int64
	BreachCount          int
	QualityScore         int
	EmergencyType        string
	EmergencyDescription string
}
