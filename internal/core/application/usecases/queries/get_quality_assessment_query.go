package queries

import (
	"errors"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/shipment"
	"coldchain/internal/pkg/guard"
)

var (
	ErrGetQualityAssessmentQueryIsNotConstructed = errors.New(
		"GetQualityAssessmentQuery must be created via NewGetQualityAssessmentQuery constructor",
	)
)

// GetQualityAssessmentQuery retrieves the quality view of a shipment:
// score, breach count, status, and the derived assessment band.
type GetQualityAssessmentQuery struct {
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewGetQualityAssessmentQuery creates a query for the quality view.
func NewGetQualityAssessmentQuery(trackingID kernel.TrackingID) (GetQualityAssessmentQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return GetQualityAssessmentQuery{}, err
	}
	return GetQualityAssessmentQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetQualityAssessmentQuery) Validate() error {
	return q.guard.Validate(ErrGetQualityAssessmentQueryIsNotConstructed)
}

// TrackingID returns the shipment identifier being queried.
func (q GetQualityAssessmentQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}

// GetQualityAssessmentQueryResponse is the quality view read model.
// Assessment is derived from the score at read time; it is never stored.
type GetQualityAssessmentQueryResponse struct {
	QualityScore int
	BreachCount  int
	Status       shipment.Status
	Assessment   shipment.Assessment
}
