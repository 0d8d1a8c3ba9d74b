package queries

import (
	"context"
	"database/sql"
	"errors"

	"coldchain/internal/core/domain/model/shipment"
	"coldchain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetQualityAssessmentQueryHandler retrieves shipment quality views.
type GetQualityAssessmentQueryHandler struct {
	db *gorm.DB
}

// NewGetQualityAssessmentQueryHandler creates a handler for quality views.
func NewGetQualityAssessmentQueryHandler(db *gorm.DB) GetQualityAssessmentQueryHandler {
	return GetQualityAssessmentQueryHandler{db: db}
}

// Handle executes the query. Fails with a not-found error for unknown IDs.
func (h GetQualityAssessmentQueryHandler) Handle(
	ctx context.Context,
	query GetQualityAssessmentQuery,
) (GetQualityAssessmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQualityAssessmentQueryResponse{}, err
	}

	var resp GetQualityAssessmentQueryResponse
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			quality_score,
			breach_count,
			status
		FROM shipments
		WHERE id = ?
	`, query.TrackingID().String()).Row()

	err := row.Scan(&resp.QualityScore, &resp.BreachCount, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetQualityAssessmentQueryResponse{}, errs.NewObjectNotFoundError(
				"shipment", query.TrackingID().String(),
			)
		}
		return GetQualityAssessmentQueryResponse{}, err
	}

	resp.Status = shipment.Status(status)
	resp.Assessment = shipment.AssessQuality(resp.QualityScore)
	return resp, nil
}
