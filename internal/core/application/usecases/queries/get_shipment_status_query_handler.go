package queries

import (
	"context"
	"database/sql"
	"errors"

	"coldchain/internal/core/domain/model/shipment"
	"coldchain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentStatusQueryHandler retrieves shipment tracking summaries.
type GetShipmentStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentStatusQueryHandler creates a handler for tracking summaries.
func NewGetShipmentStatusQueryHandler(db *gorm.DB) GetShipmentStatusQueryHandler {
	return GetShipmentStatusQueryHandler{db: db}
}

// Handle executes the query. Fails with a not-found error for unknown IDs.
func (h GetShipmentStatusQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentStatusQuery,
) (GetShipmentStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentStatusQueryResponse{}, err
	}

	var resp GetShipmentStatusQueryResponse
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			current_handler,
			current_temp,
			quality_score,
			updated_at
		FROM shipments
		WHERE id = ?
	`, query.TrackingID().String()).Row()

	err := row.Scan(
		&status,
		&resp.CurrentHandler,
		&resp.CurrentTemp,
		&resp.QualityScore,
		&resp.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetShipmentStatusQueryResponse{}, errs.NewObjectNotFoundError(
				"shipment", query.TrackingID().String(),
			)
		}
		return GetShipmentStatusQueryResponse{}, err
	}

	resp.Status = shipment.Status(status)
	return resp, nil
}
