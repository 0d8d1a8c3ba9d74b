package queries

import (
	"context"
	"database/sql"
	"errors"

	"coldchain/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves full shipment records from the database.
// Uses direct SQL queries for the read side of the CQRS split.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for full shipment retrieval.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query. An unknown tracking ID yields (nil, nil).
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (*GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var resp GetShipmentQueryResponse
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			origin,
			destination,
			current_handler,
			product_type,
			min_temp,
			max_temp,
			current_temp,
			status,
			created_at,
			updated_at,
			breach_count,
			quality_score,
			emergency_type,
			emergency_description
		FROM shipments
		WHERE id = ?
	`, query.TrackingID().String()).Row()

	err := row.Scan(
		&resp.TrackingID,
		&resp.Origin,
		&resp.Destination,
		&resp.CurrentHandler,
		&resp.ProductType,
		&resp.MinTemp,
		&resp.MaxTemp,
		&resp.CurrentTemp,
		&status,
		&resp.CreatedAt,
		&resp.UpdatedAt,
		&resp.BreachCount,
		&resp.QualityScore,
		&resp.EmergencyType,
		&resp.EmergencyDescription,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	resp.Status = shipment.Status(status)
	return &resp, nil
}
