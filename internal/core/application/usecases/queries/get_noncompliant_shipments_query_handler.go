package queries

import (
	"context"

	"coldchain/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetNonCompliantShipmentsQueryHandler finds active shipments currently
// outside their safe temperature range.
type GetNonCompliantShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetNonCompliantShipmentsQueryHandler creates a non-compliance report handler.
func NewGetNonCompliantShipmentsQueryHandler(db *gorm.DB) GetNonCompliantShipmentsQueryHandler {
	return GetNonCompliantShipmentsQueryHandler{db: db}
}

// Handle executes the query. Completed shipments are excluded: their readings
// are frozen, so current temperature no longer carries meaning.
func (h GetNonCompliantShipmentsQueryHandler) Handle(
	ctx context.Context,
	_ GetNonCompliantShipmentsQuery,
) ([]NonCompliantShipment, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			current_handler,
			current_temp,
			min_temp,
			max_temp,
			quality_score
		FROM shipments
		WHERE status != ?
		  AND current_temp NOT BETWEEN min_temp AND max_temp
		ORDER BY id
	`, int(shipment.Completed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []NonCompliantShipment
	for rows.Next() {
		var row NonCompliantShipment
		err := rows.Scan(
			&row.TrackingID,
			&row.CurrentHandler,
			&row.CurrentTemp,
			&row.MinTemp,
			&row.MaxTemp,
			&row.QualityScore,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
