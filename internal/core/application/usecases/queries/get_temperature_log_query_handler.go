package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"coldchain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetTemperatureLogQueryHandler retrieves single temperature log entries.
// The breach flag is derived by comparing the reading against the shipment's
// configured range; it is not stored on the entry.
type GetTemperatureLogQueryHandler struct {
	db *gorm.DB
}

// NewGetTemperatureLogQueryHandler creates a handler for log entry retrieval.
func NewGetTemperatureLogQueryHandler(db *gorm.DB) GetTemperatureLogQueryHandler {
	return GetTemperatureLogQueryHandler{db: db}
}

// Handle executes the query. Fails with a not-found error when no entry exists
// under the (shipment ID, sequence) key.
func (h GetTemperatureLogQueryHandler) Handle(
	ctx context.Context,
	query GetTemperatureLogQuery,
) (GetTemperatureLogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTemperatureLogQueryResponse{}, err
	}

	var resp GetTemperatureLogQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			l.shipment_id,
			l.seq,
			l.temperature,
			l.recorded_at,
			l.location,
			l.handler,
			l.sensor_id,
			(l.temperature < s.min_temp OR l.temperature > s.max_temp) AS is_breach
		FROM temperature_logs l
		JOIN shipments s ON s.id = l.shipment_id
		WHERE l.shipment_id = ? AND l.seq = ?
	`, query.TrackingID().String(), query.Seq()).Row()

	err := row.Scan(
		&resp.TrackingID,
		&resp.Seq,
		&resp.Temperature,
		&resp.RecordedAt,
		&resp.Location,
		&resp.Handler,
		&resp.SensorID,
		&resp.IsBreach,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetTemperatureLogQueryResponse{}, errs.NewObjectNotFoundError(
				"temperature log entry",
				fmt.Sprintf("%s/%d", query.TrackingID(), query.Seq()),
			)
		}
		return GetTemperatureLogQueryResponse{}, err
	}

	return resp, nil
}
