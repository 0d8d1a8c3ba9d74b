package queries

import (
	"context"
	"database/sql"
	"errors"

	"coldchain/internal/pkg/errs"

	"gorm.io/gorm"
)

// IsTemperatureCompliantQueryHandler checks current-temperature compliance.
type IsTemperatureCompliantQueryHandler struct {
	db *gorm.DB
}

// NewIsTemperatureCompliantQueryHandler creates a compliance check handler.
func NewIsTemperatureCompliantQueryHandler(db *gorm.DB) IsTemperatureCompliantQueryHandler {
	return IsTemperatureCompliantQueryHandler{db: db}
}

// Handle executes the check. Fails with a not-found error for unknown IDs.
func (h IsTemperatureCompliantQueryHandler) Handle(
	ctx context.Context,
	query IsTemperatureCompliantQuery,
) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	var compliant bool

	row := h.db.WithContext(ctx).Raw(`
		SELECT current_temp BETWEEN min_temp AND max_temp
		FROM shipments
		WHERE id = ?
	`, query.TrackingID().String()).Row()

	if err := row.Scan(&compliant); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, errs.NewObjectNotFoundError("shipment", query.TrackingID().String())
		}
		return false, err
	}

	return compliant, nil
}
