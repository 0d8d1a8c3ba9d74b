package templogrepo

import (
	"context"
	"errors"
	"fmt"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/templog"
	"coldchain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTemperatureLogRepository implements TemperatureLogRepository using GORM.
type GormTemperatureLogRepository struct {
	db *gorm.DB
}

// NewGormTemperatureLogRepository creates a new GORM temperature log repository.
func NewGormTemperatureLogRepository(db *gorm.DB) *GormTemperatureLogRepository {
	return &GormTemperatureLogRepository{db: db}
}

// Append saves a new log entry. Sequence numbers are globally unique, so a
// duplicate key means the counter was bypassed; that is a programming error
// surfaced as already-exists.
func (r *GormTemperatureLogRepository) Append(ctx context.Context, entry templog.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"temperature log entry",
				fmt.Sprintf("%s/%d", dto.ShipmentID, dto.Seq),
				err,
			)
		}
		return err
	}

	return nil
}

// Get retrieves a single log entry by shipment ID and sequence number.
func (r *GormTemperatureLogRepository) Get(
	ctx context.Context,
	id kernel.TrackingID,
	seq uint64,
) (templog.Entry, error) {
	if err := id.Validate(); err != nil {
		return templog.Entry{}, err
	}

	var dto EntryDTO
	err := r.db.WithContext(ctx).
		First(&dto, "shipment_id = ? AND seq = ?", id.String(), seq).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return templog.Entry{}, errs.NewObjectNotFoundError(
				"temperature log entry",
				fmt.Sprintf("%s/%d", id.String(), seq),
			)
		}
		return templog.Entry{}, err
	}

	return toDomain(dto)
}
