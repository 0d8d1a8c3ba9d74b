package handlerrepo

import (
	"context"
	"errors"

	"coldchain/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormHandlerRegistry implements HandlerRegistry using GORM.
type GormHandlerRegistry struct {
	db *gorm.DB
}

// NewGormHandlerRegistry creates a new GORM handler registry.
func NewGormHandlerRegistry(db *gorm.DB) *GormHandlerRegistry {
	return &GormHandlerRegistry{db: db}
}

// Grant marks the principal as authorized. Granting twice is a no-op: the
// upsert leaves the existing row in place.
func (r *GormHandlerRegistry) Grant(ctx context.Context, principal kernel.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	dto := AuthorizedHandlerDTO{
		Principal:  principal.String(),
		Authorized: true,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

// Revoke removes the principal's entry entirely. Revoking an unknown principal
// is a no-op.
func (r *GormHandlerRegistry) Revoke(ctx context.Context, principal kernel.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&AuthorizedHandlerDTO{}, "principal = ?", principal.String()).Error
}

// IsAuthorized reports whether the principal has an authorization entry.
// Unknown principals yield false, never an error.
func (r *GormHandlerRegistry) IsAuthorized(ctx context.Context, principal kernel.Principal) (bool, error) {
	if err := principal.Validate(); err != nil {
		return false, err
	}

	var dto AuthorizedHandlerDTO
	err := r.db.WithContext(ctx).
		First(&dto, "principal = ?", principal.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	return dto.Authorized, nil
}
