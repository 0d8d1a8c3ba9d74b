package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// IsAuthorizedHandlerQueryHandler answers handler authorization checks.
type IsAuthorizedHandlerQueryHandler struct {
	db *gorm.DB
}

// NewIsAuthorizedHandlerQueryHandler creates an authorization check handler.
func NewIsAuthorizedHandlerQueryHandler(db *gorm.DB) IsAuthorizedHandlerQueryHandler {
	return IsAuthorizedHandlerQueryHandler{db: db}
}

// Handle executes the check. Principals without a record are not authorized.
func (h IsAuthorizedHandlerQueryHandler) Handle(
	ctx context.Context,
	query IsAuthorizedHandlerQuery,
) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	var authorized bool

	row := h.db.WithContext(ctx).Raw(`
		SELECT authorized
		FROM authorized_handlers
		WHERE principal = ?
	`, query.Principal().String()).Row()

	if err := row.Scan(&authorized); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return authorized, nil
}
