package queries

import (
	"errors"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/pkg/guard"
)

var (
	ErrIsAuthorizedHandlerQueryIsNotConstructed = errors.New(
		"IsAuthorizedHandlerQuery must be created via NewIsAuthorizedHandlerQuery constructor",
	)
)

// IsAuthorizedHandlerQuery checks whether a principal appears in the handler
// authorization set. Lookup is default-deny: an absent principal is simply not
// authorized, never an error.
type IsAuthorizedHandlerQuery struct {
	principal kernel.Principal

	guard guard.ConstructorGuard
}

// NewIsAuthorizedHandlerQuery creates an authorization check query.
func NewIsAuthorizedHandlerQuery(principal kernel.Principal) (IsAuthorizedHandlerQuery, error) {
	if err := principal.Validate(); err != nil {
		return IsAuthorizedHandlerQuery{}, err
	}
	return IsAuthorizedHandlerQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q IsAuthorizedHandlerQuery) Validate() error {
	return q.guard.Validate(ErrIsAuthorizedHandlerQueryIsNotConstructed)
}

// Principal returns the principal being checked.
func (q IsAuthorizedHandlerQuery) Principal() kernel.Principal {
	return q.principal
}
