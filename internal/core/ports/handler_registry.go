package ports

import (
	"context"

	"coldchain/internal/core/domain/model/kernel"
)

// HandlerRegistry is the authorization set of principals allowed to log
// temperatures and report emergencies independently of current custody.
// Lookup is default-deny: a principal without an entry is not authorized.
type HandlerRegistry interface {
	// Grant marks the principal as authorized. Granting an already authorized
	// principal is a no-op.
	Grant(ctx context.Context, principal kernel.Principal) error

	// Revoke removes the principal's entry entirely; absence is equivalent to
	// not authorized. Revoking an unknown principal is a no-op.
	Revoke(ctx context.Context, principal kernel.Principal) error

	// IsAuthorized reports whether the principal has an authorization entry.
	// Unknown principals yield false, never an error.
	IsAuthorized(ctx context.Context, principal kernel.Principal) (bool, error)
}
