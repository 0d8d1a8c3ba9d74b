package commands

import (
	"errors"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/pkg/guard"
)

var (
	ErrRevokeHandlerCommandIsNotConstructed = errors.New(
		"RevokeHandlerCommand must be created via NewRevokeHandlerCommand constructor",
	)
)

// RevokeHandlerCommand represents a request to remove a principal from the
// handler authorization set. Only the registry owner may revoke. Revocation
// deletes the entry entirely; absence is equivalent to not authorized.
type RevokeHandlerCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.Principal
	principal kernel.Principal

	guard guard.ConstructorGuard
}

// NewRevokeHandlerCommand creates a command to revoke a handler authorization.
func NewRevokeHandlerCommand(caller, principal kernel.Principal) (RevokeHandlerCommand, error) {
	cmd := RevokeHandlerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setPrincipal(principal),
	); err != nil {
		return RevokeHandlerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RevokeHandlerCommand) Validate() error {
	return c.guard.Validate(ErrRevokeHandlerCommandIsNotConstructed)
}

// Caller returns the principal requesting the revocation.
func (c RevokeHandlerCommand) Caller() kernel.Principal {
	return c.caller
}

// Principal returns the principal losing authorization.
func (c RevokeHandlerCommand) Principal() kernel.Principal {
	return c.principal
}

func (c *RevokeHandlerCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *RevokeHandlerCommand) setPrincipal(principal kernel.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}
