package commands

import (
	"errors"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/pkg/guard"
)

var (
	ErrGrantHandlerCommandIsNotConstructed = errors.New(
		"GrantHandlerCommand must be created via NewGrantHandlerCommand constructor",
	)
)

// GrantHandlerCommand represents a request to add a principal to the handler
// authorization set. Only the registry owner may grant.
type GrantHandlerCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.Principal
	principal kernel.Principal

	guard guard.ConstructorGuard
}

// NewGrantHandlerCommand creates a command to authorize a handler principal.
func NewGrantHandlerCommand(caller, principal kernel.Principal) (GrantHandlerCommand, error) {
	cmd := GrantHandlerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setPrincipal(principal),
	); err != nil {
		return GrantHandlerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GrantHandlerCommand) Validate() error {
	return c.guard.Validate(ErrGrantHandlerCommandIsNotConstructed)
}

// Caller returns the principal requesting the grant.
func (c GrantHandlerCommand) Caller() kernel.Principal {
	return c.caller
}

// Principal returns the principal being authorized.
func (c GrantHandlerCommand) Principal() kernel.Principal {
	return c.principal
}

func (c *GrantHandlerCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *GrantHandlerCommand) setPrincipal(principal kernel.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}
