package commands

import (
	"context"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/pkg/errs"
)

// GrantHandlerCommandHandler handles authorization grants.
// The registry owner is a distinguished principal fixed at system
// initialization; only the owner may modify the authorization set.
type GrantHandlerCommandHandler struct {
	owner      kernel.Principal
	uowFactory RegistryUoWFactory
}

// NewGrantHandlerCommandHandler creates a handler for authorization grants.
func NewGrantHandlerCommandHandler(
	owner kernel.Principal,
	uowFactory RegistryUoWFactory,
) GrantHandlerCommandHandler {
	return GrantHandlerCommandHandler{
		owner:      owner,
		uowFactory: uowFactory,
	}
}

// Handle processes the grant command. Fails with not-authorized when the
// caller is not the registry owner.
func (h *GrantHandlerCommandHandler) Handle(ctx context.Context, cmd GrantHandlerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Caller().IsEqual(h.owner) {
		return errs.NewNotAuthorizedError(cmd.Caller().String(), "grant handler authorization")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.HandlerRegistry().Grant(ctx, cmd.Principal()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
