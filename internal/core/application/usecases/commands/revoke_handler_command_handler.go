package commands

import (
	"context"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/pkg/errs"
)

// RevokeHandlerCommandHandler handles authorization revocations.
type RevokeHandlerCommandHandler struct {
	owner      kernel.Principal
	uowFactory RegistryUoWFactory
}

// NewRevokeHandlerCommandHandler creates a handler for authorization revocations.
func NewRevokeHandlerCommandHandler(
	owner kernel.Principal,
	uowFactory RegistryUoWFactory,
) RevokeHandlerCommandHandler {
	return RevokeHandlerCommandHandler{
		owner:      owner,
		uowFactory: uowFactory,
	}
}

// Handle processes the revoke command. Fails with not-authorized when the
// caller is not the registry owner. Revoking an unknown principal is a no-op.
func (h *RevokeHandlerCommandHandler) Handle(ctx context.Context, cmd RevokeHandlerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Caller().IsEqual(h.owner) {
		return errs.NewNotAuthorizedError(cmd.Caller().String(), "revoke handler authorization")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.HandlerRegistry().Revoke(ctx, cmd.Principal()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
