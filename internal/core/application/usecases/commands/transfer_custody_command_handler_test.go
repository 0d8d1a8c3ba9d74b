package commands_test

import (
	"testing"

	"coldchain/internal/core/application/usecases/commands"
	"coldchain/internal/core/domain/model/shipment"
	"coldchain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTransferCustodyCommand(t *testing.T, caller string) commands.TransferCustodyCommand {
	t.Helper()
	cmd, err := commands.NewTransferCustodyCommand(
		mustTrackingID("SHIP-001"),
		mustPrincipal(caller),
		mustPrincipal("carrier-acme"),
		200,
	)
	require.NoError(t, err)
	return cmd
}

func TestTransferCustodyCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newTransferCustodyCommand(t, "producer-1")
	aggregate := newStoredShipment(t)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cmd.TrackingID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransferCustodyCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, aggregate.IsHeldBy(mustPrincipal("carrier-acme")))
	assert.Equal(t, shipment.InTransit, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestTransferCustodyCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.TransferCustodyCommand{} // not constructed properly
	factory := new(MockShipmentUoWFactory)
	h := commands.NewTransferCustodyCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTransferCustodyCommandIsNotConstructed)
}

func TestTransferCustodyCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd := newTransferCustodyCommand(t, "producer-1")

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cmd.TrackingID()).
			Return(nil, errs.NewObjectNotFoundError("shipment", "SHIP-001")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransferCustodyCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestTransferCustodyCommandHandler_Handle_CallerNotCurrentHandler(t *testing.T) {
	ctx := t.Context()
	cmd := newTransferCustodyCommand(t, "intruder")
	aggregate := newStoredShipment(t)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cmd.TrackingID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransferCustodyCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.True(t, aggregate.IsHeldBy(mustPrincipal("producer-1")), "custody must not change")
	uow.AssertExpectations(t)
}

func TestTransferCustodyCommandHandler_Handle_AlreadyCompleted(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredShipment(t)
	_, err := aggregate.CompleteDelivery(mustPrincipal("pharmacy-9"), 150)
	require.NoError(t, err)

	// Completion leaves custody with the origin, so the origin is the only
	// principal that gets past the custody check.
	cmd := newTransferCustodyCommand(t, "producer-1")

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cmd.TrackingID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransferCustodyCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, shipment.ErrShipmentAlreadyCompleted)
	uow.AssertExpectations(t)
}
