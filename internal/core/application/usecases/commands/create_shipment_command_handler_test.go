package commands_test

import (
	"errors"
	"testing"

	"coldchain/internal/core/application/usecases/commands"
	"coldchain/internal/core/domain/model/templog"
	"coldchain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateShipmentCommand(t *testing.T) commands.CreateShipmentCommand {
	t.Helper()
	cmd, err := commands.NewCreateShipmentCommand(
		mustTrackingID("SHIP-001"),
		mustPrincipal("producer-1"),
		mustPrincipal("pharmacy-9"),
		"Vaccines",
		2, 8, 5,
		100,
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateShipmentCommand(t)

	repo := new(MockShipmentRepository)
	logRepo := new(MockTemperatureLogRepository)
	counter := new(MockSequenceCounter)
	uow := new(MockTrackingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SequenceCounter").Return(counter).Once(),
		counter.On("Next", ctx).Return(uint64(1), nil).Once(),
		uow.On("TemperatureLogRepository").Return(logRepo).Once(),
		logRepo.On("Append", mock.Anything, mock.AnythingOfType("templog.Entry")).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	logRepo.AssertExpectations(t)
	counter.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_OriginEntryUsesReservedLocation(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateShipmentCommand(t)

	repo := new(MockShipmentRepository)
	logRepo := new(MockTemperatureLogRepository)
	counter := new(MockSequenceCounter)
	uow := new(MockTrackingUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("SequenceCounter").Return(counter)
	counter.On("Next", ctx).Return(uint64(7), nil)
	uow.On("TemperatureLogRepository").Return(logRepo)
	logRepo.On("Append", mock.Anything, mock.MatchedBy(func(e templog.Entry) bool {
		return e.Seq() == 7 &&
			e.Location() == templog.OriginLocation &&
			e.SensorID() == templog.OriginSensorID &&
			e.Temperature() == 5
	})).Return(nil)
	uow.On("ShipmentRepository").Return(repo)
	repo.On("Add", mock.Anything, mock.Anything).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewCreateShipmentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	logRepo.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateShipmentCommand{} // not constructed properly
	factory := new(MockTrackingUoWFactory)
	h := commands.NewCreateShipmentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateShipmentCommandIsNotConstructed)
}

func TestCreateShipmentCommandHandler_Handle_InitialTempOutOfRange(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand(
		mustTrackingID("SHIP-001"),
		mustPrincipal("producer-1"),
		mustPrincipal("pharmacy-9"),
		"Vaccines",
		2, 8, 15,
		100,
	)
	require.NoError(t, err)

	uow := new(MockTrackingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	uow.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_DuplicateTrackingID(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateShipmentCommand(t)

	repo := new(MockShipmentRepository)
	logRepo := new(MockTemperatureLogRepository)
	counter := new(MockSequenceCounter)
	uow := new(MockTrackingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SequenceCounter").Return(counter).Once(),
		counter.On("Next", ctx).Return(uint64(1), nil).Once(),
		uow.On("TemperatureLogRepository").Return(logRepo).Once(),
		logRepo.On("Append", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.Anything).
			Return(errs.NewObjectAlreadyExistsError("shipment", "SHIP-001")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateShipmentCommand(t)

	repo := new(MockShipmentRepository)
	logRepo := new(MockTemperatureLogRepository)
	counter := new(MockSequenceCounter)
	uow := new(MockTrackingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SequenceCounter").Return(counter).Once(),
		counter.On("Next", ctx).Return(uint64(1), nil).Once(),
		uow.On("TemperatureLogRepository").Return(logRepo).Once(),
		logRepo.On("Append", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
