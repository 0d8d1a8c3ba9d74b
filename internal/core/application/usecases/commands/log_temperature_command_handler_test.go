package commands_test

import (
	"testing"

	"coldchain/internal/core/application/usecases/commands"
	"coldchain/internal/core/domain/model/shipment"
	"coldchain/internal/core/domain/model/templog"
	"coldchain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLogTemperatureCommand(t *testing.T, caller string, temperature int) commands.LogTemperatureCommand {
	t.Helper()
	cmd, err := commands.NewLogTemperatureCommand(
		mustTrackingID("SHIP-001"),
		mustPrincipal(caller),
		temperature,
		"Truck 12",
		"SNS-1",
		400,
	)
	require.NoError(t, err)
	return cmd
}

func TestLogTemperatureCommandHandler_Handle_SuccessByCurrentHandler(t *testing.T) {
	ctx := t.Context()
	cmd := newLogTemperatureCommand(t, "producer-1", 6)
	aggregate := newStoredShipment(t)

	repo := new(MockShipmentRepository)
	logRepo := new(MockTemperatureLogRepository)
	counter := new(MockSequenceCounter)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cmd.TrackingID()).Return(aggregate, nil).Once(),
		uow.On("SequenceCounter").Return(counter).Once(),
		counter.On("Next", ctx).Return(uint64(42), nil).Once(),
		uow.On("TemperatureLogRepository").Return(logRepo).Once(),
		logRepo.On("Append", mock.Anything, mock.AnythingOfType("templog.Entry")).Return(nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLogTemperatureCommandHandler(factory)
	seq, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), seq)
	assert.Equal(t, 6, aggregate.CurrentTemp())
	assert.Equal(t, shipment.InitialQualityScore, aggregate.QualityScore())
	repo.AssertExpectations(t)
	logRepo.AssertExpectations(t)
	counter.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestLogTemperatureCommandHandler_Handle_SuccessByAuthorizedHandler(t *testing.T) {
	ctx := t.Context()
	cmd := newLogTemperatureCommand(t, "carrier-acme", 6)
	aggregate := newStoredShipment(t)

	repo := new(MockShipmentRepository)
	logRepo := new(MockTemperatureLogRepository)
	registry := new(MockHandlerRegistry)
	counter := new(MockSequenceCounter)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cmd.TrackingID()).Return(aggregate, nil).Once(),
		uow.On("HandlerRegistry").Return(registry).Once(),
		registry.On("IsAuthorized", mock.Anything, cmd.Caller()).Return(true, nil).Once(),
		uow.On("SequenceCounter").Return(counter).Once(),
		counter.On("Next", ctx).Return(uint64(43), nil).Once(),
		uow.On("TemperatureLogRepository").Return(logRepo).Once(),
		logRepo.On("Append", mock.Anything, mock.AnythingOfType("templog.Entry")).Return(nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLogTemperatureCommandHandler(factory)
	seq, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, uint64(43), seq)
	registry.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestLogTemperatureCommandHandler_Handle_BreachCommitsThenWarns(t *testing.T) {
	ctx := t.Context()
	cmd := newLogTemperatureCommand(t, "producer-1", 12)
	aggregate := newStoredShipment(t)

	repo := new(MockShipmentRepository)
	logRepo := new(MockTemperatureLogRepository)
	counter := new(MockSequenceCounter)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cmd.TrackingID()).Return(aggregate, nil).Once(),
		uow.On("SequenceCounter").Return(counter).Once(),
		counter.On("Next", ctx).Return(uint64(44), nil).Once(),
		uow.On("TemperatureLogRepository").Return(logRepo).Once(),
		logRepo.On("Append", mock.Anything, mock.MatchedBy(func(e templog.Entry) bool {
			return e.Temperature() == 12 && e.Seq() == 44
		})).Return(nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLogTemperatureCommandHandler(factory)
	seq, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, shipment.ErrTemperatureBreach)
	assert.Equal(t, uint64(44), seq, "breach still assigns a sequence number")
	assert.Equal(t, 1, aggregate.BreachCount())
	assert.Equal(t, 90, aggregate.QualityScore())
	uow.AssertExpectations(t)
}

func TestLogTemperatureCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.LogTemperatureCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := commands.NewLogTemperatureCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrLogTemperatureCommandIsNotConstructed)
}

func TestLogTemperatureCommandHandler_Handle_NotAuthorized(t *testing.T) {
	ctx := t.Context()
	cmd := newLogTemperatureCommand(t, "intruder", 6)
	aggregate := newStoredShipment(t)

	repo := new(MockShipmentRepository)
	registry := new(MockHandlerRegistry)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cmd.TrackingID()).Return(aggregate, nil).Once(),
		uow.On("HandlerRegistry").Return(registry).Once(),
		registry.On("IsAuthorized", mock.Anything, cmd.Caller()).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLogTemperatureCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.Equal(t, 5, aggregate.CurrentTemp(), "reading must not be applied")
	registry.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestLogTemperatureCommandHandler_Handle_CompletedShipment(t *testing.T) {
	ctx := t.Context()
	cmd := newLogTemperatureCommand(t, "producer-1", 6)
	aggregate := newStoredShipment(t)
	_, err := aggregate.CompleteDelivery(mustPrincipal("pharmacy-9"), 150)
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cmd.TrackingID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLogTemperatureCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, shipment.ErrShipmentAlreadyCompleted)
	uow.AssertExpectations(t)
}

func TestLogTemperatureCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd := newLogTemperatureCommand(t, "producer-1", 6)

	repo := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cmd.TrackingID()).
			Return(nil, errs.NewObjectNotFoundError("shipment", "SHIP-001")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLogTemperatureCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
