package commands_test

import (
	"context"
	"testing"

	"coldchain/internal/core/application/usecases/commands"
	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/shipment"
	"coldchain/internal/core/domain/model/templog"
	"coldchain/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.TrackingID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockTemperatureLogRepository struct{ mock.Mock }

func (m *MockTemperatureLogRepository) Append(ctx context.Context, entry templog.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockTemperatureLogRepository) Get(
	ctx context.Context, id kernel.TrackingID, seq uint64,
) (templog.Entry, error) {
	args := m.Called(ctx, id, seq)
	return args.Get(0).(templog.Entry), args.Error(1)
}

type MockHandlerRegistry struct{ mock.Mock }

func (m *MockHandlerRegistry) Grant(ctx context.Context, principal kernel.Principal) error {
	args := m.Called(ctx, principal)
	return args.Error(0)
}
func (m *MockHandlerRegistry) Revoke(ctx context.Context, principal kernel.Principal) error {
	args := m.Called(ctx, principal)
	return args.Error(0)
}
func (m *MockHandlerRegistry) IsAuthorized(ctx context.Context, principal kernel.Principal) (bool, error) {
	args := m.Called(ctx, principal)
	return args.Bool(0), args.Error(1)
}

type MockSequenceCounter struct{ mock.Mock }

func (m *MockSequenceCounter) Next(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockShipmentUoW struct{ mockTx }

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockRegistryUoW struct{ mockTx }

func (m *MockRegistryUoW) HandlerRegistry() ports.HandlerRegistry {
	args := m.Called()
	return args.Get(0).(ports.HandlerRegistry)
}

type MockRegistryUoWFactory struct{ mock.Mock }

func (m *MockRegistryUoWFactory) Create() commands.RegistryUoW {
	args := m.Called()
	return args.Get(0).(commands.RegistryUoW)
}

type MockTrackingUoW struct{ mockTx }

func (m *MockTrackingUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}
func (m *MockTrackingUoW) TemperatureLogRepository() ports.TemperatureLogRepository {
	args := m.Called()
	return args.Get(0).(ports.TemperatureLogRepository)
}
func (m *MockTrackingUoW) SequenceCounter() ports.SequenceCounter {
	args := m.Called()
	return args.Get(0).(ports.SequenceCounter)
}

type MockTrackingUoWFactory struct{ mock.Mock }

func (m *MockTrackingUoWFactory) Create() commands.TrackingUoW {
	args := m.Called()
	return args.Get(0).(commands.TrackingUoW)
}

type MockUoW struct{ mockTx }

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}
func (m *MockUoW) TemperatureLogRepository() ports.TemperatureLogRepository {
	args := m.Called()
	return args.Get(0).(ports.TemperatureLogRepository)
}
func (m *MockUoW) HandlerRegistry() ports.HandlerRegistry {
	args := m.Called()
	return args.Get(0).(ports.HandlerRegistry)
}
func (m *MockUoW) SequenceCounter() ports.SequenceCounter {
	args := m.Called()
	return args.Get(0).(ports.SequenceCounter)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func mustTrackingID(s string) kernel.TrackingID {
	id, err := kernel.NewTrackingID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func mustPrincipal(s string) kernel.Principal {
	p, err := kernel.NewPrincipal(s)
	if err != nil {
		panic(err)
	}
	return p
}

func mustRange(minTemp, maxTemp int) shipment.TemperatureRange {
	r, err := shipment.NewTemperatureRange(minTemp, maxTemp)
	if err != nil {
		panic(err)
	}
	return r
}

// newStoredShipment builds a shipment as the repository would return it:
// registered by producer-1 for pharmacy-9, range [2, 8], current temp 5.
func newStoredShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	aggregate, err := shipment.NewShipment(
		mustTrackingID("SHIP-001"),
		mustPrincipal("producer-1"),
		mustPrincipal("pharmacy-9"),
		"Vaccines",
		mustRange(2, 8),
		5,
		100,
	)
	if err != nil {
		t.Fatalf("newStoredShipment: %v", err)
	}
	return aggregate
}
