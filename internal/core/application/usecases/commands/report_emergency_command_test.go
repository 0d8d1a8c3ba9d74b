package commands_test

import (
	"testing"

	"coldchain/internal/core/application/usecases/commands"
	"coldchain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReportEmergencyCommand_ValidInput(t *testing.T) {
	id := mustTrackingID("SHIP-001")
	carrier := mustPrincipal("carrier-acme")

	cmd, err := commands.NewReportEmergencyCommand(id, carrier, "accident", "Vehicle collision on I-5", 500)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.TrackingID())
	assert.Equal(t, carrier, cmd.Caller())
	assert.Equal(t, "accident", cmd.EmergencyType())
	assert.Equal(t, "Vehicle collision on I-5", cmd.Description())
	assert.Equal(t, int64(500), cmd.OccurredAt())
}

func TestNewReportEmergencyCommand_EmptyDescriptionAllowed(t *testing.T) {
	cmd, err := commands.NewReportEmergencyCommand(
		mustTrackingID("SHIP-001"), mustPrincipal("carrier-acme"), "accident", "", 500,
	)
	require.NoError(t, err)
	assert.Empty(t, cmd.Description())
}

func TestNewReportEmergencyCommand_EmptyType(t *testing.T) {
	_, err := commands.NewReportEmergencyCommand(
		mustTrackingID("SHIP-001"), mustPrincipal("carrier-acme"), "", "details", 500,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
