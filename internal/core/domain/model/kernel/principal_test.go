package kernel_test

import (
	"strings"
	"testing"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrincipal_Valid(t *testing.T) {
	p, err := kernel.NewPrincipal("carrier-acme")
	require.NoError(t, err)
	assert.Equal(t, "carrier-acme", p.String())
	require.NoError(t, p.Validate())
}

func TestNewPrincipal_TrimsWhitespace(t *testing.T) {
	p, err := kernel.NewPrincipal("  warehouse-7  ")
	require.NoError(t, err)
	assert.Equal(t, "warehouse-7", p.String())
}

func TestNewPrincipal_Empty(t *testing.T) {
	_, err := kernel.NewPrincipal("   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewPrincipal_TooLong(t *testing.T) {
	_, err := kernel.NewPrincipal(strings.Repeat("x", kernel.MaxPrincipalLength+1))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestPrincipal_IsEqual(t *testing.T) {
	a, _ := kernel.NewPrincipal("producer-1")
	b, _ := kernel.NewPrincipal("producer-1")
	c, _ := kernel.NewPrincipal("producer-2")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestPrincipal_ZeroValueIsInvalid(t *testing.T) {
	var p kernel.Principal
	require.Error(t, p.Validate())
}
