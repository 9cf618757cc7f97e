package office

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/vba-sync/internal/model"
)

// stubHost is the minimal Host implementation for registry tests.
type stubHost struct{}

func (stubHost) Open(path string) (Document, error) { return nil, errors.New("not implemented") }
func (stubHost) Quit() error                        { return nil }

// TestConnect_NoProviderRegistered verifies that an app without a
// provider fails with ExitHostUnavailable, which is the case on every platform
// without an automation provider compiled in.
func TestConnect_NoProviderRegistered(t *testing.T) {
	// AppWord has no provider registered anywhere in this test binary.
	_, err := Connect(model.AppWord)
	assert.Equal(t, model.ExitHostUnavailable, model.CodeOf(err))
}

// TestConnect_UsesRegisteredProvider verifies the registry dispatch and
// that the last registration wins.
func TestConnect_UsesRegisteredProvider(t *testing.T) {
	first := stubHost{}
	Register(model.AppExcel, func() (Host, error) { return first, nil })

	host, err := Connect(model.AppExcel)
	require.NoError(t, err)
	assert.Equal(t, first, host)
}

// TestConnect_ProviderFailure verifies that a failing provider surfaces
// as ExitHostUnavailable with the cause preserved in the chain.
func TestConnect_ProviderFailure(t *testing.T) {
	cause := errors.New("COM dispatch failed")
	Register(model.AppExcel, func() (Host, error) { return nil, cause })

	_, err := Connect(model.AppExcel)
	assert.Equal(t, model.ExitHostUnavailable, model.CodeOf(err))
	assert.ErrorIs(t, err, cause)
}
