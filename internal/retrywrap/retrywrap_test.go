package retrywrap

import (
	"context"
	"errors"
	"testing"

	"github.com/althea-net/gravity-orchestrator/internal/errs"
	"github.com/stretchr/testify/require"
)

func TestDoRetriesRecoverableThenSucceeds(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errs.Recoverable(nil, "transient")
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, attempts)
}

func TestDoDoesNotRetryValidationErrors(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), func() error {
		attempts++
		return errs.Validation(errors.New("bad input"), "malformed event")
	})
	require.Error(t, err)
	require.Equal(t, 1, attempts)
}

func TestDoDoesNotRetryUnrecoverableErrors(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), func() error {
		attempts++
		return errs.Unrecoverable(nil, "fatal")
	})
	require.Error(t, err)
	require.Equal(t, 1, attempts)
}

func TestDoWithAttemptsRespectsOverride(t *testing.T) {
	attempts := 0
	err := DoWithAttempts(context.Background(), 2, func() error {
		attempts++
		return errs.RPC(nil, "still down")
	})
	require.Error(t, err)
	require.Equal(t, 2, attempts)
}
