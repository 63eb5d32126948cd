// Package retrywrap wraps github.com/avast/retry-go/v4 with the bridge's
// error taxonomy (internal/errs): validation and unrecoverable errors abort
// immediately, recoverable and RPC errors are retried with a bounded delay.
package retrywrap

import (
	"context"
	"time"

	"github.com/althea-net/gravity-orchestrator/internal/errs"
	"github.com/avast/retry-go/v4"
)

// DefaultAttempts bounds how many times a single RPC call is retried before
// the caller's own loop iteration gives up and tries again next poll.
const DefaultAttempts = 5

// DefaultDelay is the fixed spacing between retry attempts.
const DefaultDelay = 1 * time.Second

// Do runs fn, retrying on errs.KindRecoverable and errs.KindRPC failures up
// to DefaultAttempts times. errs.KindUnrecoverable and errs.KindValidation
// errors are marked non-retryable so retry.Do returns immediately.
func Do(ctx context.Context, fn func() error) error {
	return retry.Do(
		func() error {
			err := fn()
			if err == nil {
				return nil
			}
			if errs.Is(err, errs.KindUnrecoverable) || errs.Is(err, errs.KindValidation) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(DefaultAttempts),
		retry.DelayType(retry.FixedDelay),
		retry.Delay(DefaultDelay),
	)
}

// DoWithAttempts behaves like Do but overrides the attempt count, for
// callers with a tighter or looser retry budget (e.g. the relayer's batch
// submission, which should not retry indefinitely against a dead node).
func DoWithAttempts(ctx context.Context, attempts uint, fn func() error) error {
	return retry.Do(
		func() error {
			err := fn()
			if err == nil {
				return nil
			}
			if errs.Is(err, errs.KindUnrecoverable) || errs.Is(err, errs.KindValidation) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.DelayType(retry.FixedDelay),
		retry.Delay(DefaultDelay),
	)
}
