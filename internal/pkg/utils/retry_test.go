package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	t.Run("Stops at the first success", func(t *testing.T) {
		calls := 0
		err := Retry(context.Background(), 5, time.Millisecond, func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("not yet")
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Returns the last error", func(t *testing.T) {
		calls := 0
		err := Retry(context.Background(), 2, time.Millisecond, func(context.Context) error {
			calls++
			return errors.New("down")
		})

		assert.EqualError(t, err, "down")
		assert.Equal(t, 2, calls)
	})

	t.Run("Gives up when the context ends", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		err := Retry(ctx, 3, time.Hour, func(context.Context) error {
			cancel()
			return errors.New("down")
		})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
