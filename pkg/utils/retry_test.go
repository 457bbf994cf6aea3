package utils

import (
	"errors"
	"testing"
	"time"
)

func TestRetry(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Multiplier:   2,
	}

	t.Run("succeeds on a later attempt", func(t *testing.T) {
		calls := 0
		err := Retry(cfg, func() error {
			calls++
			if calls < 3 {
				return errors.New("not yet")
			}
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 3 {
			t.Errorf("expected 3 calls, got %d", calls)
		}
	})

	t.Run("returns last error when attempts are spent", func(t *testing.T) {
		lastErr := errors.New("still down")
		calls := 0
		err := Retry(cfg, func() error {
			calls++
			return lastErr
		})
		if !errors.Is(err, lastErr) {
			t.Fatalf("expected last error, got %v", err)
		}
		if calls != cfg.MaxAttempts {
			t.Errorf("expected %d calls, got %d", cfg.MaxAttempts, calls)
		}
	})

	t.Run("first success means one call", func(t *testing.T) {
		calls := 0
		if err := Retry(cfg, func() error { calls++; return nil }); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 1 {
			t.Errorf("expected 1 call, got %d", calls)
		}
	})

	t.Run("zero config falls back to defaults", func(t *testing.T) {
		got := RetryConfig{}.withDefaults()
		if got.MaxAttempts != defaultMaxAttempts ||
			got.InitialDelay != defaultInitialDelay ||
			got.Multiplier != defaultMultiplier {
			t.Errorf("unexpected defaults: %+v", got)
		}
	})
}
