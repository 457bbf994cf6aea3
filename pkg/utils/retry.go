package utils

import "time"

const (
	defaultMaxAttempts  = 3
	defaultInitialDelay = 100 * time.Millisecond
	defaultMultiplier   = 2.0
)

// RetryConfig describes an exponential backoff schedule. A zero MaxDelay
// leaves the delay uncapped.
type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

func (cfg RetryConfig) withDefaults() RetryConfig {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = defaultInitialDelay
	}
	if cfg.Multiplier <= 1 {
		cfg.Multiplier = defaultMultiplier
	}
	return cfg
}

// Retry runs fn until it succeeds or the attempts are spent, sleeping with
// exponential backoff between attempts, and returns the last error. It is
// meant for startup work such as waiting out a database that is still coming
// up; request handling never retries.
func Retry(cfg RetryConfig, fn func() error) error {
	cfg = cfg.withDefaults()

	var err error
	delay := cfg.InitialDelay
	for attempt := 1; ; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt >= cfg.MaxAttempts {
			return err
		}

		time.Sleep(delay)
		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
}
