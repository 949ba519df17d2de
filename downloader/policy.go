package downloader

import (
	"context"
	"errors"
	"time"

	"github.com/radiodl-cli/radiodl/key"
	"github.com/spf13/viper"
)

// Policy bounds the attempts of one HTTP download.
type Policy struct {
	Attempts int
	// Delay is slept after a network failure. Non-200 answers retry immediately.
	Delay time.Duration
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultPolicy reads attempts and delay from the config.
func DefaultPolicy() Policy {
	return Policy{
		Attempts: max(viper.GetInt(key.DownloaderAttempts), 1),
		Delay:    time.Duration(viper.GetInt(key.DownloaderRetryDelay)) * time.Second,
		Sleep:    sleep,
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// attemptError tells the retry loop whether to wait before the next attempt.
type attemptError struct {
	err   error
	delay bool
}

func (e *attemptError) Error() string { return e.err.Error() }
func (e *attemptError) Unwrap() error { return e.err }

// run calls attempt until it succeeds, the attempts are exhausted or ctx is done.
// It returns the last error.
func (p Policy) run(ctx context.Context, attempt func(n int) error) error {
	var err error
	attempts := max(p.Attempts, 1)

	for n := 1; n <= attempts; n++ {
		if err = attempt(n); err == nil {
			return nil
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		var ae *attemptError
		if n < attempts && errors.As(err, &ae) && ae.delay && p.Sleep != nil {
			if sleepErr := p.Sleep(ctx, p.Delay); sleepErr != nil {
				return sleepErr
			}
		}
	}

	return err
}
