package issues

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strings"
	"time"

	"github.com/bartekus/autoui/internal/console"
)

// RetryConfig holds retry parameters for gh CLI calls.
type RetryConfig struct {
	MaxAttempts int           // default 3
	BaseDelay   time.Duration // default 2s
	MaxDelay    time.Duration // default 30s
}

// DefaultRetryConfig returns the defaults used by workflow runs.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   2 * time.Second,
		MaxDelay:    30 * time.Second,
	}
}

// IsRetryable reports whether a failed gh call is worth repeating.
// Auth and validation failures are permanent; rate limits, network and
// server errors are transient.
func IsRetryable(output string, exitCode int) bool {
	nonRetryable := []string{
		"authentication", "auth", "login",
		"not found", "404",
		"422", "validation failed",
		"could not resolve to an issue",
	}
	lower := strings.ToLower(output)
	for _, s := range nonRetryable {
		if strings.Contains(lower, s) {
			return false
		}
	}

	retryable := []string{
		"rate limit", "rate_limit", "403",
		"500", "502", "503", "504",
		"timeout", "timed out",
		"connection refused", "connection reset",
		"no such host", "network",
		"eagain", "temporary failure",
	}
	for _, s := range retryable {
		if strings.Contains(lower, s) {
			return true
		}
	}

	return exitCode != 0
}

// backoff returns the delay before the given retry attempt (1-based).
func (c RetryConfig) backoff(attempt int) time.Duration {
	delay := time.Duration(float64(c.BaseDelay) * math.Pow(2, float64(attempt-1)))
	if c.MaxDelay > 0 && delay > c.MaxDelay {
		delay = c.MaxDelay
	}
	return delay
}

// RunWithRetry executes name with args, retrying transient failures with
// exponential backoff. Only stdout is returned on success; stderr is kept
// for the error message.
func RunWithRetry(ctx context.Context, cfg RetryConfig, log *console.Logger, name string, args ...string) ([]byte, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	label := name
	if len(args) > 0 {
		label += " " + args[0]
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		log.Debugf("exec %s %s (attempt %d/%d)", name, strings.Join(args, " "), attempt, cfg.MaxAttempts)

		cmd := exec.CommandContext(ctx, name, args...)
		var stderr strings.Builder
		cmd.Stderr = &stderr
		out, err := cmd.Output()
		if err == nil {
			return out, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		msg := strings.TrimSpace(stderr.String())
		lastErr = fmt.Errorf("%s: %w: %s", label, err, msg)

		exitCode := 1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		if !IsRetryable(msg, exitCode) {
			return nil, lastErr
		}

		if attempt < cfg.MaxAttempts {
			delay := cfg.backoff(attempt)
			log.Warnf("%s failed (attempt %d/%d), retrying in %v: %s", label, attempt, cfg.MaxAttempts, delay, msg)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", cfg.MaxAttempts, lastErr)
}
