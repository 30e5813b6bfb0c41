package provider

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsRetryable(t *testing.T) {
	t.Run("config errors are retryable", func(t *testing.T) {
		err := &ConfigError{Err: errors.New("API key is required")}

		if !IsRetryable(err) {
			t.Error("expected config error to be retryable")
		}
	})

	t.Run("provider errors are retryable", func(t *testing.T) {
		err := &ProviderError{Err: errors.New("upstream timeout")}

		if !IsRetryable(err) {
			t.Error("expected provider error to be retryable")
		}
	})

	t.Run("wrapped errors are detected", func(t *testing.T) {
		err := fmt.Errorf("synthesize: %w", &ProviderError{Err: errors.New("bad voice")})

		if !IsRetryable(err) {
			t.Error("expected wrapped provider error to be retryable")
		}
	})

	t.Run("validation errors are not retryable", func(t *testing.T) {
		err := &ValidationError{Err: errors.New("input text is required")}

		if IsRetryable(err) {
			t.Error("expected validation error to not be retryable")
		}
	})

	t.Run("plain errors are not retryable", func(t *testing.T) {
		if IsRetryable(errors.New("boom")) {
			t.Error("expected plain error to not be retryable")
		}
	})
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")

	for _, err := range []error{
		&ConfigError{Err: cause},
		&ProviderError{Err: cause},
		&ValidationError{Err: cause},
	} {
		if !errors.Is(err, cause) {
			t.Errorf("expected %T to unwrap to cause", err)
		}

		if err.Error() != "cause" {
			t.Errorf("expected message to pass through, got %q", err.Error())
		}
	}
}
