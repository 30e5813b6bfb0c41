package provider

import (
	"errors"
)

// ConfigError indicates a missing or unusable provider configuration,
// detected before any remote call is made.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ProviderError indicates a failed, timed out or rejected remote call.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ValidationError indicates a malformed request. It never triggers fallback.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether another provider may be tried after err.
func IsRetryable(err error) bool {
	var configError *ConfigError

	if errors.As(err, &configError) {
		return true
	}

	var providerError *ProviderError

	return errors.As(err, &providerError)
}
