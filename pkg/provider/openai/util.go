package openai

import (
	"errors"

	"github.com/voxcast/voxcast/pkg/provider"

	"github.com/openai/openai-go/v3"
)

func convertError(err error) error {
	var apierr *openai.Error

	if errors.As(err, &apierr) {
		return &provider.ProviderError{Err: apierr}
	}

	return &provider.ProviderError{Err: err}
}
