package otel

import (
	"context"

	"github.com/voxcast/voxcast/pkg/provider"

	"go.opentelemetry.io/otel"
)

type Completer interface {
	Observable
	provider.Completer
}

type observableCompleter struct {
	name     string
	provider string

	completer provider.Completer
}

func NewCompleter(provider, name string, p provider.Completer) Completer {
	return &observableCompleter{
		completer: p,

		name:     name,
		provider: provider,
	}
}

func (p *observableCompleter) otelSetup() {
}

func (p *observableCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "complete "+p.name)
	defer span.End()

	result, err := p.completer.Complete(ctx, messages, options)

	return result, err
}
