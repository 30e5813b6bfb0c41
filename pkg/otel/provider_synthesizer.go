package otel

import (
	"context"

	"github.com/voxcast/voxcast/pkg/provider"

	"go.opentelemetry.io/otel"
)

type Synthesizer interface {
	Observable
	provider.Synthesizer
}

type observableSynthesizer struct {
	name     string
	provider string

	synthesizer provider.Synthesizer
}

func NewSynthesizer(provider, name string, p provider.Synthesizer) Synthesizer {
	return &observableSynthesizer{
		synthesizer: p,

		name:     name,
		provider: provider,
	}
}

func (p *observableSynthesizer) otelSetup() {
}

func (p *observableSynthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "synthesize "+p.name)
	defer span.End()

	result, err := p.synthesizer.Synthesize(ctx, input, options)

	return result, err
}
