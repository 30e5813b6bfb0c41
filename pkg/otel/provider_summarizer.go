package otel

import (
	"context"

	"github.com/voxcast/voxcast/pkg/summarizer"

	"go.opentelemetry.io/otel"
)

type Summarizer interface {
	Observable
	summarizer.Provider
}

type observableSummarizer struct {
	name     string
	provider string

	summarizer summarizer.Provider
}

func NewSummarizer(provider, name string, p summarizer.Provider) Summarizer {
	return &observableSummarizer{
		summarizer: p,

		name:     name,
		provider: provider,
	}
}

func (p *observableSummarizer) otelSetup() {
}

func (p *observableSummarizer) Summarize(ctx context.Context, content string, options *summarizer.SummarizerOptions) (*summarizer.Summary, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "summarize "+p.name)
	defer span.End()

	result, err := p.summarizer.Summarize(ctx, content, options)

	return result, err
}
