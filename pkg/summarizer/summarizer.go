package summarizer

import (
	"context"
)

type Provider interface {
	Summarize(ctx context.Context, content string, options *SummarizerOptions) (*Summary, error)
}

type SummarizerOptions struct {
	Instructions string
}

type Summary struct {
	Text string
}
