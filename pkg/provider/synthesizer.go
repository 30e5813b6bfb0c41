package provider

import (
	"context"
)

type Synthesizer interface {
	Synthesize(ctx context.Context, input string, options *SynthesizeOptions) (*Synthesis, error)
}

type SynthesizeOptions struct {
	Voice string
	Model string

	Language string

	Format Format

	LoudnessNormalization *bool
	TextNormalization     *bool
}

type Synthesis struct {
	ID    string
	Model string

	Content     []byte
	ContentType string

	Format Format
}
