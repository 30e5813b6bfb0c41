package openai

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/voxcast/voxcast/pkg/provider"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

type Synthesizer struct {
	*Config
	speech openai.AudioSpeechService
}

func NewSynthesizer(url, model string, options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Synthesizer{
		Config: cfg,
		speech: openai.NewAudioSpeechService(cfg.Options()...),
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	if strings.TrimSpace(input) == "" {
		return nil, &provider.ValidationError{Err: errors.New("input text is required")}
	}

	if s.token == "" {
		return nil, &provider.ConfigError{Err: errors.New("API key is required")}
	}

	model := options.Model

	if model == "" {
		model = s.model
	}

	voice := options.Voice

	if voice == "" {
		voice = string(openai.AudioSpeechNewParamsVoiceStringAlloy)
	}

	format := options.Format

	if format == "" {
		format = provider.FormatMP3
	}

	result, err := s.speech.New(ctx, openai.AudioSpeechNewParams{
		Model: model,
		Input: input,

		Voice: openai.AudioSpeechNewParamsVoiceUnion{OfString: openai.String(voice)},

		ResponseFormat: openai.AudioSpeechNewParamsResponseFormat(format),
	})

	if err != nil {
		return nil, convertError(err)
	}

	data, err := io.ReadAll(result.Body)

	if err != nil {
		return nil, &provider.ProviderError{Err: err}
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: model,

		Content:     data,
		ContentType: format.ContentType(),

		Format: format,
	}, nil
}
