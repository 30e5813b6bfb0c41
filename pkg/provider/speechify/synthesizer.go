package speechify

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/voxcast/voxcast/pkg/provider"

	"github.com/google/uuid"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

type Synthesizer struct {
	*Config
}

func New(url string, options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		url: url,

		client: http.DefaultClient,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Synthesizer{
		Config: cfg,
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

	voice := options.Voice

	if voice == "" {
		voice = "scott"
	}

	model := options.Model

	if model == "" {
		model = "simba-english"
	}

	language := options.Language

	if language == "" {
		language = "en-US"
	}

	format := options.Format

	if format == "" {
		format = provider.FormatMP3
	}

	request := SpeechRequest{
		Input: input,

		VoiceID: voice,

		Model:    model,
		Language: language,

		AudioFormat: string(format),

		Options: &SpeechOptions{
			LoudnessNormalization: valueOrDefault(options.LoudnessNormalization, true),
			TextNormalization:     valueOrDefault(options.TextNormalization, true),
		},
	}

	body, _ := json.Marshal(request)

	req, _ := http.NewRequestWithContext(ctx, "POST", s.endpoint("/v1/audio/speech"), bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)

	if err != nil {
		return nil, &provider.ProviderError{Err: err}
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var result SpeechResponse

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &provider.ProviderError{Err: err}
	}

	if result.AudioData == "" {
		return nil, &provider.ProviderError{Err: errors.New("missing audio data")}
	}

	content, err := base64.StdEncoding.DecodeString(result.AudioData)

	if err != nil {
		return nil, &provider.ProviderError{Err: err}
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: model,

		Content:     content,
		ContentType: format.ContentType(),

		Format: format,
	}, nil
}

func convertError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	text := strings.TrimSpace(string(body))

	if text == "" {
		text = resp.Status
	}

	return &provider.ProviderError{Err: errors.New(text)}
}

func valueOrDefault(val *bool, def bool) bool {
	if val == nil {
		return def
	}

	return *val
}
