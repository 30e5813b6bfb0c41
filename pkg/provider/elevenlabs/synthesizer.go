package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
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
		voice = "JBFqnCBsd6RMkjVDRZzb"
	}

	model := options.Model

	if model == "" {
		model = "eleven_multilingual_v2"
	}

	format := options.Format

	if format == "" {
		format = provider.FormatMP3
	}

	request := SpeechRequest{
		Text: input,

		ModelID: model,

		LanguageCode: options.Language,
	}

	body, _ := json.Marshal(request)

	query := url.Values{}
	query.Set("output_format", outputFormat(format))

	req, _ := http.NewRequestWithContext(ctx, "POST", s.endpoint("/v1/text-to-speech/"+voice)+"?"+query.Encode(), bytes.NewReader(body))
	req.Header.Set("xi-api-key", s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)

	if err != nil {
		return nil, &provider.ProviderError{Err: err}
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	// the response body arrives as raw audio chunks
	content, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, &provider.ProviderError{Err: err}
	}

	if len(content) == 0 {
		return nil, &provider.ProviderError{Err: errors.New("empty audio stream")}
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: model,

		Content:     content,
		ContentType: format.ContentType(),

		Format: format,
	}, nil
}

// outputFormat maps the generic format onto an ElevenLabs output preset.
// Unknown values pass through so the provider rejects them itself.
func outputFormat(format provider.Format) string {
	switch format {
	case provider.FormatMP3:
		return "mp3_44100_128"

	case provider.FormatWAV:
		return "pcm_44100"

	case provider.FormatOGG:
		return "opus_48000_128"

	default:
		return string(format)
	}
}

func convertError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	text := strings.TrimSpace(string(body))

	if text == "" {
		text = resp.Status
	}

	return &provider.ProviderError{Err: errors.New(text)}
}
