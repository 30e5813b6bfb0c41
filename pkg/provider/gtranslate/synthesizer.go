package gtranslate

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/voxcast/voxcast/pkg/provider"
	"github.com/voxcast/voxcast/pkg/text"

	"github.com/google/uuid"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

// Synthesizer uses the public Google Translate speech endpoint. It needs no
// credential and only emits MP3.
type Synthesizer struct {
	*Config
}

func New(endpoint string, options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		url: endpoint,

		client: http.DefaultClient,
	}

	if cfg.url == "" {
		cfg.url = "https://translate.google.com/translate_tts"
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

	if options.Format != "" && options.Format != provider.FormatMP3 {
		return nil, &provider.ProviderError{Err: errors.New("unsupported audio format: " + string(options.Format))}
	}

	language := options.Language

	if language == "" {
		language = "en"
	}

	// the endpoint caps the text length per request
	splitter := text.NewSplitter()
	splitter.ChunkSize = 200

	var content []byte

	for _, chunk := range splitter.Split(input) {
		data, err := s.fetch(ctx, chunk, language)

		if err != nil {
			return nil, err
		}

		content = append(content, data...)
	}

	return &provider.Synthesis{
		ID: uuid.NewString(),

		Content:     content,
		ContentType: provider.FormatMP3.ContentType(),

		Format: provider.FormatMP3,
	}, nil
}

func (s *Synthesizer) fetch(ctx context.Context, chunk, language string) ([]byte, error) {
	query := url.Values{}
	query.Set("client", "tw-ob")
	query.Set("ie", "UTF-8")
	query.Set("tl", language)
	query.Set("q", chunk)

	req, _ := http.NewRequestWithContext(ctx, "GET", s.url+"?"+query.Encode(), nil)

	resp, err := s.client.Do(req)

	if err != nil {
		return nil, &provider.ProviderError{Err: err}
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		text := strings.TrimSpace(string(body))

		if text == "" {
			text = resp.Status
		}

		return nil, &provider.ProviderError{Err: errors.New(text)}
	}

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, &provider.ProviderError{Err: err}
	}

	return data, nil
}
