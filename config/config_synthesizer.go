package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/voxcast/voxcast/pkg/limiter"
	"github.com/voxcast/voxcast/pkg/otel"
	"github.com/voxcast/voxcast/pkg/provider"
	"github.com/voxcast/voxcast/pkg/provider/elevenlabs"
	"github.com/voxcast/voxcast/pkg/provider/gtranslate"
	"github.com/voxcast/voxcast/pkg/provider/openai"
	"github.com/voxcast/voxcast/pkg/provider/speechify"

	"golang.org/x/time/rate"
)

func (cfg *Config) RegisterSynthesizer(id string, p provider.Synthesizer) {
	if cfg.synthesizer == nil {
		cfg.synthesizer = make(map[string]provider.Synthesizer)
	}

	if _, ok := cfg.synthesizer[""]; !ok {
		cfg.synthesizer[""] = p
	}

	cfg.synthesizer[id] = p
}

func (cfg *Config) Synthesizer(id string) (provider.Synthesizer, error) {
	if p, ok := cfg.synthesizer[id]; ok {
		return p, nil
	}

	return nil, errors.New("synthesizer not found: " + id)
}

func (cfg *Config) RegisterVoiceLister(id string, p provider.VoiceLister) {
	if cfg.voices == nil {
		cfg.voices = make(map[string]provider.VoiceLister)
	}

	if _, ok := cfg.voices[""]; !ok {
		cfg.voices[""] = p
	}

	cfg.voices[id] = p
}

func (cfg *Config) VoiceLister(id string) (provider.VoiceLister, error) {
	if p, ok := cfg.voices[id]; ok {
		return p, nil
	}

	return nil, errors.New("voice lister not found: " + id)
}

type synthesizerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Model string `yaml:"model"`

	Limit *int `yaml:"limit"`
}

type synthesizerContext struct {
	Limiter *rate.Limiter
}

func (cfg *Config) registerSynthesizers(f *configFile) error {
	var configs map[string]synthesizerConfig

	if err := f.Synthesizers.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Synthesizers.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		context := synthesizerContext{
			Limiter: createLimiter(config.Limit),
		}

		synthesizer, err := createSynthesizer(config)

		if err != nil {
			return err
		}

		if voices, ok := synthesizer.(provider.VoiceLister); ok {
			cfg.RegisterVoiceLister(id, voices)
		}

		if _, ok := synthesizer.(limiter.Synthesizer); !ok {
			synthesizer = limiter.NewSynthesizer(context.Limiter, synthesizer)
		}

		if _, ok := synthesizer.(otel.Synthesizer); !ok {
			synthesizer = otel.NewSynthesizer(config.Type, id, synthesizer)
		}

		cfg.RegisterSynthesizer(id, synthesizer)
	}

	return nil
}

func createSynthesizer(cfg synthesizerConfig) (provider.Synthesizer, error) {
	switch strings.ToLower(cfg.Type) {

	case "speechify":
		return speechifySynthesizer(cfg)

	case "elevenlabs":
		return elevenlabsSynthesizer(cfg)

	case "gtranslate":
		return gtranslateSynthesizer(cfg)

	case "openai":
		return openaiSynthesizer(cfg)

	default:
		return nil, fmt.Errorf("invalid synthesizer type: %s", cfg.Type)
	}
}

func speechifySynthesizer(cfg synthesizerConfig) (provider.Synthesizer, error) {
	var options []speechify.Option

	if cfg.Token != "" {
		options = append(options, speechify.WithToken(cfg.Token))
	}

	return speechify.New(cfg.URL, options...)
}

func elevenlabsSynthesizer(cfg synthesizerConfig) (provider.Synthesizer, error) {
	var options []elevenlabs.Option

	if cfg.Token != "" {
		options = append(options, elevenlabs.WithToken(cfg.Token))
	}

	return elevenlabs.New(cfg.URL, options...)
}

func gtranslateSynthesizer(cfg synthesizerConfig) (provider.Synthesizer, error) {
	return gtranslate.New(cfg.URL)
}

func openaiSynthesizer(cfg synthesizerConfig) (provider.Synthesizer, error) {
	var options []openai.Option

	if cfg.Token != "" {
		options = append(options, openai.WithToken(cfg.Token))
	}

	return openai.NewSynthesizer(cfg.URL, cfg.Model, options...)
}
