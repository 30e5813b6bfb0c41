package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/voxcast/voxcast/pkg/limiter"
	"github.com/voxcast/voxcast/pkg/otel"
	"github.com/voxcast/voxcast/pkg/provider"
	"github.com/voxcast/voxcast/pkg/provider/anthropic"
	"github.com/voxcast/voxcast/pkg/summarizer"
	"github.com/voxcast/voxcast/pkg/summarizer/adapter"

	"golang.org/x/time/rate"
)

func (cfg *Config) RegisterSummarizer(id string, p summarizer.Provider) {
	if cfg.summarizer == nil {
		cfg.summarizer = make(map[string]summarizer.Provider)
	}

	if _, ok := cfg.summarizer[""]; !ok {
		cfg.summarizer[""] = p
	}

	cfg.summarizer[id] = p
}

func (cfg *Config) Summarizer(id string) (summarizer.Provider, error) {
	if p, ok := cfg.summarizer[id]; ok {
		return p, nil
	}

	return nil, errors.New("summarizer not found: " + id)
}

type summarizerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Model string `yaml:"model"`

	Limit *int `yaml:"limit"`
}

type summarizerContext struct {
	Limiter *rate.Limiter
}

func (cfg *Config) registerSummarizers(f *configFile) error {
	var configs map[string]summarizerConfig

	if err := f.Summarizers.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Summarizers.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		context := summarizerContext{
			Limiter: createLimiter(config.Limit),
		}

		completer, err := createCompleter(config)

		if err != nil {
			return err
		}

		if _, ok := completer.(limiter.Completer); !ok {
			completer = limiter.NewCompleter(context.Limiter, completer)
		}

		if _, ok := completer.(otel.Completer); !ok {
			completer = otel.NewCompleter(config.Type, id, completer)
		}

		var summarizer summarizer.Provider = adapter.FromCompleter(completer)

		if _, ok := summarizer.(otel.Summarizer); !ok {
			summarizer = otel.NewSummarizer(config.Type, id, summarizer)
		}

		cfg.RegisterSummarizer(id, summarizer)
	}

	return nil
}

func createCompleter(cfg summarizerConfig) (provider.Completer, error) {
	switch strings.ToLower(cfg.Type) {

	case "anthropic":
		return anthropicCompleter(cfg)

	default:
		return nil, fmt.Errorf("invalid summarizer type: %s", cfg.Type)
	}
}

func anthropicCompleter(cfg summarizerConfig) (provider.Completer, error) {
	var options []anthropic.Option

	if cfg.Token != "" {
		options = append(options, anthropic.WithToken(cfg.Token))
	}

	return anthropic.NewCompleter(cfg.URL, cfg.Model, options...)
}
