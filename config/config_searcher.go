package config

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/voxcast/voxcast/pkg/limiter"
	"github.com/voxcast/voxcast/pkg/otel"
	"github.com/voxcast/voxcast/pkg/searcher"
	"github.com/voxcast/voxcast/pkg/searcher/exa"
	"github.com/voxcast/voxcast/pkg/searcher/reddit"
	"github.com/voxcast/voxcast/pkg/searcher/tavily"

	"golang.org/x/time/rate"
)

func (cfg *Config) RegisterSearcher(id string, p searcher.Provider) {
	if cfg.searcher == nil {
		cfg.searcher = make(map[string]searcher.Provider)
	}

	if _, ok := cfg.searcher[""]; !ok {
		cfg.searcher[""] = p
	}

	cfg.searcher[id] = p
}

func (cfg *Config) Searcher(id string) (searcher.Provider, error) {
	if p, ok := cfg.searcher[id]; ok {
		return p, nil
	}

	return nil, errors.New("searcher not found: " + id)
}

func (cfg *Config) Searchers() map[string]searcher.Provider {
	return maps.Clone(cfg.searcher)
}

type searcherConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Limit *int `yaml:"limit"`
}

type searcherContext struct {
	Limiter *rate.Limiter
}

func (cfg *Config) registerSearchers(f *configFile) error {
	var configs map[string]searcherConfig

	if err := f.Searchers.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Searchers.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		context := searcherContext{
			Limiter: createLimiter(config.Limit),
		}

		searcher, err := createSearcher(config)

		if err != nil {
			return err
		}

		if _, ok := searcher.(limiter.Searcher); !ok {
			searcher = limiter.NewSearcher(context.Limiter, searcher)
		}

		if _, ok := searcher.(otel.Searcher); !ok {
			searcher = otel.NewSearcher(config.Type, id, searcher)
		}

		cfg.RegisterSearcher(id, searcher)
	}

	return nil
}

func createSearcher(cfg searcherConfig) (searcher.Provider, error) {
	switch strings.ToLower(cfg.Type) {

	case "tavily":
		return tavilySearcher(cfg)

	case "exa":
		return exaSearcher(cfg)

	case "reddit":
		return redditSearcher(cfg)

	default:
		return nil, fmt.Errorf("invalid searcher type: %s", cfg.Type)
	}
}

func tavilySearcher(cfg searcherConfig) (searcher.Provider, error) {
	return tavily.New(cfg.Token)
}

func exaSearcher(cfg searcherConfig) (searcher.Provider, error) {
	return exa.New(cfg.Token)
}

func redditSearcher(cfg searcherConfig) (searcher.Provider, error) {
	var options []reddit.Option

	if cfg.URL != "" {
		options = append(options, reddit.WithURL(cfg.URL))
	}

	return reddit.New(options...)
}
