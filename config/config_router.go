package config

import (
	"fmt"
	"strings"

	"github.com/voxcast/voxcast/pkg/provider"
	"github.com/voxcast/voxcast/pkg/router/failover"
)

type routerConfig struct {
	Type string `yaml:"type"`

	Models []string `yaml:"models"`
}

func (cfg *Config) registerRouters(f *configFile) error {
	var configs map[string]routerConfig

	if err := f.Routers.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Routers.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		router, err := cfg.createRouter(config)

		if err != nil {
			return err
		}

		cfg.RegisterSynthesizer(id, router)

		// routers take precedence as the default synthesizer
		cfg.synthesizer[""] = router
	}

	return nil
}

func (cfg *Config) createRouter(config routerConfig) (provider.Synthesizer, error) {
	switch strings.ToLower(config.Type) {

	case "", "failover":
		var synthesizers []provider.Synthesizer

		for _, model := range config.Models {
			synthesizer, err := cfg.Synthesizer(model)

			if err != nil {
				return nil, err
			}

			synthesizers = append(synthesizers, synthesizer)
		}

		router, err := failover.NewSynthesizer(synthesizers...)

		if err != nil {
			return nil, err
		}

		router.WithNames(config.Models...)

		return router, nil

	default:
		return nil, fmt.Errorf("invalid router type: %s", config.Type)
	}
}
