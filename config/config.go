package config

import (
	"bytes"
	"os"

	"github.com/voxcast/voxcast/pkg/audio"
	"github.com/voxcast/voxcast/pkg/provider"
	"github.com/voxcast/voxcast/pkg/searcher"
	"github.com/voxcast/voxcast/pkg/summarizer"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	Storage *audio.Storage

	synthesizer map[string]provider.Synthesizer
	voices      map[string]provider.VoiceLister

	searcher   map[string]searcher.Provider
	summarizer map[string]summarizer.Provider
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: ":8080",
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	c.Storage = audio.NewStorage(file.Output)

	if err := c.registerSearchers(file); err != nil {
		return nil, err
	}

	if err := c.registerSummarizers(file); err != nil {
		return nil, err
	}

	if err := c.registerSynthesizers(file); err != nil {
		return nil, err
	}

	if err := c.registerRouters(file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Address string `yaml:"address"`

	Output string `yaml:"output"`

	Synthesizers yaml.Node `yaml:"synthesizers"`
	Searchers    yaml.Node `yaml:"searchers"`
	Summarizers  yaml.Node `yaml:"summarizers"`

	Routers yaml.Node `yaml:"routers"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
