package briefing

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/voxcast/voxcast/pkg/audio"
	"github.com/voxcast/voxcast/pkg/provider"
	"github.com/voxcast/voxcast/pkg/searcher"
	"github.com/voxcast/voxcast/pkg/summarizer"
)

// Generator runs the full briefing pipeline: gather source material per
// topic, summarize it into a narration script, synthesize speech and persist
// the audio.
type Generator struct {
	searchers map[string]searcher.Provider

	summarizer  summarizer.Provider
	synthesizer provider.Synthesizer

	storage *audio.Storage
}

type GenerateOptions struct {
	Sources []string

	Voice  string
	Model  string
	Format provider.Format

	Language string
}

type Briefing struct {
	Path string

	Format      provider.Format
	ContentType string

	Script string
}

func New(searchers map[string]searcher.Provider, summarizer summarizer.Provider, synthesizer provider.Synthesizer, storage *audio.Storage) (*Generator, error) {
	if len(searchers) == 0 {
		return nil, errors.New("at least one searcher is required")
	}

	if summarizer == nil {
		return nil, errors.New("summarizer is required")
	}

	if synthesizer == nil {
		return nil, errors.New("synthesizer is required")
	}

	if storage == nil {
		storage = audio.NewStorage("")
	}

	return &Generator{
		searchers: searchers,

		summarizer:  summarizer,
		synthesizer: synthesizer,

		storage: storage,
	}, nil
}

func (g *Generator) Generate(ctx context.Context, topics []string, options *GenerateOptions) (*Briefing, error) {
	if options == nil {
		options = new(GenerateOptions)
	}

	if len(topics) == 0 {
		return nil, &provider.ValidationError{Err: errors.New("at least one topic is required")}
	}

	material, err := g.gather(ctx, topics, options.Sources)

	if err != nil {
		return nil, err
	}

	summary, err := g.summarizer.Summarize(ctx, material, nil)

	if err != nil {
		return nil, err
	}

	synthesis, err := g.synthesizer.Synthesize(ctx, summary.Text, &provider.SynthesizeOptions{
		Voice: options.Voice,
		Model: options.Model,

		Language: options.Language,

		Format: options.Format,
	})

	if err != nil {
		return nil, err
	}

	path, err := g.storage.Store(synthesis.Content, synthesis.Format)

	if err != nil {
		return nil, err
	}

	return &Briefing{
		Path: path,

		Format:      synthesis.Format,
		ContentType: synthesis.ContentType,

		Script: summary.Text,
	}, nil
}

func (g *Generator) gather(ctx context.Context, topics, sources []string) (string, error) {
	if len(sources) == 0 {
		sources = []string{""}
	}

	var sections []string
	var errs []error

	for _, source := range sources {
		s, ok := g.searchers[source]

		if !ok {
			return "", &provider.ValidationError{Err: errors.New("unknown source: " + source)}
		}

		for _, topic := range topics {
			results, err := s.Search(ctx, topic, nil)

			if err != nil {
				slog.WarnContext(ctx, "topic search failed",
					"source", source,
					"topic", topic,
					"error", err,
				)

				errs = append(errs, err)

				continue
			}

			for _, result := range results {
				sections = append(sections, "Topic: "+topic+"\nTitle: "+result.Title+"\n"+result.Content)
			}
		}
	}

	if len(sections) == 0 {
		if len(errs) > 0 {
			return "", errors.Join(errs...)
		}

		return "", errors.New("no source material found")
	}

	return strings.Join(sections, "\n\n"), nil
}
