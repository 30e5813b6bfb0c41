package adapter

import (
	"context"
	"strings"

	"github.com/voxcast/voxcast/pkg/provider"
	"github.com/voxcast/voxcast/pkg/summarizer"
	"github.com/voxcast/voxcast/pkg/text"
)

var _ summarizer.Provider = (*Adapter)(nil)

const prompt = `You are a broadcast news writer. Turn the provided source material into a tight, spoken-word news script suitable for a single narrator. Lead with the most relevant development, keep sentences short, avoid headlines, bullet points and markup, and close with a one-line sign-off.`

type Adapter struct {
	completer provider.Completer
}

func FromCompleter(completer provider.Completer) *Adapter {
	return &Adapter{
		completer: completer,
	}
}

func (a *Adapter) Summarize(ctx context.Context, content string, options *summarizer.SummarizerOptions) (*summarizer.Summary, error) {
	if options == nil {
		options = new(summarizer.SummarizerOptions)
	}

	instructions := prompt

	if options.Instructions != "" {
		instructions = options.Instructions
	}

	splitter := text.NewSplitter()
	splitter.ChunkSize = 16000

	chunks := splitter.Split(content)

	if len(chunks) == 1 {
		return a.summarize(ctx, instructions, chunks[0])
	}

	var segments []string

	for _, chunk := range chunks {
		summary, err := a.summarize(ctx, instructions, chunk)

		if err != nil {
			return nil, err
		}

		segments = append(segments, summary.Text)
	}

	return a.summarize(ctx, instructions, "Consolidate the following draft segments into one continuous script:\n\n"+strings.Join(segments, "\n\n"))
}

func (a *Adapter) summarize(ctx context.Context, instructions, content string) (*summarizer.Summary, error) {
	completion, err := a.completer.Complete(ctx, []provider.Message{
		provider.SystemMessage(instructions),
		provider.UserMessage(content),
	}, nil)

	if err != nil {
		return nil, err
	}

	if completion.Message == nil {
		return &summarizer.Summary{}, nil
	}

	return &summarizer.Summary{
		Text: completion.Message.Content,
	}, nil
}
