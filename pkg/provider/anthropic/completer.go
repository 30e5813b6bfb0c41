package anthropic

import (
	"context"
	"errors"

	"github.com/voxcast/voxcast/pkg/provider"

	"github.com/anthropics/anthropic-sdk-go"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
	messages anthropic.MessageService
}

func NewCompleter(url, model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config:   cfg,
		messages: anthropic.NewMessageService(cfg.Options()...),
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	if c.token == "" {
		return nil, &provider.ConfigError{Err: errors.New("API key is required")}
	}

	req := anthropic.MessageNewParams{
		Model: anthropic.Model(c.model),

		MaxTokens: 4096,
	}

	if options.MaxTokens != nil {
		req.MaxTokens = int64(*options.MaxTokens)
	}

	if options.Temperature != nil {
		req.Temperature = anthropic.Float(float64(*options.Temperature))
	}

	if options.Stop != nil {
		req.StopSequences = options.Stop
	}

	for _, m := range messages {
		switch m.Role {
		case provider.MessageRoleSystem:
			req.System = append(req.System, anthropic.TextBlockParam{Text: m.Content})

		case provider.MessageRoleUser:
			req.Messages = append(req.Messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))

		case provider.MessageRoleAssistant:
			req.Messages = append(req.Messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		}
	}

	message, err := c.messages.New(ctx, req)

	if err != nil {
		return nil, convertError(err)
	}

	var text string

	for _, block := range message.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}

	return &provider.Completion{
		ID:    message.ID,
		Model: c.model,

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,

			Content: text,
		},

		Usage: &provider.Usage{
			InputTokens:  int(message.Usage.InputTokens),
			OutputTokens: int(message.Usage.OutputTokens),
		},
	}, nil
}

func convertError(err error) error {
	var apierr *anthropic.Error

	if errors.As(err, &apierr) {
		return &provider.ProviderError{Err: apierr}
	}

	return &provider.ProviderError{Err: err}
}
