package adapter

import (
	"context"
	"strings"
	"testing"

	"github.com/voxcast/voxcast/pkg/provider"
)

type mockCompleter struct {
	calls []string
}

func (m *mockCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	var input string

	for _, msg := range messages {
		if msg.Role == provider.MessageRoleUser {
			input = msg.Content
		}
	}

	m.calls = append(m.calls, input)

	return &provider.Completion{
		ID: "test",

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,

			Content: "summary of " + strconvLen(input),
		},
	}, nil
}

func strconvLen(s string) string {
	if len(s) > 24 {
		return s[:24]
	}

	return s
}

func TestSummarize(t *testing.T) {
	t.Run("short content is summarized in one pass", func(t *testing.T) {
		completer := &mockCompleter{}
		a := FromCompleter(completer)

		summary, err := a.Summarize(context.Background(), "breaking news item", nil)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(completer.calls) != 1 {
			t.Errorf("expected one completion call, got %d", len(completer.calls))
		}

		if summary.Text == "" {
			t.Error("expected non-empty summary")
		}
	})

	t.Run("long content is chunked and consolidated", func(t *testing.T) {
		completer := &mockCompleter{}
		a := FromCompleter(completer)

		content := strings.Repeat("a long paragraph about world events. ", 1000)

		_, err := a.Summarize(context.Background(), content, nil)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(completer.calls) < 3 {
			t.Errorf("expected chunk calls plus a consolidation call, got %d", len(completer.calls))
		}

		last := completer.calls[len(completer.calls)-1]

		if !strings.Contains(last, "Consolidate") {
			t.Errorf("expected final call to consolidate segments, got %q", last)
		}
	})
}
