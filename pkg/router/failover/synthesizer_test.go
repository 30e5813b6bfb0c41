package failover

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/voxcast/voxcast/pkg/provider"
)

type mockSynthesizer struct {
	err      error
	response []byte

	calls atomic.Int64
}

func (m *mockSynthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	m.calls.Add(1)

	if m.err != nil {
		return nil, m.err
	}

	return &provider.Synthesis{
		ID: "test",

		Content:     m.response,
		ContentType: "audio/mpeg",

		Format: provider.FormatMP3,
	}, nil
}

func TestNewSynthesizer(t *testing.T) {
	t.Run("requires at least one synthesizer", func(t *testing.T) {
		_, err := NewSynthesizer()
		if err == nil {
			t.Error("expected error for empty chain")
		}
	})
}

func TestSynthesize(t *testing.T) {
	ctx := context.Background()

	t.Run("first success wins", func(t *testing.T) {
		first := &mockSynthesizer{response: []byte("first")}
		second := &mockSynthesizer{response: []byte("second")}

		s, _ := NewSynthesizer(first, second)

		result, err := s.Synthesize(ctx, "hello", nil)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if string(result.Content) != "first" {
			t.Errorf("expected first provider's output, got %q", result.Content)
		}

		if second.calls.Load() != 0 {
			t.Error("expected second provider to not be invoked")
		}
	})

	t.Run("falls back in fixed order", func(t *testing.T) {
		first := &mockSynthesizer{err: &provider.ProviderError{Err: errors.New("transport failure")}}
		second := &mockSynthesizer{response: []byte("second")}
		third := &mockSynthesizer{response: []byte("third")}

		s, _ := NewSynthesizer(first, second, third)

		result, err := s.Synthesize(ctx, "hello", nil)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if string(result.Content) != "second" {
			t.Errorf("expected second provider's output, got %q", result.Content)
		}

		if third.calls.Load() != 0 {
			t.Error("expected third provider to never be invoked")
		}
	})

	t.Run("missing credential triggers fallback like any failure", func(t *testing.T) {
		first := &mockSynthesizer{err: &provider.ConfigError{Err: errors.New("API key is required")}}
		second := &mockSynthesizer{response: []byte("second")}

		s, _ := NewSynthesizer(first, second)

		result, err := s.Synthesize(ctx, "hello", nil)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if string(result.Content) != "second" {
			t.Errorf("expected fallback output, got %q", result.Content)
		}
	})

	t.Run("exhaustion surfaces every attempt", func(t *testing.T) {
		first := &mockSynthesizer{err: &provider.ConfigError{Err: errors.New("API key is required")}}
		second := &mockSynthesizer{err: &provider.ProviderError{Err: errors.New("bad voice")}}

		s, _ := NewSynthesizer(first, second)
		s = s.WithNames("speechify", "elevenlabs")

		_, err := s.Synthesize(ctx, "hello", nil)

		if err == nil {
			t.Fatal("expected error after exhaustion")
		}

		var configError *provider.ConfigError

		if !errors.As(err, &configError) {
			t.Error("expected attempt chain to retain the config error")
		}

		var providerError *provider.ProviderError

		if !errors.As(err, &providerError) {
			t.Error("expected attempt chain to retain the provider error")
		}
	})

	t.Run("each provider is tried exactly once", func(t *testing.T) {
		first := &mockSynthesizer{err: &provider.ProviderError{Err: errors.New("down")}}
		second := &mockSynthesizer{err: &provider.ProviderError{Err: errors.New("down")}}

		s, _ := NewSynthesizer(first, second)

		s.Synthesize(ctx, "hello", nil)

		if first.calls.Load() != 1 || second.calls.Load() != 1 {
			t.Errorf("expected one attempt per provider, got %d and %d", first.calls.Load(), second.calls.Load())
		}
	})

	t.Run("validation errors surface immediately", func(t *testing.T) {
		first := &mockSynthesizer{err: &provider.ValidationError{Err: errors.New("malformed request")}}
		second := &mockSynthesizer{response: []byte("second")}

		s, _ := NewSynthesizer(first, second)

		_, err := s.Synthesize(ctx, "hello", nil)

		var validationError *provider.ValidationError

		if !errors.As(err, &validationError) {
			t.Fatalf("expected validation error, got %v", err)
		}

		if second.calls.Load() != 0 {
			t.Error("expected no fallback on validation error")
		}
	})

	t.Run("empty input never reaches a provider", func(t *testing.T) {
		first := &mockSynthesizer{response: []byte("first")}

		s, _ := NewSynthesizer(first)

		_, err := s.Synthesize(ctx, "   ", nil)

		var validationError *provider.ValidationError

		if !errors.As(err, &validationError) {
			t.Fatalf("expected validation error, got %v", err)
		}

		if first.calls.Load() != 0 {
			t.Error("expected no provider invocation for empty input")
		}
	})

	t.Run("cancelled context stops the traversal", func(t *testing.T) {
		first := &mockSynthesizer{response: []byte("first")}

		s, _ := NewSynthesizer(first)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := s.Synthesize(cancelled, "hello", nil)

		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}

		if first.calls.Load() != 0 {
			t.Error("expected no provider invocation after cancellation")
		}
	})

	t.Run("records attempt statistics", func(t *testing.T) {
		first := &mockSynthesizer{err: &provider.ProviderError{Err: errors.New("down")}}
		second := &mockSynthesizer{response: []byte("second")}

		s, _ := NewSynthesizer(first, second)

		s.Synthesize(ctx, "hello", nil)

		if _, failures := s.stats[0].Metrics(); failures != 1 {
			t.Errorf("expected 1 recorded failure, got %d", failures)
		}

		if requests, failures := s.stats[1].Metrics(); requests != 1 || failures != 0 {
			t.Errorf("expected 1 successful request, got %d/%d", requests, failures)
		}
	})
}
