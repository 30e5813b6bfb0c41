package failover

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/voxcast/voxcast/pkg/provider"
	"github.com/voxcast/voxcast/pkg/router"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

// Synthesizer tries a fixed, ordered chain of synthesizers until one
// succeeds. A provider failing once is skipped for the rest of the call;
// there is no retry on the same provider.
type Synthesizer struct {
	names        []string
	synthesizers []provider.Synthesizer

	stats []*router.Stats
}

func NewSynthesizer(synthesizers ...provider.Synthesizer) (*Synthesizer, error) {
	if len(synthesizers) == 0 {
		return nil, errors.New("at least one synthesizer is required")
	}

	names := make([]string, len(synthesizers))
	stats := make([]*router.Stats, len(synthesizers))

	for i := range synthesizers {
		names[i] = "provider-" + strconv.Itoa(i+1)
		stats[i] = router.NewStats()
	}

	return &Synthesizer{
		names:        names,
		synthesizers: synthesizers,

		stats: stats,
	}, nil
}

// WithNames overrides the diagnostic names used when logging attempts.
func (s *Synthesizer) WithNames(names ...string) *Synthesizer {
	for i, name := range names {
		if i < len(s.names) {
			s.names[i] = name
		}
	}

	return s
}

func (s *Synthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if strings.TrimSpace(input) == "" {
		return nil, &provider.ValidationError{Err: errors.New("input text is required")}
	}

	var attempts []error

	for i, synthesizer := range s.synthesizers {
		if err := ctx.Err(); err != nil {
			attempts = append(attempts, err)
			break
		}

		result, err := synthesizer.Synthesize(ctx, input, options)

		if err == nil {
			s.stats[i].RecordSuccess()
			return result, nil
		}

		s.stats[i].RecordFailure(err)

		if !provider.IsRetryable(err) {
			return nil, err
		}

		slog.WarnContext(ctx, "synthesis failed, falling back",
			"provider", s.names[i],
			"error", err,
		)

		attempts = append(attempts, fmt.Errorf("%s: %w", s.names[i], err))
	}

	return nil, errors.Join(attempts...)
}
