package limiter

import (
	"context"

	"github.com/voxcast/voxcast/pkg/searcher"

	"golang.org/x/time/rate"
)

type Searcher interface {
	Limiter
	searcher.Provider
}

type limitedSearcher struct {
	limiter  *rate.Limiter
	provider searcher.Provider
}

func NewSearcher(l *rate.Limiter, p searcher.Provider) Searcher {
	return &limitedSearcher{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedSearcher) limiterSetup() {
}

func (p *limitedSearcher) Search(ctx context.Context, query string, options *searcher.SearchOptions) ([]searcher.Result, error) {
	if p.limiter != nil {
		p.limiter.Wait(ctx)
	}

	return p.provider.Search(ctx, query, options)
}
