package comparison

import (
	"context"
	"fmt"
	"strings"

	"eurocompare/internal/marketplace"
	"eurocompare/internal/platform"
	"eurocompare/internal/platform/models"

	"github.com/rs/zerolog"
)

//go:generate mockery --name SearchSource --filename search_source.go

const maxQueryLength = 100

// SearchSource runs product searches on a storefront.
type SearchSource interface {
	Search(ctx context.Context, query string, country marketplace.Country) ([]models.ProductCandidate, error)
}

// Searcher finds product candidates by free text query. Searches run
// against the French storefront, which carries the widest catalog of
// the four.
type Searcher struct {
	source     SearchSource
	normalizer Normalizer
	cache      Cache
	logger     zerolog.Logger
}

// SearchOption is custom configuration of Searcher.
type SearchOption func(s *Searcher)

// WithSearcherLogger sets the logger for cache failures.
func WithSearcherLogger(logger zerolog.Logger) SearchOption {
	return func(s *Searcher) {
		s.logger = logger
	}
}

// NewSearcher returns new Searcher.
func NewSearcher(source SearchSource, normalizer Normalizer, cache Cache, ops ...SearchOption) *Searcher {
	searcher := Searcher{
		source:     source,
		normalizer: normalizer,
		cache:      cache,
		logger:     zerolog.Nop(),
	}

	for _, op := range ops {
		op(&searcher)
	}

	return &searcher
}

// Search returns product candidates for query, newest cache entry
// first. Candidate prices are normalized; candidates whose price text
// can't be read keep a nil price. The query is lowercased once, so case
// variants share both the cache entry and the scraped results.
func (s *Searcher) Search(ctx context.Context, query string) ([]models.ProductCandidate, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, fmt.Errorf("%w: empty search query", platform.ErrValidation)
	}
	if len(query) > maxQueryLength {
		return nil, fmt.Errorf("%w: search query longer than %d characters", platform.ErrValidation, maxQueryLength)
	}

	cacheKey := "search:" + query

	var cached []models.ProductCandidate
	hit, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		s.logger.Warn().Err(err).Str("query", query).Msg("can't read search cache")
	}
	if hit {
		return cached, nil
	}

	candidates, err := s.source.Search(ctx, query, marketplace.France)
	if err != nil {
		return nil, fmt.Errorf("can't search products: %w", err)
	}

	for ix := range candidates {
		price, err := s.normalizer.Normalize(candidates[ix].PriceText)
		if err != nil {
			continue
		}
		candidates[ix].Price = &price
	}

	if len(candidates) > 0 {
		if err := s.cache.Set(ctx, cacheKey, candidates); err != nil {
			s.logger.Warn().Err(err).Str("query", query).Msg("can't write search cache")
		}
	}

	return candidates, nil
}
