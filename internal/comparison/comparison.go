// Package comparison builds multi storefront price comparisons.
package comparison

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"eurocompare/internal/marketplace"
	"eurocompare/internal/platform"
	"eurocompare/internal/platform/models"
	"eurocompare/internal/pricetext"
	"eurocompare/internal/scraper"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name Source --filename source.go
//go:generate mockery --name Recorder --filename recorder.go
//go:generate mockery --name AlertEvaluator --filename alert_evaluator.go
//go:generate mockery --name Cache --filename cache.go

const defaultCountryTimeout = 45 * time.Second

// Source fetches product listings from storefronts.
type Source interface {
	Product(ctx context.Context, asin string, country marketplace.Country) (models.Listing, error)
}

// Normalizer turns raw storefront price text into an amount.
type Normalizer interface {
	Normalize(raw string) (float64, error)
}

// Recorder persists captured observations.
type Recorder interface {
	Record(ctx context.Context, observations []models.Observation) error
}

// AlertEvaluator checks captured observations against active alerts.
type AlertEvaluator interface {
	Evaluate(ctx context.Context, asin string, observations []models.Observation) error
}

// Cache stores comparison results for a fixed time to live.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// Option is custom configuration of Comparer.
type Option func(c *Comparer)

// WithClock sets the clock used for observation timestamps.
func WithClock(clock Clock) Option {
	return func(c *Comparer) {
		c.clock = clock
	}
}

// WithCountryTimeout caps how long a single storefront fetch may take.
func WithCountryTimeout(timeout time.Duration) Option {
	return func(c *Comparer) {
		c.countryTimeout = timeout
	}
}

// WithLogger sets the logger for background side effects.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Comparer) {
		c.logger = logger
	}
}

// Comparer fetches a product from every storefront and assembles the
// comparison result.
type Comparer struct {
	source         Source
	normalizer     Normalizer
	recorder       Recorder
	evaluator      AlertEvaluator
	cache          Cache
	clock          Clock
	countryTimeout time.Duration
	logger         zerolog.Logger
	sideEffects    sync.WaitGroup
}

// NewComparer returns new Comparer.
func NewComparer(
	source Source,
	normalizer Normalizer,
	recorder Recorder,
	evaluator AlertEvaluator,
	cache Cache,
	ops ...Option,
) *Comparer {
	cmp := Comparer{
		source:         source,
		normalizer:     normalizer,
		recorder:       recorder,
		evaluator:      evaluator,
		cache:          cache,
		clock:          systemClock{},
		countryTimeout: defaultCountryTimeout,
		logger:         zerolog.Nop(),
	}

	for _, op := range ops {
		op(&cmp)
	}

	return &cmp
}

type countryResult struct {
	observation *models.Observation
	failure     *models.CountryError
}

// Compare compares prices of asin across all storefronts. Every
// storefront is attempted even when some fail; the call errors only
// when the id is malformed or no storefront delivered a price.
func (c *Comparer) Compare(ctx context.Context, asin string) (models.Comparison, error) {
	if !marketplace.ValidASIN(asin) {
		return models.Comparison{}, fmt.Errorf("%w: malformed product id %q", platform.ErrValidation, asin)
	}

	cacheKey := "compare:" + asin

	var cached models.Comparison
	hit, err := c.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		c.logger.Warn().Err(err).Str("asin", asin).Msg("can't read comparison cache")
	}
	if hit {
		cached.Cached = true
		return cached, nil
	}

	capturedAt := c.clock.Now()
	results := c.fetchAll(ctx, asin, capturedAt)

	observations := make([]models.Observation, 0, len(results))
	failures := make([]models.CountryError, 0, len(results))
	for ix := range results {
		if results[ix].observation != nil {
			observations = append(observations, *results[ix].observation)
		}
		if results[ix].failure != nil {
			failures = append(failures, *results[ix].failure)
		}
	}

	if len(observations) == 0 {
		return models.Comparison{}, fmt.Errorf("%w: all %d storefronts failed for %s",
			platform.ErrNoPricesAvailable, len(failures), asin)
	}

	c.runSideEffects(ctx, asin, observations)

	comparison := buildComparison(asin, observations, failures, capturedAt)

	if err := c.cache.Set(ctx, cacheKey, comparison); err != nil {
		c.logger.Warn().Err(err).Str("asin", asin).Msg("can't write comparison cache")
	}

	return comparison, nil
}

// fetchAll queries every storefront concurrently. Each task writes to
// its own slot and never fails the group, so one storefront can't
// cancel the others.
func (c *Comparer) fetchAll(ctx context.Context, asin string, capturedAt time.Time) []countryResult {
	results := make([]countryResult, len(marketplace.Countries))

	group, groupCtx := errgroup.WithContext(ctx)
	for ix, country := range marketplace.Countries {
		group.Go(func() error {
			results[ix] = c.fetchCountry(groupCtx, asin, country, capturedAt)
			return nil
		})
	}
	_ = group.Wait()

	return results
}

func (c *Comparer) fetchCountry(
	ctx context.Context,
	asin string,
	country marketplace.Country,
	capturedAt time.Time,
) countryResult {
	ctx, cancel := context.WithTimeout(ctx, c.countryTimeout)
	defer cancel()

	listing, err := c.source.Product(ctx, asin, country)
	if err != nil {
		return countryResult{failure: &models.CountryError{
			Country: country,
			Kind:    failureKind(err),
			Reason:  err.Error(),
		}}
	}

	price, err := c.normalizer.Normalize(listing.RawPrice)
	if err != nil {
		return countryResult{failure: &models.CountryError{
			Country: country,
			Kind:    models.ErrorKindParse,
			Reason:  fmt.Sprintf("can't normalize price %q: %s", listing.RawPrice, err),
		}}
	}

	return countryResult{observation: &models.Observation{
		ASIN:         asin,
		Country:      country,
		Price:        price,
		Title:        listing.Title,
		ImageURL:     listing.ImageURL,
		Availability: listing.Availability,
		URL:          listing.URL,
		CapturedAt:   capturedAt,
	}}
}

// runSideEffects records history and evaluates alerts in the
// background. The outcome never influences the comparison response.
func (c *Comparer) runSideEffects(ctx context.Context, asin string, observations []models.Observation) {
	ctx = context.WithoutCancel(ctx)

	c.sideEffects.Add(1)
	go func() {
		defer c.sideEffects.Done()

		if err := c.recorder.Record(ctx, observations); err != nil {
			c.logger.Error().Err(err).Str("asin", asin).Msg("can't record observations")
		}

		if err := c.evaluator.Evaluate(ctx, asin, observations); err != nil {
			c.logger.Error().Err(err).Str("asin", asin).Msg("can't evaluate alerts")
		}
	}()
}

// Wait blocks until all background side effects have finished. Used on
// shutdown and in tests.
func (c *Comparer) Wait() {
	c.sideEffects.Wait()
}

func buildComparison(
	asin string,
	observations []models.Observation,
	failures []models.CountryError,
	comparedAt time.Time,
) models.Comparison {
	bestPrice := observations[0].Price
	for ix := range observations {
		if observations[ix].Price < bestPrice {
			bestPrice = observations[ix].Price
		}
	}

	maxSavings := 0.0
	countries := make([]models.CountryPrice, 0, len(observations))
	for ix := range observations {
		savings := pricetext.Round2(observations[ix].Price - bestPrice)
		if savings > maxSavings {
			maxSavings = savings
		}

		countries = append(countries, models.CountryPrice{
			Observation: observations[ix],
			CountryName: observations[ix].Country.Name(),
			Flag:        observations[ix].Country.Flag(),
			Shipping:    observations[ix].Country.ShippingLabel(),
			IsBest:      observations[ix].Price == bestPrice,
			Savings:     savings,
		})
	}

	return models.Comparison{
		ASIN:         asin,
		ProductName:  observations[0].Title,
		Image:        observations[0].ImageURL,
		Countries:    countries,
		BestPrice:    bestPrice,
		MaxSavings:   maxSavings,
		SuccessCount: len(countries),
		Errors:       failures,
		ComparedAt:   comparedAt,
	}
}

func failureKind(err error) models.ErrorKind {
	if errors.Is(err, scraper.ErrPriceNotFound) {
		return models.ErrorKindParse
	}
	return models.ErrorKindFetch
}
