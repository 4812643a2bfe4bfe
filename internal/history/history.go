// Package history records price observations and derives trend
// statistics from them.
package history

import (
	"context"
	"fmt"
	"time"

	"eurocompare/internal/marketplace"
	"eurocompare/internal/platform"
	"eurocompare/internal/platform/models"
	"eurocompare/internal/pricetext"
)

//go:generate mockery --name Store --filename store.go

const (
	defaultDays    = 30
	trendingWindow = 7 * 24 * time.Hour
	defaultLimit   = 10
	maxLimit       = 50
)

// Store is the observation history storage.
type Store interface {
	// AppendObservations appends observations to the history.
	AppendObservations(ctx context.Context, observations []models.Observation) error
	// Observations returns the observations of a product captured at
	// or after since, oldest first.
	Observations(ctx context.Context, asin string, since time.Time) ([]models.Observation, error)
	// Trending returns the most observed products since a point in
	// time, with price aggregates.
	Trending(ctx context.Context, since time.Time, limit int64) ([]models.TrendingProduct, error)
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// Option is custom configuration of Service.
type Option func(s *Service)

// WithClock sets the clock used for history windows.
func WithClock(clock Clock) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// Service records observations and serves history queries.
type Service struct {
	store Store
	clock Clock
}

// NewService returns new Service.
func NewService(store Store, ops ...Option) *Service {
	svc := Service{
		store: store,
		clock: systemClock{},
	}

	for _, op := range ops {
		op(&svc)
	}

	return &svc
}

// Record appends observations to the history.
func (s *Service) Record(ctx context.Context, observations []models.Observation) error {
	if err := s.store.AppendObservations(ctx, observations); err != nil {
		return fmt.Errorf("can't record observations: %w", err)
	}
	return nil
}

// History returns the observation history of asin over the last days
// days, grouped by country with derived statistics. Days below 1 fall
// back to the default window.
func (s *Service) History(ctx context.Context, asin string, days int) (models.PriceHistory, error) {
	if !marketplace.ValidASIN(asin) {
		return models.PriceHistory{}, fmt.Errorf("%w: malformed product id %q", platform.ErrValidation, asin)
	}
	if days < 1 {
		days = defaultDays
	}

	since := s.clock.Now().AddDate(0, 0, -days)
	observations, err := s.store.Observations(ctx, asin, since)
	if err != nil {
		return models.PriceHistory{}, fmt.Errorf("can't load history: %w", err)
	}

	history := models.PriceHistory{
		ASIN:         asin,
		ByCountry:    make(map[marketplace.Country][]models.PricePoint),
		TotalRecords: len(observations),
		Days:         days,
	}

	for ix := range observations {
		if history.Product == nil {
			history.Product = &models.ProductInfo{
				Title:    observations[ix].Title,
				ImageURL: observations[ix].ImageURL,
			}
		}

		country := observations[ix].Country
		history.ByCountry[country] = append(history.ByCountry[country], models.PricePoint{
			Price:        observations[ix].Price,
			Availability: observations[ix].Availability,
			CapturedAt:   observations[ix].CapturedAt,
		})
	}

	history.Stats = ComputeStats(history.ByCountry)

	return history, nil
}

// Trending returns the most observed products of the last week. Limit
// below 1 falls back to the default, above the cap is clamped.
func (s *Service) Trending(ctx context.Context, limit int64) ([]models.TrendingProduct, error) {
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	since := s.clock.Now().Add(-trendingWindow)
	trending, err := s.store.Trending(ctx, since, limit)
	if err != nil {
		return nil, fmt.Errorf("can't load trending products: %w", err)
	}

	for ix := range trending {
		trending[ix].AvgPrice = pricetext.Round2(trending[ix].AvgPrice)
	}

	return trending, nil
}

type systemClock struct{}

// Now returns current UTC time.
func (c systemClock) Now() time.Time {
	return time.Now().UTC()
}
