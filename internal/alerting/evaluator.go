// Package alerting manages price alerts and their notifications.
package alerting

import (
	"context"
	"fmt"
	"time"

	"eurocompare/internal/marketplace"
	"eurocompare/internal/platform/models"
	"eurocompare/internal/pricetext"

	"github.com/rs/zerolog"
)

//go:generate mockery --name AlertStore --filename alert_store.go
//go:generate mockery --name Notifier --filename notifier.go

// AlertStore reads and claims stored alerts.
type AlertStore interface {
	// ActiveAlerts returns all active alerts for a product.
	ActiveAlerts(ctx context.Context, asin string) ([]models.PriceAlert, error)
	// ClaimAlert atomically deactivates an alert. It reports whether
	// this caller won the claim.
	ClaimAlert(ctx context.Context, id int64, triggeredAt time.Time) (bool, error)
	// ReleaseAlert reverts a claimed alert back to active.
	ReleaseAlert(ctx context.Context, id int64) error
}

// Notifier delivers a triggered alert to its owner.
type Notifier interface {
	Send(ctx context.Context, alert models.PriceAlert, currentPrice, savings float64) error
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// EvaluatorOption is custom configuration of Evaluator.
type EvaluatorOption func(e *Evaluator)

// WithEvaluatorClock sets the clock used for trigger timestamps.
func WithEvaluatorClock(clock Clock) EvaluatorOption {
	return func(e *Evaluator) {
		e.clock = clock
	}
}

// WithEvaluatorLogger sets the logger for per alert failures.
func WithEvaluatorLogger(logger zerolog.Logger) EvaluatorOption {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// Evaluator matches fresh observations against active alerts. An alert
// fires when the observed price in its country is at or below target.
// Each alert is claimed before its notification goes out, so
// concurrent evaluations of the same product send at most one mail per
// alert.
type Evaluator struct {
	store    AlertStore
	notifier Notifier
	clock    Clock
	logger   zerolog.Logger
}

// NewEvaluator returns new Evaluator.
func NewEvaluator(store AlertStore, notifier Notifier, ops ...EvaluatorOption) *Evaluator {
	ev := Evaluator{
		store:    store,
		notifier: notifier,
		clock:    systemClock{},
		logger:   zerolog.Nop(),
	}

	for _, op := range ops {
		op(&ev)
	}

	return &ev
}

// Evaluate checks observations against all active alerts of asin.
// Failures of single alerts are logged and don't stop the rest.
func (e *Evaluator) Evaluate(ctx context.Context, asin string, observations []models.Observation) error {
	alerts, err := e.store.ActiveAlerts(ctx, asin)
	if err != nil {
		return fmt.Errorf("can't load active alerts: %w", err)
	}
	if len(alerts) == 0 {
		return nil
	}

	prices := make(map[marketplace.Country]float64, len(observations))
	for ix := range observations {
		prices[observations[ix].Country] = observations[ix].Price
	}

	for ix := range alerts {
		e.evaluateAlert(ctx, &alerts[ix], prices)
	}

	return nil
}

func (e *Evaluator) evaluateAlert(
	ctx context.Context,
	alert *models.PriceAlert,
	prices map[marketplace.Country]float64,
) {
	price, ok := prices[alert.Country]
	if !ok || price > alert.TargetPrice {
		return
	}

	claimed, err := e.store.ClaimAlert(ctx, alert.ID, e.clock.Now())
	if err != nil {
		e.logger.Error().Err(err).Int64("alertID", alert.ID).Msg("can't claim alert")
		return
	}
	if !claimed {
		// Another evaluation got there first.
		return
	}

	savings := pricetext.Round2(alert.TargetPrice - price)
	if err := e.notifier.Send(ctx, *alert, price, savings); err != nil {
		e.logger.Error().Err(err).Int64("alertID", alert.ID).Msg("can't send alert notification")

		// Give the alert back so a later evaluation can retry.
		if err := e.store.ReleaseAlert(ctx, alert.ID); err != nil {
			e.logger.Error().Err(err).Int64("alertID", alert.ID).Msg("can't release alert after failed notification")
		}
		return
	}

	e.logger.Info().
		Int64("alertID", alert.ID).
		Str("asin", alert.ASIN).
		Str("country", string(alert.Country)).
		Float64("price", price).
		Msg("alert triggered")
}
