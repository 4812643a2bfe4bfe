package scraper

import (
	"errors"

	"eurocompare/internal/marketplace"

	"github.com/prometheus/client_golang/prometheus"
)

var scrapeRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "scrape_requests_total",
		Help: "Total number of storefront scrape attempts by outcome",
	},
	[]string{"country", "outcome"},
)

func init() {
	prometheus.MustRegister(scrapeRequestsTotal)
}

func observeOutcome(country marketplace.Country, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrRateLimited):
		outcome = "rate_limited"
	case errors.Is(err, ErrBlocked):
		outcome = "blocked"
	case errors.Is(err, ErrPriceNotFound):
		outcome = "no_price"
	default:
		outcome = "error"
	}

	scrapeRequestsTotal.WithLabelValues(string(country), outcome).Inc()
}
