package history_test

import (
	"testing"

	"eurocompare/internal/history"
	"eurocompare/internal/marketplace"
	"eurocompare/internal/platform/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func points(prices ...float64) []models.PricePoint {
	pts := make([]models.PricePoint, 0, len(prices))
	for _, price := range prices {
		pts = append(pts, models.PricePoint{Price: price})
	}
	return pts
}

func TestUnitComputeStats(t *testing.T) {
	tests := []struct {
		name     string
		prices   []float64
		expected models.CountryStats
	}{
		{
			name:   "should report falling price as down",
			prices: []float64{100, 120, 80},
			expected: models.CountryStats{
				MinPrice:     80,
				MaxPrice:     120,
				AvgPrice:     100,
				CurrentPrice: 80,
				Trend:        "down",
				PriceChange:  -20,
				Samples:      3,
			},
		},
		{
			name:   "should report rising price as up",
			prices: []float64{80, 100, 120},
			expected: models.CountryStats{
				MinPrice:     80,
				MaxPrice:     120,
				AvgPrice:     100,
				CurrentPrice: 120,
				Trend:        "up",
				PriceChange:  20,
				Samples:      3,
			},
		},
		{
			name:   "should report flat price as stable",
			prices: []float64{99.99, 99.99, 99.99},
			expected: models.CountryStats{
				MinPrice:     99.99,
				MaxPrice:     99.99,
				AvgPrice:     99.99,
				CurrentPrice: 99.99,
				Trend:        "stable",
				PriceChange:  0,
				Samples:      3,
			},
		},
		{
			name:   "should handle a single sample",
			prices: []float64{249.5},
			expected: models.CountryStats{
				MinPrice:     249.5,
				MaxPrice:     249.5,
				AvgPrice:     249.5,
				CurrentPrice: 249.5,
				Trend:        "stable",
				PriceChange:  0,
				Samples:      1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			byCountry := map[marketplace.Country][]models.PricePoint{
				marketplace.Germany: points(tt.prices...),
			}

			stats := history.ComputeStats(byCountry)

			require.Contains(t, stats, marketplace.Germany)
			got := stats[marketplace.Germany]
			assert.InDelta(t, tt.expected.MinPrice, got.MinPrice, 1e-9)
			assert.InDelta(t, tt.expected.MaxPrice, got.MaxPrice, 1e-9)
			assert.InDelta(t, tt.expected.AvgPrice, got.AvgPrice, 1e-9)
			assert.InDelta(t, tt.expected.CurrentPrice, got.CurrentPrice, 1e-9)
			assert.Equal(t, tt.expected.Trend, got.Trend)
			assert.InDelta(t, tt.expected.PriceChange, got.PriceChange, 1e-9)
			assert.Equal(t, tt.expected.Samples, got.Samples)
		})
	}
}

func TestUnitComputeStatsSkipsEmptyCountries(t *testing.T) {
	byCountry := map[marketplace.Country][]models.PricePoint{
		marketplace.France:  points(10),
		marketplace.Germany: {},
	}

	stats := history.ComputeStats(byCountry)

	assert.Contains(t, stats, marketplace.France)
	assert.NotContains(t, stats, marketplace.Germany, "countries without samples should be left out")
}
