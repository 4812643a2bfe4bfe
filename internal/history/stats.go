package history

import (
	"eurocompare/internal/marketplace"
	"eurocompare/internal/platform/models"
	"eurocompare/internal/pricetext"
)

// ComputeStats derives per country statistics from chronologically
// ordered price points. Countries without samples are left out.
//
// The trend compares the newest price against the unrounded mean, so a
// flat history reads as stable even when the rounded average differs.
func ComputeStats(byCountry map[marketplace.Country][]models.PricePoint) map[marketplace.Country]models.CountryStats {
	stats := make(map[marketplace.Country]models.CountryStats, len(byCountry))

	for country, points := range byCountry {
		if len(points) == 0 {
			continue
		}

		minPrice := points[0].Price
		maxPrice := points[0].Price
		sum := 0.0
		for ix := range points {
			price := points[ix].Price
			if price < minPrice {
				minPrice = price
			}
			if price > maxPrice {
				maxPrice = price
			}
			sum += price
		}

		mean := sum / float64(len(points))
		current := points[len(points)-1].Price

		trend := "stable"
		switch {
		case current > mean:
			trend = "up"
		case current < mean:
			trend = "down"
		}

		stats[country] = models.CountryStats{
			MinPrice:     minPrice,
			MaxPrice:     maxPrice,
			AvgPrice:     pricetext.Round2(mean),
			CurrentPrice: current,
			Trend:        trend,
			PriceChange:  pricetext.Round2(current - mean),
			Samples:      len(points),
		}
	}

	return stats
}
