package models

import (
	"time"

	"eurocompare/internal/marketplace"
)

// ErrorKind classifies a per-country comparison failure.
type ErrorKind string

const (
	// ErrorKindFetch marks adapter failures: network, blocked pages, timeouts.
	ErrorKindFetch ErrorKind = "fetch"
	// ErrorKindParse marks price text that was extracted but not parseable.
	ErrorKindParse ErrorKind = "parse"
)

// CountryError is one storefront's failure during a comparison.
type CountryError struct {
	Country marketplace.Country `json:"country"`
	Kind    ErrorKind           `json:"kind"`
	Reason  string              `json:"reason"`
}

// Listing is the raw data extracted from one storefront product page,
// before price normalization.
type Listing struct {
	Title        string
	RawPrice     string
	ImageURL     string
	Availability string
	URL          string
}

// Observation is one priced snapshot of a product in one country at one
// instant. Observations are immutable and append-only.
type Observation struct {
	ASIN         string              `json:"asin"`
	Country      marketplace.Country `json:"country"`
	Price        float64             `json:"price"`
	Title        string              `json:"title"`
	ImageURL     string              `json:"image"`
	Availability string              `json:"availability"`
	URL          string              `json:"url"`
	CapturedAt   time.Time           `json:"capturedAt"`
}

// CountryPrice is an Observation annotated for presentation in a
// comparison result.
type CountryPrice struct {
	Observation
	CountryName string  `json:"countryName"`
	Flag        string  `json:"flag"`
	Shipping    string  `json:"shipping"`
	IsBest      bool    `json:"isBest"`
	Savings     float64 `json:"savings"`
}

// Comparison is the ephemeral result of one multi-country price
// comparison.
type Comparison struct {
	ASIN         string         `json:"asin"`
	ProductName  string         `json:"productName"`
	Image        string         `json:"image"`
	Countries    []CountryPrice `json:"countries"`
	BestPrice    float64        `json:"bestPrice"`
	MaxSavings   float64        `json:"maxSavings"`
	SuccessCount int            `json:"successCount"`
	Errors       []CountryError `json:"errors,omitempty"`
	ComparedAt   time.Time      `json:"comparedAt"`
	Cached       bool           `json:"cached"`
}

// PriceAlert is a standing price-drop alert. It transitions
// active -> inactive exactly once, set by the evaluator when the price
// condition is met and the claim succeeds.
type PriceAlert struct {
	ID           int64               `json:"id"`
	ASIN         string              `json:"asin"`
	TargetPrice  float64             `json:"targetPrice"`
	Email        string              `json:"email"`
	Country      marketplace.Country `json:"country"`
	ProductName  string              `json:"productName"`
	ProductImage string              `json:"productImage"`
	CreatedAt    time.Time           `json:"createdAt"`
	IsActive     bool                `json:"isActive"`
	TriggeredAt  *time.Time          `json:"triggeredAt,omitempty"`
}

// ProductCandidate is one search result. Price is nil when the listing
// price text could not be normalized.
type ProductCandidate struct {
	ASIN         string   `json:"asin"`
	Title        string   `json:"title"`
	Price        *float64 `json:"price"`
	PriceText    string   `json:"priceText"`
	ImageURL     string   `json:"image"`
	URL          string   `json:"url"`
	Rating       string   `json:"rating,omitempty"`
	ReviewsCount string   `json:"reviewsCount,omitempty"`
	SearchRank   int      `json:"searchRank"`
}

// PricePoint is one historical price sample for charting.
type PricePoint struct {
	Price        float64   `json:"price"`
	Availability string    `json:"availability"`
	CapturedAt   time.Time `json:"date"`
}

// CountryStats are derived trend statistics for one country's history.
type CountryStats struct {
	MinPrice     float64 `json:"minPrice"`
	MaxPrice     float64 `json:"maxPrice"`
	AvgPrice     float64 `json:"avgPrice"`
	CurrentPrice float64 `json:"currentPrice"`
	Trend        string  `json:"trend"`
	PriceChange  float64 `json:"priceChange"`
	Samples      int     `json:"totalRecords"`
}

// ProductInfo is the latest known title and image of a product.
type ProductInfo struct {
	Title    string `json:"title"`
	ImageURL string `json:"image"`
}

// PriceHistory is the stored history of a product grouped by country,
// with derived statistics.
type PriceHistory struct {
	ASIN         string                               `json:"asin"`
	Product      *ProductInfo                         `json:"productInfo,omitempty"`
	ByCountry    map[marketplace.Country][]PricePoint `json:"history"`
	Stats        map[marketplace.Country]CountryStats `json:"stats"`
	TotalRecords int                                  `json:"totalRecords"`
	Days         int                                  `json:"daysRequested"`
}

// TrendingProduct is an aggregate over recent observations of one
// product.
type TrendingProduct struct {
	ASIN         string  `json:"asin"`
	Title        string  `json:"title"`
	ImageURL     string  `json:"image"`
	Observations int64   `json:"trackingCount"`
	AvgPrice     float64 `json:"avgPrice"`
	MinPrice     float64 `json:"minPrice"`
	MaxPrice     float64 `json:"maxPrice"`
}
