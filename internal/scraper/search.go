package scraper

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"eurocompare/internal/marketplace"
	"eurocompare/internal/platform/models"

	"github.com/PuerkitoBio/goquery"
)

const maxSearchResults = 20

// Search result selector waterfalls.
var (
	resultSelectors = []string{
		`[data-component-type="s-search-result"]`,
		".s-result-item[data-asin]",
		".s-search-result",
	}
	resultTitleSelectors = []string{
		"h2 a span",
		"h2 span",
		".a-size-mini span",
		".a-size-base-plus",
		"h2 a",
	}
	resultPriceSelectors = []string{
		".a-price .a-offscreen",
		".a-price-whole",
		".a-price-range",
		".a-offscreen",
	}
	resultImageSelectors = []string{
		"img.s-image",
		".s-product-image img",
		"img[data-image-latency]",
		"img",
	}
)

var ratingPattern = regexp.MustCompile(`[\d,.]+`)

// Search runs a product search on the country's storefront and returns
// up to 20 candidates in page order. Prices are raw text, normalization
// is left to the caller.
func (s *Scraper) Search(ctx context.Context, query string, country marketplace.Country) ([]models.ProductCandidate, error) {
	candidates, err := s.search(ctx, query, country)
	observeOutcome(country, err)
	return candidates, err
}

func (s *Scraper) search(ctx context.Context, query string, country marketplace.Country) ([]models.ProductCandidate, error) {
	if err := s.allow(ctx, country); err != nil {
		return nil, err
	}

	pageURL := s.baseURL(country) + marketplace.SearchPath(query)

	doc, err := s.fetchDocument(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("can't fetch search page: %w", err)
	}

	results := findResults(doc)

	candidates := make([]models.ProductCandidate, 0, len(results.Nodes))
	results.EachWithBreak(func(_ int, result *goquery.Selection) bool {
		candidate, ok := extractCandidate(result, country)
		if !ok {
			return true
		}

		candidate.SearchRank = len(candidates) + 1
		candidates = append(candidates, candidate)

		return len(candidates) < maxSearchResults
	})

	return candidates, nil
}

func findResults(doc *goquery.Document) *goquery.Selection {
	for _, selector := range resultSelectors {
		results := doc.Find(selector)
		if results.Length() > 0 {
			return results
		}
	}

	// Wide fallback for markup the known selectors miss.
	return doc.Find("div[data-asin]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.AttrOr("data-asin", "") != ""
	})
}

func extractCandidate(result *goquery.Selection, country marketplace.Country) (models.ProductCandidate, bool) {
	asin := result.AttrOr("data-asin", "")
	title := firstText(result, resultTitleSelectors)
	if asin == "" || len(title) <= 5 {
		return models.ProductCandidate{}, false
	}

	candidate := models.ProductCandidate{
		ASIN:      asin,
		Title:     title,
		PriceText: firstText(result, resultPriceSelectors),
		ImageURL:  firstImage(result, resultImageSelectors),
		URL:       marketplace.ProductURL(asin, country),
	}

	if href := result.Find("h2 a, .a-link-normal").First().AttrOr("href", ""); href != "" {
		candidate.URL = resolveHref(href, country)
	}

	rating := result.Find(".a-icon-alt, .a-star-mini").First().Text()
	candidate.Rating = ratingPattern.FindString(rating)
	candidate.ReviewsCount = strings.TrimSpace(result.Find(`a[href*="#customerReviews"] span`).First().Text())

	return candidate, true
}

func resolveHref(href string, country marketplace.Country) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return country.BaseURL() + href
}
