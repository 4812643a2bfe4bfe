// Package scraper extracts product listings from storefront HTML.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"eurocompare/internal/marketplace"
	"eurocompare/internal/platform/models"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-redis/redis_rate/v10"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Selector waterfalls for product pages. Storefront markup changes
// often, so each field is tried against several known shapes in order.
var (
	titleSelectors = []string{
		"#productTitle",
		".product-title",
		"h1.a-size-large",
		"h1 span",
	}
	priceSelectors = []string{
		".a-price .a-offscreen",
		".a-price-whole",
		"#priceblock_dealprice",
		"#priceblock_ourprice",
		".a-size-medium.a-color-price",
		".a-price-range .a-offscreen",
		".a-price-display .a-offscreen",
	}
	imageSelectors = []string{
		"#landingImage",
		"[data-old-hires]",
		".a-dynamic-image",
		"#imgBlkFront",
	}
	availabilitySelectors = []string{
		"#availability span",
		".a-color-success",
		".a-color-state",
	}
)

var euroPricePattern = regexp.MustCompile(`[\d\s,.]+\s*€`)

// Scraper fetches and parses storefront pages.
type Scraper struct {
	client    *http.Client
	userAgent string
	baseURL   func(country marketplace.Country) string
	limiter   *redis_rate.Limiter
	perMinute int
}

// Option configures a Scraper.
type Option func(s *Scraper)

// WithHTTPClient sets the HTTP client used for storefront requests.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Scraper) {
		s.client = client
	}
}

// WithBaseURL points every storefront at base instead of its real
// domain. Used by tests to target a local server.
func WithBaseURL(base string) Option {
	return func(s *Scraper) {
		s.baseURL = func(marketplace.Country) string { return base }
	}
}

// WithRateLimiter caps requests per storefront to perMinute using a
// Redis backed limiter shared between instances.
func WithRateLimiter(limiter *redis_rate.Limiter, perMinute int) Option {
	return func(s *Scraper) {
		s.limiter = limiter
		s.perMinute = perMinute
	}
}

// NewScraper returns new Scraper.
func NewScraper(ops ...Option) *Scraper {
	s := Scraper{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: defaultUserAgent,
		baseURL: func(country marketplace.Country) string {
			return country.BaseURL()
		},
	}

	for _, op := range ops {
		op(&s)
	}

	return &s
}

// Product fetches the product page of asin on the country's storefront
// and extracts its listing. The price is returned as raw text, the way
// the page renders it.
func (s *Scraper) Product(ctx context.Context, asin string, country marketplace.Country) (models.Listing, error) {
	listing, err := s.product(ctx, asin, country)
	observeOutcome(country, err)
	return listing, err
}

func (s *Scraper) product(ctx context.Context, asin string, country marketplace.Country) (models.Listing, error) {
	if err := s.allow(ctx, country); err != nil {
		return models.Listing{}, err
	}

	pageURL := s.baseURL(country) + marketplace.ProductPath(asin)

	doc, err := s.fetchDocument(ctx, pageURL)
	if err != nil {
		return models.Listing{}, fmt.Errorf("can't fetch product page for %s: %w", country, err)
	}

	listing := models.Listing{
		Title:        firstText(doc.Selection, titleSelectors),
		RawPrice:     firstText(doc.Selection, priceSelectors),
		ImageURL:     firstImage(doc.Selection, imageSelectors),
		Availability: firstText(doc.Selection, availabilitySelectors),
		URL:          marketplace.ProductURL(asin, country),
	}

	if listing.RawPrice == "" {
		listing.RawPrice = euroFallback(doc)
	}
	if listing.RawPrice == "" {
		return models.Listing{}, fmt.Errorf("%w: %s on %s", ErrPriceNotFound, asin, country)
	}

	return listing, nil
}

func (s *Scraper) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("can't create request: %w", err)
	}

	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9,de;q=0.8,fr;q=0.7")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusServiceUnavailable {
		return nil, fmt.Errorf("%w: status %d", ErrBlocked, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrStatusNotOK, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("can't parse page: %w", err)
	}

	return doc, nil
}

func (s *Scraper) allow(ctx context.Context, country marketplace.Country) error {
	if s.limiter == nil {
		return nil
	}

	res, err := s.limiter.Allow(ctx, "scrape:"+string(country), redis_rate.PerMinute(s.perMinute))
	if err != nil {
		return fmt.Errorf("can't check rate limit: %w", err)
	}
	if res.Allowed == 0 {
		return fmt.Errorf("%w: %s", ErrRateLimited, country)
	}

	return nil
}

func firstText(root *goquery.Selection, selectors []string) string {
	for _, selector := range selectors {
		text := strings.TrimSpace(root.Find(selector).First().Text())
		if text != "" {
			return text
		}
	}
	return ""
}

func firstImage(root *goquery.Selection, selectors []string) string {
	for _, selector := range selectors {
		element := root.Find(selector).First()
		src := element.AttrOr("src", "")
		if src == "" {
			src = element.AttrOr("data-old-hires", "")
		}
		if strings.HasPrefix(src, "http") {
			return src
		}
	}
	return ""
}

// euroFallback scans the page body for anything shaped like a euro
// amount. Last resort when no known price selector matches.
func euroFallback(doc *goquery.Document) string {
	body := doc.Find("body").Text()
	return strings.TrimSpace(euroPricePattern.FindString(body))
}
