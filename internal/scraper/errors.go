package scraper

import "errors"

var (
	// ErrStatusNotOK is returned when a storefront answers with an
	// unexpected HTTP status.
	ErrStatusNotOK = errors.New("unexpected response status")
	// ErrBlocked is returned when a storefront refuses to serve the
	// page, usually with a captcha or a 503.
	ErrBlocked = errors.New("storefront blocked the request")
	// ErrPriceNotFound is returned when the product page carries no
	// recognizable price text.
	ErrPriceNotFound = errors.New("price not found on page")
	// ErrRateLimited is returned when the per country request budget
	// is exhausted.
	ErrRateLimited = errors.New("request rate limit exceeded")
)
