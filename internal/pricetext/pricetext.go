// Package pricetext normalizes raw, locale-formatted storefront price
// text into canonical decimal amounts.
package pricetext

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotParseable is returned when no known price shape matches the text.
var ErrNotParseable = errors.New("price text not parseable")

// DefaultCeiling is the upper bound (exclusive) for accepted prices.
// Values at or above it are treated as mis-parses (ratings, years,
// review counts glued together).
const DefaultCeiling = 100000

// Price shapes in priority order. First full match wins.
var shapes = []*regexp.Regexp{
	// 1.234,56 - dot-grouped thousands, comma decimal (DE, IT)
	regexp.MustCompile(`^(\d{1,3}(?:\.\d{3})*),(\d{2})$`),
	// 1,234.56 - comma-grouped thousands, dot decimal
	regexp.MustCompile(`^(\d{1,3}(?:,\d{3})*)\.(\d{2})$`),
	// 1234,56 - plain comma decimal (FR, ES)
	regexp.MustCompile(`^(\d+),(\d{2})$`),
	// 1234.56 - plain dot decimal
	regexp.MustCompile(`^(\d+)\.(\d{2})$`),
	// 1234 - whole units only
	regexp.MustCompile(`^(\d+)$`),
}

// 24,99-29,99-34,99 - strikethrough artifact where old prices trail the
// live one. Only the first group is the live price.
var strikethrough = regexp.MustCompile(`^(\d+(?:[.,]\d{2})?)-\d+(?:[.,]\d{2})?-\d+(?:[.,]\d{2})?$`)

var digitRun = regexp.MustCompile(`\d+`)

// Option is custom configuration of Normalizer.
type Option func(n *Normalizer)

// Normalizer maps raw price text to canonical decimal amounts.
type Normalizer struct {
	ceiling float64
}

// NewNormalizer returns a Normalizer with the default price ceiling.
func NewNormalizer(ops ...Option) *Normalizer {
	nrm := &Normalizer{
		ceiling: DefaultCeiling,
	}

	for _, op := range ops {
		op(nrm)
	}

	return nrm
}

// WithCeiling sets a custom upper bound (exclusive) for accepted prices.
func WithCeiling(ceiling float64) Option {
	return func(n *Normalizer) {
		n.ceiling = ceiling
	}
}

// Normalize maps raw price text to a canonical amount rounded half-up
// to two decimals. It returns ErrNotParseable when no known shape
// matches or the parsed value falls outside (0, ceiling).
func (n *Normalizer) Normalize(raw string) (float64, error) {
	cleaned := clean(raw)
	if cleaned == "" || strings.HasPrefix(cleaned, "-") {
		return 0, fmt.Errorf("%w: %q", ErrNotParseable, raw)
	}

	if match := strikethrough.FindStringSubmatch(cleaned); match != nil {
		cleaned = match[1]
	}

	for _, shape := range shapes {
		match := shape.FindStringSubmatch(cleaned)
		if match == nil {
			continue
		}

		price, err := parseMatch(match)
		if err != nil {
			continue
		}

		// A matched shape with an out-of-range value is a mis-parse;
		// the digit-run fallback must not resurrect it.
		if !n.inBounds(price) {
			return 0, fmt.Errorf("%w: %q", ErrNotParseable, raw)
		}

		return Round2(price), nil
	}

	// Last resort when no shape matched: first maximal digit run, same
	// bounds check.
	if run := digitRun.FindString(cleaned); run != "" {
		price, err := strconv.ParseFloat(run, 64)
		if err == nil && n.inBounds(price) {
			return Round2(price), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrNotParseable, raw)
}

// Ceiling returns the configured upper bound.
func (n *Normalizer) Ceiling() float64 {
	return n.ceiling
}

func (n *Normalizer) inBounds(price float64) bool {
	return price > 0 && price < n.ceiling
}

// clean drops every rune outside {digit, comma, dot, hyphen}. This also
// removes all whitespace variants, including non-breaking and unicode
// spaces, and currency symbols.
func clean(raw string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case r == ',' || r == '.' || r == '-':
			return r
		default:
			return -1
		}
	}, raw)
}

func parseMatch(match []string) (float64, error) {
	switch len(match) {
	case 2:
		// Whole units only.
		return strconv.ParseFloat(match[1], 64)
	case 3:
		// Fractional shape: strip grouping separators from the integer
		// part and join with the two-digit fraction.
		integer := strings.NewReplacer(".", "", ",", "").Replace(match[1])
		return strconv.ParseFloat(integer+"."+match[2], 64)
	default:
		return 0, fmt.Errorf("unexpected match groups: %d", len(match))
	}
}

// Round2 rounds half-up to two decimal places.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
