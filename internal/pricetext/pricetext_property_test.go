package pricetext_test

import (
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"eurocompare/internal/pricetext"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: any accepted value lies strictly inside (0, ceiling) and
// carries at most two decimal places, regardless of input noise.
func TestProperty_NormalizedValuesAreCanonical(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("accepted values are bounded and 2dp", prop.ForAll(
		func(raw string) bool {
			nrm := pricetext.NewNormalizer()

			price, err := nrm.Normalize(raw)
			if err != nil {
				return true
			}

			if price <= 0 || price >= pricetext.DefaultCeiling {
				return false
			}

			cents := price * 100
			return math.Abs(cents-math.Floor(cents+0.5)) < 1e-6
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

// Property: a comma-decimal euro amount survives the round trip through
// storefront decoration (currency symbol, spaces) unchanged.
func TestProperty_DecoratedCommaDecimalRoundTrips(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	decorations := []string{"%d,%02d", "%d,%02d €", "€ %d,%02d", " %d,%02d € "}

	properties.Property("decorated amounts normalize to the same value", prop.ForAll(
		func(units int, cents int, decoration int) bool {
			raw := fmt.Sprintf(decorations[decoration], units, cents)

			nrm := pricetext.NewNormalizer()
			price, err := nrm.Normalize(raw)
			if err != nil {
				return false
			}

			want := float64(units) + float64(cents)/100
			return math.Abs(price-want) < 1e-9
		},
		gen.IntRange(1, 99999),
		gen.IntRange(0, 99),
		gen.IntRange(0, len(decorations)-1),
	))

	properties.TestingRun(t)
}

// Property: normalization is insensitive to surrounding whitespace.
func TestProperty_WhitespaceInsensitive(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("padding never changes the result", prop.ForAll(
		func(units int, pad int) bool {
			nrm := pricetext.NewNormalizer()

			plain := fmt.Sprintf("%d,99", units)
			padded := strings.Repeat(" ", pad) + plain + strings.Repeat(" ", pad)

			gotPlain, errPlain := nrm.Normalize(plain)
			gotPadded, errPadded := nrm.Normalize(padded)

			if errPlain != nil || errPadded != nil {
				return errPlain != nil && errPadded != nil
			}
			return gotPlain == gotPadded
		},
		gen.IntRange(1, 99999),
		gen.IntRange(0, 8),
	))

	properties.TestingRun(t)
}
