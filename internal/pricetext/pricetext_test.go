package pricetext_test

import (
	"testing"

	"eurocompare/internal/pricetext"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitNormalize(t *testing.T) {
	tests := map[string]struct {
		raw  string
		want float64
	}{
		"dot grouped comma decimal":   {raw: "1.234,56", want: 1234.56},
		"comma grouped dot decimal":   {raw: "1,234.56", want: 1234.56},
		"plain comma decimal":         {raw: "299,99", want: 299.99},
		"plain dot decimal":           {raw: "299.99", want: 299.99},
		"integer only":                {raw: "1999", want: 1999.00},
		"currency symbol suffix":      {raw: "299,99 €", want: 299.99},
		"currency symbol prefix":      {raw: "EUR 299,99", want: 299.99},
		"non breaking space":          {raw: "1 234,56", want: 1234.56},
		"unicode thin space":          {raw: "1 299,00", want: 1299.00},
		"strikethrough triple":        {raw: "24,99-29,99-34,99", want: 24.99},
		"strikethrough whole units":   {raw: "1999-2499-2999", want: 1999.00},
		"multiple dot groups":         {raw: "12.345,67", want: 12345.67},
		"surrounding whitespace":      {raw: "  49,90  ", want: 49.90},
		"fallback first digit run":    {raw: "about 120 units", want: 120.00},
		"decimal with stray currency": {raw: "€1.049,00", want: 1049.00},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			nrm := pricetext.NewNormalizer()

			got, err := nrm.Normalize(tt.raw)

			require.NoError(t, err, "should normalize %q", tt.raw)
			assert.InDelta(t, tt.want, got, 1e-9, "should return canonical amount")
		})
	}
}

func TestUnitNormalizeRejects(t *testing.T) {
	tests := map[string]string{
		"empty":                "",
		"only whitespace":      "   ",
		"no digits":            "Prix non disponible",
		"zero":                 "0",
		"zero decimal":         "0,00",
		"negative":             "-12,50",
		"negative decimal":     "-0,01",
		"at ceiling":           "100000",
		"over ceiling":         "1.250.000,00",
		"grouped over ceiling": "1.234.567,89",
		"separators only":      ",.-",
		"garbage unicode":      "★★★★☆",
		"huge concatenation":   "20259999999",
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			nrm := pricetext.NewNormalizer()

			_, err := nrm.Normalize(raw)

			require.ErrorIs(t, err, pricetext.ErrNotParseable, "should reject %q", raw)
		})
	}
}

func TestUnitNormalizeCustomCeiling(t *testing.T) {
	nrm := pricetext.NewNormalizer(pricetext.WithCeiling(500))

	got, err := nrm.Normalize("499,99")
	require.NoError(t, err)
	assert.InDelta(t, 499.99, got, 1e-9)

	_, err = nrm.Normalize("500,00")
	require.ErrorIs(t, err, pricetext.ErrNotParseable, "should reject values at the ceiling")
}

func TestUnitNormalizeShapePriority(t *testing.T) {
	// "1.234" could be a dot-grouped integer or a mis-typed decimal;
	// the grouped-thousands shapes require a two-digit fraction, so
	// this resolves through the fallback digit run.
	nrm := pricetext.NewNormalizer()

	got, err := nrm.Normalize("1.234")

	require.NoError(t, err)
	assert.InDelta(t, 1.00, got, 1e-9, "first digit run wins when no full shape matches")
}

func TestUnitRound2(t *testing.T) {
	assert.InDelta(t, 10.01, pricetext.Round2(10.005), 1e-9, "should round half up")
	assert.InDelta(t, 10.00, pricetext.Round2(10.0049), 1e-9)
	assert.InDelta(t, -19.99, pricetext.Round2(-19.995), 1e-9, "half rounds toward positive infinity")
}
