package marketplace_test

import (
	"testing"

	"eurocompare/internal/marketplace"

	"github.com/stretchr/testify/assert"
)

func TestUnitValidASIN(t *testing.T) {
	tests := map[string]struct {
		asin string
		want bool
	}{
		"valid":           {asin: "B0BDHWDR12", want: true},
		"valid digits":    {asin: "0123456789", want: true},
		"too short":       {asin: "B0BDHWDR1", want: false},
		"too long":        {asin: "B0BDHWDR123", want: false},
		"lowercase":       {asin: "b0bdhwdr12", want: false},
		"special chars":   {asin: "B0BDH-DR12", want: false},
		"empty":           {asin: "", want: false},
		"injection chars": {asin: "B0BDHWDR1'", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, marketplace.ValidASIN(tt.asin), "should validate ASIN shape")
		})
	}
}

func TestUnitParseCountry(t *testing.T) {
	for _, country := range marketplace.Countries {
		parsed, ok := marketplace.ParseCountry(string(country))
		assert.True(t, ok, "should accept supported country %s", country)
		assert.Equal(t, country, parsed)
	}

	for _, code := range []string{"GB", "US", "fr", ""} {
		_, ok := marketplace.ParseCountry(code)
		assert.False(t, ok, "should reject unsupported code %q", code)
	}
}

func TestUnitProductURL(t *testing.T) {
	assert.Equal(
		t,
		"https://www.amazon.de/dp/B0BDHWDR12",
		marketplace.ProductURL("B0BDHWDR12", marketplace.Germany),
		"should build product URL from storefront domain",
	)
}

func TestUnitSearchPath(t *testing.T) {
	assert.Equal(
		t,
		"/s?k=usb+c+cable&ref=nb_sb_noss",
		marketplace.SearchPath("usb c cable"),
		"should escape the query",
	)
}

func TestUnitCountryData(t *testing.T) {
	for _, country := range marketplace.Countries {
		assert.NotEmpty(t, country.Domain(), "domain for %s", country)
		assert.NotEmpty(t, country.Name(), "name for %s", country)
		assert.NotEmpty(t, country.Flag(), "flag for %s", country)
		assert.NotEmpty(t, country.ShippingLabel(), "shipping label for %s", country)
	}
}
