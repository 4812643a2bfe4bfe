// Package marketplace holds the static data of the four supported
// storefronts: domains, localized labels and URL building.
package marketplace

import (
	"fmt"
	"net/url"
	"regexp"
)

// Country is a supported storefront country code.
type Country string

// Supported storefront countries.
const (
	France  Country = "FR"
	Germany Country = "DE"
	Italy   Country = "IT"
	Spain   Country = "ES"
)

// Countries is the fixed storefront list. Comparison results follow
// this order.
var Countries = []Country{France, Germany, Italy, Spain}

type countryData struct {
	domain   string
	name     string
	flag     string
	shipping string
}

var countries = map[Country]countryData{
	France:  {domain: "amazon.fr", name: "France", flag: "🇫🇷", shipping: "Livraison gratuite"},
	Germany: {domain: "amazon.de", name: "Germany", flag: "🇩🇪", shipping: "Kostenloser Versand"},
	Italy:   {domain: "amazon.it", name: "Italy", flag: "🇮🇹", shipping: "Spedizione gratuita"},
	Spain:   {domain: "amazon.es", name: "Spain", flag: "🇪🇸", shipping: "Envío gratis"},
}

var asinPattern = regexp.MustCompile(`^[A-Z0-9]{10}$`)

// ValidASIN reports whether id is a well-formed 10-character catalog id.
func ValidASIN(id string) bool {
	return asinPattern.MatchString(id)
}

// ParseCountry returns the Country for code or false if it is not one
// of the supported storefronts.
func ParseCountry(code string) (Country, bool) {
	if _, ok := countries[Country(code)]; !ok {
		return "", false
	}
	return Country(code), true
}

// Domain returns the storefront domain without scheme or www prefix.
func (c Country) Domain() string {
	return countries[c].domain
}

// Name returns the English display name of the country.
func (c Country) Name() string {
	return countries[c].name
}

// Flag returns the country flag emoji.
func (c Country) Flag() string {
	return countries[c].flag
}

// ShippingLabel returns the localized free shipping label shown on the
// storefront.
func (c Country) ShippingLabel() string {
	return countries[c].shipping
}

// BaseURL returns the storefront base URL.
func (c Country) BaseURL() string {
	return "https://www." + countries[c].domain
}

// ProductPath returns the product page path for asin.
func ProductPath(asin string) string {
	return "/dp/" + asin
}

// SearchPath returns the search results path for query.
func SearchPath(query string) string {
	return fmt.Sprintf("/s?k=%s&ref=nb_sb_noss", url.QueryEscape(query))
}

// ProductURL returns the full product page URL for asin on the
// country's storefront.
func ProductURL(asin string, country Country) string {
	return country.BaseURL() + ProductPath(asin)
}
