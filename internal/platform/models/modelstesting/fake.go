package modelstesting

import (
	"math/rand"
	"strings"
	"time"

	"eurocompare/internal/marketplace"
	"eurocompare/internal/platform/models"

	"github.com/go-faker/faker/v4"
)

// FakeASIN returns a well-formed 10-character catalog id.
func FakeASIN() string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	sb := strings.Builder{}
	sb.WriteByte('B')
	for range 9 {
		sb.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return sb.String()
}

// FakeCountry returns one of the supported storefront countries.
func FakeCountry() marketplace.Country {
	return marketplace.Countries[rand.Intn(len(marketplace.Countries))]
}

// FakeObservation returns models.Observation with fake data.
func FakeObservation(ops ...func(o *models.Observation)) models.Observation {
	country := FakeCountry()
	asin := FakeASIN()

	observation := models.Observation{
		ASIN:         asin,
		Country:      country,
		Price:        float64(rand.Intn(99999))/100 + 1,
		Title:        faker.Sentence(),
		ImageURL:     faker.URL(),
		Availability: faker.Word(),
		URL:          marketplace.ProductURL(asin, country),
		CapturedAt:   time.Now().UTC().Truncate(time.Second),
	}

	for _, op := range ops {
		op(&observation)
	}

	return observation
}

// FakeAlert returns an active models.PriceAlert with fake data.
func FakeAlert(ops ...func(a *models.PriceAlert)) models.PriceAlert {
	alert := models.PriceAlert{
		ID:           rand.Int63(),
		ASIN:         FakeASIN(),
		TargetPrice:  float64(rand.Intn(99999))/100 + 1,
		Email:        faker.Email(),
		Country:      FakeCountry(),
		ProductName:  faker.Sentence(),
		ProductImage: faker.URL(),
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
		IsActive:     true,
	}

	for _, op := range ops {
		op(&alert)
	}

	return alert
}

// FakeListing returns models.Listing with fake data and a parseable
// price text.
func FakeListing(ops ...func(l *models.Listing)) models.Listing {
	listing := models.Listing{
		Title:        faker.Sentence(),
		RawPrice:     "299,99 €",
		ImageURL:     faker.URL(),
		Availability: faker.Word(),
		URL:          faker.URL(),
	}

	for _, op := range ops {
		op(&listing)
	}

	return listing
}
