package history_test

import (
	"context"
	"testing"
	"time"

	"eurocompare/internal/history"
	"eurocompare/internal/history/mocks"
	"eurocompare/internal/marketplace"
	"eurocompare/internal/platform"
	"eurocompare/internal/platform/models"
	"eurocompare/internal/platform/models/modelstesting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testASIN = "B0BDHWDR12"
	now      = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
)

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time {
	return c.now
}

func TestUnitRecord(t *testing.T) {
	store := mocks.NewStore(t)

	observations := []models.Observation{modelstesting.FakeObservation()}
	store.On("AppendObservations", mock.Anything, observations).Return(nil).Once()

	service := history.NewService(store)

	require.NoError(t, service.Record(context.TODO(), observations))
}

func TestUnitHistory(t *testing.T) {
	store := mocks.NewStore(t)

	observations := []models.Observation{
		modelstesting.FakeObservation(func(o *models.Observation) {
			o.ASIN = testASIN
			o.Country = marketplace.Germany
			o.Price = 100
			o.Title = "Wireless Headphones XB-900"
			o.ImageURL = "https://img.example.com/headphones.jpg"
			o.CapturedAt = now.Add(-48 * time.Hour)
		}),
		modelstesting.FakeObservation(func(o *models.Observation) {
			o.ASIN = testASIN
			o.Country = marketplace.Germany
			o.Price = 80
			o.CapturedAt = now.Add(-24 * time.Hour)
		}),
		modelstesting.FakeObservation(func(o *models.Observation) {
			o.ASIN = testASIN
			o.Country = marketplace.France
			o.Price = 90
			o.CapturedAt = now.Add(-24 * time.Hour)
		}),
	}

	store.On("Observations", mock.Anything, testASIN, now.AddDate(0, 0, -14)).
		Return(observations, nil).
		Once()

	service := history.NewService(store, history.WithClock(fakeClock{now: now}))

	got, err := service.History(context.TODO(), testASIN, 14)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, testASIN, got.ASIN)
	assert.Equal(t, 14, got.Days)
	assert.Equal(t, 3, got.TotalRecords)

	require.NotNil(t, got.Product)
	assert.Equal(t, "Wireless Headphones XB-900", got.Product.Title)

	require.Len(t, got.ByCountry[marketplace.Germany], 2)
	require.Len(t, got.ByCountry[marketplace.France], 1)

	germany := got.Stats[marketplace.Germany]
	assert.Equal(t, "down", germany.Trend)
	assert.InDelta(t, 80, germany.CurrentPrice, 1e-9)
	assert.InDelta(t, 90, germany.AvgPrice, 1e-9)
	assert.Equal(t, 2, germany.Samples)
}

func TestUnitHistoryDefaultDays(t *testing.T) {
	store := mocks.NewStore(t)

	store.On("Observations", mock.Anything, testASIN, now.AddDate(0, 0, -30)).
		Return([]models.Observation{}, nil).
		Once()

	service := history.NewService(store, history.WithClock(fakeClock{now: now}))

	got, err := service.History(context.TODO(), testASIN, 0)

	require.NoError(t, err)
	assert.Equal(t, 30, got.Days, "should fall back to the default window")
	assert.Equal(t, 0, got.TotalRecords)
	assert.Nil(t, got.Product, "empty history should carry no product info")
	assert.Empty(t, got.Stats)
}

func TestUnitHistoryMalformedID(t *testing.T) {
	service := history.NewService(mocks.NewStore(t))

	_, err := service.History(context.TODO(), "not-an-id", 30)

	require.ErrorIs(t, err, platform.ErrValidation)
}

func TestUnitTrending(t *testing.T) {
	store := mocks.NewStore(t)

	trending := []models.TrendingProduct{
		{ASIN: testASIN, Observations: 12, AvgPrice: 99.998888, MinPrice: 80, MaxPrice: 120},
	}
	store.On("Trending", mock.Anything, now.Add(-7*24*time.Hour), int64(10)).
		Return(trending, nil).
		Once()

	service := history.NewService(store, history.WithClock(fakeClock{now: now}))

	got, err := service.Trending(context.TODO(), 0)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 100.0, got[0].AvgPrice, 1e-9, "should round the average to cents")
}

func TestUnitTrendingClampsLimit(t *testing.T) {
	store := mocks.NewStore(t)

	store.On("Trending", mock.Anything, mock.Anything, int64(50)).
		Return([]models.TrendingProduct{}, nil).
		Once()

	service := history.NewService(store, history.WithClock(fakeClock{now: now}))

	_, err := service.Trending(context.TODO(), 500)

	require.NoError(t, err)
}
