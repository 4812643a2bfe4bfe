package alerting_test

import (
	"context"
	"testing"
	"time"

	"eurocompare/internal/alerting"
	"eurocompare/internal/alerting/mocks"
	"eurocompare/internal/marketplace"
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

func observationAt(country marketplace.Country, price float64) models.Observation {
	return modelstesting.FakeObservation(func(o *models.Observation) {
		o.ASIN = testASIN
		o.Country = country
		o.Price = price
	})
}

func alertFor(id int64, country marketplace.Country, target float64) models.PriceAlert {
	return modelstesting.FakeAlert(func(a *models.PriceAlert) {
		a.ID = id
		a.ASIN = testASIN
		a.Country = country
		a.TargetPrice = target
	})
}

func TestUnitEvaluate(t *testing.T) {
	store := mocks.NewAlertStore(t)
	notifier := mocks.NewNotifier(t)

	triggered := alertFor(1, marketplace.Germany, 300)
	tooExpensive := alertFor(2, marketplace.France, 250)
	noObservation := alertFor(3, marketplace.Italy, 500)

	observations := []models.Observation{
		observationAt(marketplace.France, 299.99),
		observationAt(marketplace.Germany, 289.99),
	}

	store.On("ActiveAlerts", mock.Anything, testASIN).
		Return([]models.PriceAlert{triggered, tooExpensive, noObservation}, nil).
		Once()
	store.On("ClaimAlert", mock.Anything, int64(1), now).Return(true, nil).Once()
	notifier.On("Send", mock.Anything, triggered, 289.99, 10.01).Return(nil).Once()

	ev := alerting.NewEvaluator(store, notifier, alerting.WithEvaluatorClock(fakeClock{now: now}))

	err := ev.Evaluate(context.TODO(), testASIN, observations)

	require.NoError(t, err, "shouldn't return any error")
	store.AssertNotCalled(t, "ClaimAlert", mock.Anything, int64(2), mock.Anything)
	store.AssertNotCalled(t, "ClaimAlert", mock.Anything, int64(3), mock.Anything)
}

func TestUnitEvaluateExactTargetPrice(t *testing.T) {
	store := mocks.NewAlertStore(t)
	notifier := mocks.NewNotifier(t)

	alert := alertFor(1, marketplace.Spain, 289.99)

	store.On("ActiveAlerts", mock.Anything, testASIN).
		Return([]models.PriceAlert{alert}, nil).
		Once()
	store.On("ClaimAlert", mock.Anything, int64(1), now).Return(true, nil).Once()
	notifier.On("Send", mock.Anything, alert, 289.99, 0.0).Return(nil).Once()

	ev := alerting.NewEvaluator(store, notifier, alerting.WithEvaluatorClock(fakeClock{now: now}))

	err := ev.Evaluate(context.TODO(), testASIN, []models.Observation{observationAt(marketplace.Spain, 289.99)})

	require.NoError(t, err, "alert should fire when price equals target")
}

func TestUnitEvaluateClaimLost(t *testing.T) {
	store := mocks.NewAlertStore(t)
	notifier := mocks.NewNotifier(t)

	alert := alertFor(1, marketplace.Germany, 300)

	store.On("ActiveAlerts", mock.Anything, testASIN).
		Return([]models.PriceAlert{alert}, nil).
		Once()
	store.On("ClaimAlert", mock.Anything, int64(1), now).Return(false, nil).Once()

	ev := alerting.NewEvaluator(store, notifier, alerting.WithEvaluatorClock(fakeClock{now: now}))

	err := ev.Evaluate(context.TODO(), testASIN, []models.Observation{observationAt(marketplace.Germany, 289.99)})

	require.NoError(t, err)
	notifier.AssertNotCalled(t, "Send")
}

func TestUnitEvaluateNotifierFailure(t *testing.T) {
	store := mocks.NewAlertStore(t)
	notifier := mocks.NewNotifier(t)

	alert := alertFor(1, marketplace.Germany, 300)

	store.On("ActiveAlerts", mock.Anything, testASIN).
		Return([]models.PriceAlert{alert}, nil).
		Once()
	store.On("ClaimAlert", mock.Anything, int64(1), now).Return(true, nil).Once()
	notifier.On("Send", mock.Anything, alert, 289.99, 10.01).Return(assert.AnError).Once()
	store.On("ReleaseAlert", mock.Anything, int64(1)).Return(nil).Once()

	ev := alerting.NewEvaluator(store, notifier, alerting.WithEvaluatorClock(fakeClock{now: now}))

	err := ev.Evaluate(context.TODO(), testASIN, []models.Observation{observationAt(marketplace.Germany, 289.99)})

	require.NoError(t, err, "failed notification shouldn't fail the evaluation")
}

func TestUnitEvaluateStoreError(t *testing.T) {
	store := mocks.NewAlertStore(t)
	notifier := mocks.NewNotifier(t)

	store.On("ActiveAlerts", mock.Anything, testASIN).
		Return(nil, assert.AnError).
		Once()

	ev := alerting.NewEvaluator(store, notifier)

	err := ev.Evaluate(context.TODO(), testASIN, []models.Observation{observationAt(marketplace.Germany, 289.99)})

	require.ErrorContains(t, err, "can't load active alerts")
	require.ErrorIs(t, err, assert.AnError)
}

func TestUnitEvaluateNoAlerts(t *testing.T) {
	store := mocks.NewAlertStore(t)
	notifier := mocks.NewNotifier(t)

	store.On("ActiveAlerts", mock.Anything, testASIN).
		Return([]models.PriceAlert{}, nil).
		Once()

	ev := alerting.NewEvaluator(store, notifier)

	err := ev.Evaluate(context.TODO(), testASIN, []models.Observation{observationAt(marketplace.Germany, 289.99)})

	require.NoError(t, err)
	notifier.AssertNotCalled(t, "Send")
}
