package alerting_test

import (
	"context"
	"testing"

	"eurocompare/internal/alerting"
	"eurocompare/internal/alerting/mocks"
	"eurocompare/internal/marketplace"
	"eurocompare/internal/platform"
	"eurocompare/internal/platform/models"
	"eurocompare/internal/platform/models/modelstesting"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const priceCeiling = 100000

func validAlert(ops ...func(a *models.PriceAlert)) models.PriceAlert {
	alert := modelstesting.FakeAlert(func(a *models.PriceAlert) {
		a.ASIN = testASIN
		a.TargetPrice = 250
		a.Email = "watcher@example.com"
		a.Country = marketplace.Germany
	})
	for _, op := range ops {
		op(&alert)
	}
	return alert
}

func TestUnitCreate(t *testing.T) {
	store := mocks.NewStore(t)

	alert := validAlert()

	store.On("HasActiveAlert", mock.Anything, testASIN, "watcher@example.com", "DE").
		Return(false, nil).
		Once()
	store.On("CreateAlert", mock.Anything, &alert).Return(nil).Once()

	service := alerting.NewService(store, priceCeiling)

	err := service.Create(context.TODO(), &alert)

	require.NoError(t, err, "shouldn't return any error")
}

func TestUnitCreateValidation(t *testing.T) {
	service := alerting.NewService(mocks.NewStore(t), priceCeiling)

	tests := []struct {
		name  string
		alert models.PriceAlert
	}{
		{
			name:  "should reject malformed product id",
			alert: validAlert(func(a *models.PriceAlert) { a.ASIN = "not-an-id" }),
		},
		{
			name:  "should reject zero target price",
			alert: validAlert(func(a *models.PriceAlert) { a.TargetPrice = 0 }),
		},
		{
			name:  "should reject negative target price",
			alert: validAlert(func(a *models.PriceAlert) { a.TargetPrice = -10 }),
		},
		{
			name:  "should reject target price at ceiling",
			alert: validAlert(func(a *models.PriceAlert) { a.TargetPrice = priceCeiling }),
		},
		{
			name:  "should reject malformed email",
			alert: validAlert(func(a *models.PriceAlert) { a.Email = "not an email" }),
		},
		{
			name:  "should reject unsupported country",
			alert: validAlert(func(a *models.PriceAlert) { a.Country = "US" }),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Create(context.TODO(), &tt.alert)

			require.ErrorIs(t, err, platform.ErrValidation)
		})
	}
}

func TestUnitCreateDuplicate(t *testing.T) {
	store := mocks.NewStore(t)

	alert := validAlert()

	store.On("HasActiveAlert", mock.Anything, testASIN, "watcher@example.com", "DE").
		Return(true, nil).
		Once()

	service := alerting.NewService(store, priceCeiling)

	err := service.Create(context.TODO(), &alert)

	require.ErrorIs(t, err, platform.ErrDuplicateAlert)
	store.AssertNotCalled(t, "CreateAlert")
}

func TestUnitList(t *testing.T) {
	tests := []struct {
		name           string
		filter         string
		expectedActive *bool
	}{
		{name: "should list all alerts by default", filter: "", expectedActive: nil},
		{name: "should list all alerts explicitly", filter: "all", expectedActive: nil},
		{name: "should filter active alerts", filter: "true", expectedActive: lo.ToPtr(true)},
		{name: "should filter inactive alerts", filter: "false", expectedActive: lo.ToPtr(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewStore(t)

			alerts := []models.PriceAlert{validAlert()}
			store.On("AlertsByEmail", mock.Anything, "watcher@example.com", tt.expectedActive).
				Return(alerts, nil).
				Once()

			service := alerting.NewService(store, priceCeiling)

			got, err := service.List(context.TODO(), "watcher@example.com", tt.filter)

			require.NoError(t, err)
			assert.Equal(t, alerts, got)
		})
	}
}

func TestUnitListValidation(t *testing.T) {
	service := alerting.NewService(mocks.NewStore(t), priceCeiling)

	_, err := service.List(context.TODO(), "not an email", "")
	require.ErrorIs(t, err, platform.ErrValidation, "should reject malformed email")

	_, err = service.List(context.TODO(), "watcher@example.com", "sometimes")
	require.ErrorIs(t, err, platform.ErrValidation, "should reject unknown filter")
}

func TestUnitDelete(t *testing.T) {
	store := mocks.NewStore(t)
	store.On("DeleteAlert", mock.Anything, int64(7)).Return(true, nil).Once()

	service := alerting.NewService(store, priceCeiling)

	require.NoError(t, service.Delete(context.TODO(), 7))
}

func TestUnitDeleteNotFound(t *testing.T) {
	store := mocks.NewStore(t)
	store.On("DeleteAlert", mock.Anything, int64(7)).Return(false, nil).Once()

	service := alerting.NewService(store, priceCeiling)

	err := service.Delete(context.TODO(), 7)

	require.ErrorIs(t, err, platform.ErrAlertNotFound)
}
