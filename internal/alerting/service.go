package alerting

import (
	"context"
	"fmt"
	"regexp"

	"eurocompare/internal/marketplace"
	"eurocompare/internal/platform"
	"eurocompare/internal/platform/models"

	"github.com/samber/lo"
)

//go:generate mockery --name Store --filename store.go

// Store persists alerts.
type Store interface {
	// CreateAlert inserts a new active alert and fills its generated
	// fields. Returns platform.ErrDuplicateAlert on an active
	// duplicate.
	CreateAlert(ctx context.Context, alert *models.PriceAlert) error
	// AlertsByEmail returns the alerts of one email address. A non-nil
	// active filters by alert state.
	AlertsByEmail(ctx context.Context, email string, active *bool) ([]models.PriceAlert, error)
	// HasActiveAlert reports whether an active alert exists for the
	// (asin, email, country) triple.
	HasActiveAlert(ctx context.Context, asin, email, country string) (bool, error)
	// DeleteAlert removes an alert. It reports whether it existed.
	DeleteAlert(ctx context.Context, id int64) (bool, error)
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service validates and manages price alerts.
type Service struct {
	store        Store
	priceCeiling float64
}

// NewService returns new Service. Target prices must stay below
// priceCeiling.
func NewService(store Store, priceCeiling float64) *Service {
	return &Service{
		store:        store,
		priceCeiling: priceCeiling,
	}
}

// Create validates and stores a new alert. The store's unique index
// stays authoritative for duplicates; the pre-check here only gives a
// friendlier fast path.
func (s *Service) Create(ctx context.Context, alert *models.PriceAlert) error {
	if err := s.validate(alert); err != nil {
		return err
	}

	exists, err := s.store.HasActiveAlert(ctx, alert.ASIN, alert.Email, string(alert.Country))
	if err != nil {
		return fmt.Errorf("can't check existing alerts: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: active alert for %s already exists", platform.ErrDuplicateAlert, alert.ASIN)
	}

	if err := s.store.CreateAlert(ctx, alert); err != nil {
		return fmt.Errorf("can't create alert: %w", err)
	}

	return nil
}

// List returns the alerts of email. Filter is "all", "true" or
// "false"; empty means all.
func (s *Service) List(ctx context.Context, email, filter string) ([]models.PriceAlert, error) {
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: malformed email address", platform.ErrValidation)
	}

	var active *bool
	switch filter {
	case "", "all":
	case "true":
		active = lo.ToPtr(true)
	case "false":
		active = lo.ToPtr(false)
	default:
		return nil, fmt.Errorf("%w: unknown alert filter %q", platform.ErrValidation, filter)
	}

	alerts, err := s.store.AlertsByEmail(ctx, email, active)
	if err != nil {
		return nil, fmt.Errorf("can't list alerts: %w", err)
	}

	return alerts, nil
}

// Delete removes an alert by id. Returns platform.ErrAlertNotFound
// when it doesn't exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	found, err := s.store.DeleteAlert(ctx, id)
	if err != nil {
		return fmt.Errorf("can't delete alert: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: id %d", platform.ErrAlertNotFound, id)
	}

	return nil
}

func (s *Service) validate(alert *models.PriceAlert) error {
	if !marketplace.ValidASIN(alert.ASIN) {
		return fmt.Errorf("%w: malformed product id %q", platform.ErrValidation, alert.ASIN)
	}
	if alert.TargetPrice <= 0 || alert.TargetPrice >= s.priceCeiling {
		return fmt.Errorf("%w: target price must be above 0 and below %.0f", platform.ErrValidation, s.priceCeiling)
	}
	if !emailPattern.MatchString(alert.Email) {
		return fmt.Errorf("%w: malformed email address", platform.ErrValidation)
	}
	if _, ok := marketplace.ParseCountry(string(alert.Country)); !ok {
		return fmt.Errorf("%w: unsupported country %q", platform.ErrValidation, alert.Country)
	}

	return nil
}
