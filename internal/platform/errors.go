package platform

import (
	"errors"
)

// ErrNoPricesAvailable is returned when every storefront failed and a
// comparison produced zero observations.
var ErrNoPricesAvailable = errors.New("no prices available from any storefront")

// ErrValidation marks malformed input rejected before any I/O.
var ErrValidation = errors.New("invalid request")

// ErrDuplicateAlert is returned when an active alert already exists for
// the same product, email and country.
var ErrDuplicateAlert = errors.New("an active alert already exists for this product, email and country")

// ErrAlertNotFound is returned when the referenced alert does not exist.
var ErrAlertNotFound = errors.New("alert not found")
