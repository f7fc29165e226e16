package impl

import (
	"regexp"

	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
)

const (
	maxNameLength  = 30
	maxEmailLength = 254
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateName checks a display name for length bounds.
func validateName(name string) error {
	if name == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "name is required")
	}
	if len(name) > maxNameLength {
		return errors.Wrap(domainerrors.ErrValidationFailed, "name must be at most 30 characters")
	}

	return nil
}

// validateEmail checks the shape and length of an email address.
func validateEmail(email string) error {
	if email == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "email is required")
	}
	if len(email) > maxEmailLength || !emailPattern.MatchString(email) {
		return errors.Wrap(domainerrors.ErrValidationFailed, "email address is not valid")
	}

	return nil
}
