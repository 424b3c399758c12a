package api

import (
	"regexp"

	"github.com/block/mailtrain-go/errors"
	"github.com/block/mailtrain-go/types"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9.-]+$`)

// IsValidEmail reports whether email looks like local@domain.tld.
// It's the same check every email-bearing call runs before sending.
func IsValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

func validateEmail(email string) *errors.ApiError {
	if !IsValidEmail(email) {
		return errors.Invalid(errors.ErrInvalidEmail, "%q", email)
	}
	return nil
}

func validateField(req types.CreateFieldRequest) *errors.ApiError {
	if !types.FieldTypes.IsKnown(req.Type) {
		return errors.Invalid(errors.ErrInvalidFieldType, "%q, valid types are: %v", req.Type, types.FieldTypes.All())
	}
	if req.Type == types.FieldTypes.Option && req.Group == "" {
		return errors.Invalid(errors.ErrMissingFieldGroup, "field %q", req.Name)
	}
	return nil
}

func validateList(req types.CreateListRequest) *errors.ApiError {
	if !req.UnsubscriptionMode.IsValid() {
		return errors.Invalid(errors.ErrInvalidUnsubscriptionMode, "%d", req.UnsubscriptionMode)
	}
	if !req.FieldWizard.IsValid() {
		return errors.Invalid(errors.ErrInvalidFieldWizard, "%q", req.FieldWizard)
	}
	return nil
}
