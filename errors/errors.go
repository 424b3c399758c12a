package errors

import (
	"errors"
	"fmt"
)

const (
	STAGE_BEFORE_REQUEST = "before-request"
	STAGE_REQUEST        = "request"
	STAGE_AFTER_REQUEST  = "after-request"

	TYPE_JSON_PARSE   = "json"
	TYPE_REQUEST_PREP = "request-prep"
	TYPE_IO           = "io"
	TYPE_HTTP_STATUS  = "not-ok-http-status"
	TYPE_INVALID_DATA = "invalid-data"
	TYPE_REMOTE       = "remote-error"
)

// Local validation failures. They are wrapped into an ApiError
// with Type TYPE_INVALID_DATA and can be matched with errors.Is.
var (
	ErrInvalidEmail              = errors.New("invalid email address")
	ErrInvalidFieldType          = errors.New("invalid custom field type")
	ErrMissingFieldGroup         = errors.New("custom field of type 'option' requires a parent group id")
	ErrInvalidUnsubscriptionMode = errors.New("invalid unsubscription mode")
	ErrInvalidFieldWizard        = errors.New("invalid field wizard")
)

type ApiError struct {
	Stage          string
	Type           string
	SourceErr      error
	Body           []byte
	HttpStatusCode int

	// Message is the error reported by Mailtrain in the
	// response envelope, if any.
	Message string
}

var _ error = &ApiError{}

func (e *ApiError) Error() string {
	var err string
	switch {
	case e.Message != "":
		err = e.Message
	case e.SourceErr != nil:
		err = e.SourceErr.Error()
	default:
		err = string(e.Body)
	}
	return fmt.Sprintf(
		"http request to Mailtrain failed during '%s' stage with error type '%s', httpStatus: '%d'; original err: %v",
		e.Stage, e.Type, e.HttpStatusCode, err,
	)
}

// Is method is required by errors.Is() to properly distinguish between
// different types -vs- same pointer to the same type.
// Without it, errors.Is(err, &ApiError{}) returns false:
// ok := errors.Is(errors.Join(&mailtrain_errors.ApiError{}), &mailtrain_errors.ApiError{})
// ^ would be false
func (e *ApiError) Is(other error) bool {
	var err *ApiError
	return errors.As(other, &err) && err != nil
}

// Unwrap exposes SourceErr, so validation sentinels like
// ErrInvalidEmail can be matched with errors.Is.
func (e *ApiError) Unwrap() error {
	return e.SourceErr
}

// IsValidation reports whether err was raised locally, before any
// request was sent.
func IsValidation(err error) bool {
	var apiErr *ApiError
	return errors.As(err, &apiErr) && apiErr.Type == TYPE_INVALID_DATA
}

// IsRemote reports whether Mailtrain answered with an explicit
// error message in the response envelope.
func IsRemote(err error) bool {
	var apiErr *ApiError
	return errors.As(err, &apiErr) && apiErr.Type == TYPE_REMOTE
}

// Invalid builds a validation ApiError wrapping one of the sentinels above.
func Invalid(sentinel error, format string, args ...any) *ApiError {
	return &ApiError{
		Stage:     STAGE_BEFORE_REQUEST,
		Type:      TYPE_INVALID_DATA,
		SourceErr: fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...),
	}
}
