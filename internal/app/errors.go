package app

import "errors"

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	var ire interface {
		IsInvalidRequest() bool
	}
	if errors.As(err, &ire) {
		return ire.IsInvalidRequest()
	}

	return false
}

// NotModifiedError is returned when the provider reports the contributor
// list unchanged since the previous fetch.
type NotModifiedError string

// Error implements error interface
func (e NotModifiedError) Error() string {
	return string(e)
}

// IsNotModified tells that this error is 'not modified'.
// Returns always true.
func (NotModifiedError) IsNotModified() bool {
	return true
}

// IsNotModifiedError checks if given error is caused by an unchanged provider response
func IsNotModifiedError(err error) bool {
	var nme interface {
		IsNotModified() bool
	}
	if errors.As(err, &nme) {
		return nme.IsNotModified()
	}

	return false
}

// TooManyRequestsError is special error type returned when call rate limit is exceeded
type TooManyRequestsError string

// Error implements error interface
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequests tells that this error is 'too many requests'.
// Returns always true.
func (TooManyRequestsError) IsTooManyRequests() bool {
	return true
}

// IsTooManyRequestsError checks if given error is caused by exceeded call rate
func IsTooManyRequestsError(err error) bool {
	var tmre interface {
		IsTooManyRequests() bool
	}
	if errors.As(err, &tmre) {
		return tmre.IsTooManyRequests()
	}

	return false
}
