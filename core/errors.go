package core

import (
	"strings"
)

type ErrorNotFound struct {
}

func (e ErrorNotFound) Error() string {
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

// ErrorAlreadyExists is a uniqueness conflict.
// Reason is a typed outcome such as "already_member".
type ErrorAlreadyExists struct {
	Reason string
}

func (e ErrorAlreadyExists) Error() string {
	if e.Reason != "" {
		return "Already Exists: " + e.Reason
	}
	return "Already Exists"
}

func (e ErrorAlreadyExists) Is(target error) bool {
	_, ok := target.(ErrorAlreadyExists)
	return ok
}

func NewErrorAlreadyExists(reason string) ErrorAlreadyExists {
	return ErrorAlreadyExists{Reason: reason}
}

type ErrorPermissionDenied struct {
	Detail string
}

func (e ErrorPermissionDenied) Error() string {
	if e.Detail != "" {
		return "Permission Denied: " + e.Detail
	}
	return "Permission Denied"
}

func (e ErrorPermissionDenied) Is(target error) bool {
	_, ok := target.(ErrorPermissionDenied)
	return ok
}

func NewErrorPermissionDenied(detail string) ErrorPermissionDenied {
	return ErrorPermissionDenied{Detail: detail}
}

type ErrorUnauthenticated struct {
}

func (e ErrorUnauthenticated) Error() string {
	return "Unauthenticated"
}

func NewErrorUnauthenticated() ErrorUnauthenticated {
	return ErrorUnauthenticated{}
}

// ErrorValidation is malformed or missing input. Hint is shown to the user as is.
type ErrorValidation struct {
	Reason string
	Hint   string
}

func (e ErrorValidation) Error() string {
	msg := "Validation Failed"
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

func (e ErrorValidation) Is(target error) bool {
	_, ok := target.(ErrorValidation)
	return ok
}

func NewErrorValidation(reason, hint string) ErrorValidation {
	return ErrorValidation{Reason: reason, Hint: hint}
}

// ErrorInFlight means the same submission is still being processed.
type ErrorInFlight struct {
	Scope string
}

func (e ErrorInFlight) Error() string {
	return "In Flight: " + e.Scope
}

func (e ErrorInFlight) Is(target error) bool {
	_, ok := target.(ErrorInFlight)
	return ok
}

func NewErrorInFlight(scope string) ErrorInFlight {
	return ErrorInFlight{Scope: scope}
}

var duplicateMarkers = []string{"duplicate", "unique", "already"}

// IsDuplicateError reports whether err looks like a uniqueness violation.
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range duplicateMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
