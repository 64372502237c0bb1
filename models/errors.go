package models

import (
	"sort"
	"strings"
)

// ErrorValidation carries translated messages keyed by request field;
// rendered as 422.
type ErrorValidation struct {
	Errors map[string][]string
}

func (e ErrorValidation) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}

// ErrorBadRequest is returned for bodies that cannot be decoded at all.
type ErrorBadRequest struct {
	Message string
}

func (e ErrorBadRequest) Error() string {
	return e.Message
}

// ErrorNotFound is rendered as 404 with Message.
type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	return e.Message
}

// ErrorForbidden is returned when the actor does not own the record.
type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string {
	return e.Message
}

// ErrorUnauthorized is returned for bad credentials.
type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	return e.Message
}

type ErrorInternalServer struct {
	Message string
	Err     error
}

func (e ErrorInternalServer) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e ErrorInternalServer) Unwrap() error {
	return e.Err
}
