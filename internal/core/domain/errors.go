package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnexpectedField   = errors.New("unexpected field")
	ErrInvalidFieldValue = errors.New("invalid field value")
	ErrMalformedResponse = errors.New("malformed provider response")
)

// ValidationKind tells what a ValidationError is about.
type ValidationKind string

const (
	ValidationUnexpectedField ValidationKind = "unexpected_field"
	ValidationInvalidValue    ValidationKind = "invalid_value"
)

// ValidationError reports every offending field of a write payload at once.
type ValidationError struct {
	Kind   ValidationKind
	Fields []string
}

func (e *ValidationError) Error() string {
	if e.Kind == ValidationUnexpectedField {
		return "Unexpected fields in request body: " + strings.Join(e.Fields, ",")
	}
	return "Invalid values in request body: " + strings.Join(e.Fields, ",")
}

func (e *ValidationError) Unwrap() error {
	if e.Kind == ValidationUnexpectedField {
		return ErrUnexpectedField
	}
	return ErrInvalidFieldValue
}

// MappingError means the provider answered with a shape we cannot project.
type MappingError struct {
	Reason string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMalformedResponse, e.Reason)
}

func (e *MappingError) Unwrap() error {
	return ErrMalformedResponse
}

// RemoteCallError is a transport failure or an error answer from the provider.
// Body holds the provider response when one was received.
type RemoteCallError struct {
	Method     string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *RemoteCallError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("bitrix %s: status %d: %v", e.Method, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("bitrix %s: %v", e.Method, e.Err)
}

func (e *RemoteCallError) Unwrap() error {
	return e.Err
}
