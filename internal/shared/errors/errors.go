// Package errors defines the typed errors produced by the A2UI dispatch path.
//
// Every error here is reported to the client through the single
// HTTP 400 envelope {"error": "Invalid message - <detail>"}; the detail is the
// Error() text of the typed error. Types support errors.Is against their
// sentinel for boundary matching without string comparison.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is.
var (
	ErrParse          = errors.New("message body is not valid JSON")
	ErrInvalidRequest = errors.New("invalid request")
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrInlineData     = errors.New("invalid inline data")
	ErrProvider       = errors.New("provider request failed")
	ErrNoCredential   = errors.New("no provider credential configured")
)

// NoPayloadOrCatalog is the detail reported when a generation request arrives
// without a request payload or before any capability catalog announcement.
// The client contract requires this exact wording.
const NoPayloadOrCatalog = "No payload or catalog"

// ParseError reports a request body that could not be parsed as JSON.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	if e.Message == "" {
		return "message body is not valid JSON"
	}
	return fmt.Sprintf("message body is not valid JSON: %s", e.Message)
}

func (e *ParseError) Is(target error) bool {
	if target == ErrParse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// NewParseError creates a new ParseError.
func NewParseError(message string) *ParseError {
	return &ParseError{Message: message}
}

// InvalidRequestError reports a message with no usable payload, or a
// generation request issued before a catalog was announced. Error() returns
// the message verbatim so the wire detail stays byte-exact.
type InvalidRequestError struct {
	Message string
}

func (e *InvalidRequestError) Error() string {
	if e.Message == "" {
		return NoPayloadOrCatalog
	}
	return e.Message
}

func (e *InvalidRequestError) Is(target error) bool {
	if target == ErrInvalidRequest {
		return true
	}
	_, ok := target.(*InvalidRequestError)
	return ok
}

// NewInvalidRequestError creates a new InvalidRequestError.
func NewInvalidRequestError(message string) *InvalidRequestError {
	return &InvalidRequestError{Message: message}
}

// TypeMismatchError reports a payload field whose JSON type is not the one
// the protocol requires.
type TypeMismatchError struct {
	Field string
	Want  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s must be %s", e.Field, e.Want)
}

func (e *TypeMismatchError) Is(target error) bool {
	if target == ErrTypeMismatch {
		return true
	}
	_, ok := target.(*TypeMismatchError)
	return ok
}

// NewTypeMismatchError creates a new TypeMismatchError.
func NewTypeMismatchError(field, want string) *TypeMismatchError {
	return &TypeMismatchError{Field: field, Want: want}
}

// InlineDataError reports imageData that is not a well-formed
// data:<mime>;base64,<payload> URI. The client contract requires the
// "Invalid inline data" wording in the detail.
type InlineDataError struct {
	Message string
}

func (e *InlineDataError) Error() string {
	if e.Message == "" {
		return "Invalid inline data"
	}
	return fmt.Sprintf("Invalid inline data: %s", e.Message)
}

func (e *InlineDataError) Is(target error) bool {
	if target == ErrInlineData {
		return true
	}
	_, ok := target.(*InlineDataError)
	return ok
}

// NewInlineDataError creates a new InlineDataError.
func NewInlineDataError(message string) *InlineDataError {
	return &InlineDataError{Message: message}
}

// ProviderError reports a failure from the model-call layer: transport
// errors, non-2xx upstream responses, and client construction failures.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	switch {
	case e.StatusCode > 0:
		return fmt.Sprintf("provider %s request failed [%d]: %s", e.Provider, e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("provider %s request failed: %v", e.Provider, e.Err)
	default:
		return fmt.Sprintf("provider %s request failed: %s", e.Provider, e.Message)
	}
}

func (e *ProviderError) Is(target error) bool {
	if target == ErrProvider {
		return true
	}
	_, ok := target.(*ProviderError)
	return ok
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a new ProviderError.
func NewProviderError(provider string, statusCode int, message string, err error) *ProviderError {
	return &ProviderError{
		Provider:   provider,
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}
