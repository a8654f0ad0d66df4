package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Color errors
	ErrMalformedColor ErrorCode = "MALFORMED_COLOR"

	// Template errors
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrTemplateParse    ErrorCode = "TEMPLATE_PARSE"
	ErrTemplateRender   ErrorCode = "TEMPLATE_RENDER"

	// Pipeline errors
	ErrPipelineStage ErrorCode = "PIPELINE_STAGE"
)

// TitularError represents a structured error with code and details
type TitularError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TitularError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TitularError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TitularError) Is(target error) bool {
	var targetErr *TitularError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithDetail adds a detail key-value pair to the error
func (e *TitularError) WithDetail(key string, value interface{}) *TitularError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new TitularError with the given code and message
func New(code ErrorCode, message string) *TitularError {
	return &TitularError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new TitularError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TitularError {
	return &TitularError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with a code and message
func Wrap(err error, code ErrorCode, message string) *TitularError {
	return &TitularError{
		Code:    code,
		Message: message,
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a code and formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TitularError {
	return &TitularError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Wrapped: err,
	}
}

// GetCode extracts the error code from an error, returning ErrUnknown for
// errors that did not originate here
func GetCode(err error) ErrorCode {
	var te *TitularError
	if errors.As(err, &te) {
		return te.Code
	}
	return ErrUnknown
}
