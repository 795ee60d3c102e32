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
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Host argument errors
	ErrArgsParse ErrorCode = "ARGS_PARSE"

	// FileSystem errors
	ErrFileRead     ErrorCode = "FILE_READ"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrFileEncoding ErrorCode = "FILE_ENCODING"
)

// Kind groups error codes into the two classes callers act on.
type Kind string

const (
	KindValidation Kind = "validation"
	KindIO         Kind = "io"
	KindOther      Kind = "other"
)

var codeKinds = map[ErrorCode]Kind{
	ErrInvalidInput: KindValidation,
	ErrArgsParse:    KindValidation,
	ErrFileRead:     KindIO,
	ErrFileWrite:    KindIO,
	ErrFileEncoding: KindIO,
}

// FilestateError represents a structured error with code and details
type FilestateError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FilestateError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FilestateError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FilestateError) Is(target error) bool {
	var targetErr *FilestateError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// Kind returns the class of the error code.
func (e *FilestateError) Kind() Kind {
	if k, ok := codeKinds[e.Code]; ok {
		return k
	}
	return KindOther
}

// New creates a new FilestateError with the given code and message
func New(code ErrorCode, message string) *FilestateError {
	return &FilestateError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FilestateError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FilestateError {
	return &FilestateError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FilestateError.
// Callers must not pass a nil err: the typed nil would not compare equal to nil.
func Wrap(err error, code ErrorCode, message string) *FilestateError {
	if err == nil {
		return nil
	}
	return &FilestateError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FilestateError {
	if err == nil {
		return nil
	}
	return &FilestateError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FilestateError) WithDetail(key string, value interface{}) *FilestateError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *FilestateError) WithDetails(details map[string]interface{}) *FilestateError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var fsErr *FilestateError
	if errors.As(err, &fsErr) {
		return fsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FilestateError
func GetErrorCode(err error) ErrorCode {
	var fsErr *FilestateError
	if errors.As(err, &fsErr) {
		return fsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FilestateError
func GetErrorDetails(err error) map[string]interface{} {
	var fsErr *FilestateError
	if errors.As(err, &fsErr) {
		return fsErr.Details
	}
	return nil
}

// GetKind returns the class of err, KindOther for foreign errors.
func GetKind(err error) Kind {
	var fsErr *FilestateError
	if errors.As(err, &fsErr) {
		return fsErr.Kind()
	}
	return KindOther
}

// IsValidation reports whether err rejects caller input.
func IsValidation(err error) bool {
	return GetKind(err) == KindValidation
}

// IsIO reports whether err comes from reading or writing the target.
func IsIO(err error) bool {
	return GetKind(err) == KindIO
}
