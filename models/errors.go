package models

import (
	"errors"
	"fmt"
)

// Error codes used in API responses and internal error handling.
const (
	ErrCodeDecode       = "DECODE_FAILED"
	ErrCodeFetch        = "FETCH_FAILED"
	ErrCodeTimeout      = "FETCH_TIMEOUT"
	ErrCodeParse        = "PARSE_FAILED"
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// RecipeError is the internal error type carrying an error code.
// It implements the error interface and supports error wrapping via Unwrap.
type RecipeError struct {
	Code    string
	Message string
	Err     error // wrapped original error
}

func (e *RecipeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *RecipeError) Unwrap() error {
	return e.Err
}

// NewRecipeError creates a new RecipeError.
func NewRecipeError(code, message string, err error) *RecipeError {
	return &RecipeError{Code: code, Message: message, Err: err}
}

// ErrorCode returns the code of the first RecipeError in err's chain,
// or ErrCodeInternal when there is none.
func ErrorCode(err error) string {
	var re *RecipeError
	if errors.As(err, &re) {
		return re.Code
	}
	return ErrCodeInternal
}

// ErrorMessage returns the human-readable message for err. For a RecipeError
// that is its Message; anything else falls back to err.Error().
func ErrorMessage(err error) string {
	var re *RecipeError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	return err.Error()
}
