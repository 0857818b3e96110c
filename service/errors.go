package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrFailedValidation     = errors.New("failed validation")
	ErrRecordNotFound       = errors.New("record not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrDuplicateRecord      = errors.New("duplicate record")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrContentTooLarge      = errors.New("content too large")
	ErrBadRequest           = errors.New("bad request")
)

// ValidationError carries every offending field from a validation error map.
// It unwraps to ErrFailedValidation so callers can keep matching the sentinel
// with errors.Is, while the handler layer pulls the full field map out with
// errors.As.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString(ErrFailedValidation.Error())
	for i, k := range keys {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%q %s", k, e.Fields[k])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrFailedValidation
}

// failedValidation wraps a validation error map so that no offending field is
// dropped on the way to the caller.
func (s *service) failedValidation(errorMap map[string]string) error {
	return &ValidationError{Fields: errorMap}
}
