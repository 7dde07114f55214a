package apperror

import (
	"encoding/json"
	"fmt"
)

type Kind int

// Kind values double as the errorCode of the response body.
const (
	KindInvalidCode Kind = iota + 1
	KindNotFound
	KindDuplicatedCode
	KindInvalidCountry
	KindDuplicatedCountry
)

var (
	ErrInvalidCode       = &AppError{Kind: KindInvalidCode}
	ErrNotFound          = &AppError{Kind: KindNotFound}
	ErrDuplicatedCode    = &AppError{Kind: KindDuplicatedCode}
	ErrInvalidCountry    = &AppError{Kind: KindInvalidCountry}
	ErrDuplicatedCountry = &AppError{Kind: KindDuplicatedCountry}

	ErrDecodeBody = NewInvalidCountry("invalid JSON data", nil)
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AppError struct {
	Kind    Kind         `json:"errorCode"`
	Message string       `json:"errorMessage"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func NewInvalidCode(code string) *AppError {
	return &AppError{
		Kind:    KindInvalidCode,
		Message: fmt.Sprintf("invalid country code format: '%s'", code),
	}
}

func NewNotFound(code string) *AppError {
	return &AppError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("country with code '%s' not found", code),
	}
}

func NewDuplicatedCode(value, field string) *AppError {
	return &AppError{
		Kind:    KindDuplicatedCode,
		Message: fmt.Sprintf("country code '%s' (%s) already exists", value, field),
		Errors:  []FieldError{{Field: field, Message: "already exists"}},
	}
}

func NewInvalidCountry(message string, errs []FieldError) *AppError {
	return &AppError{
		Kind:    KindInvalidCountry,
		Message: message,
		Errors:  errs,
	}
}

func NewDuplicatedCountry(value, field string) *AppError {
	return &AppError{
		Kind:    KindDuplicatedCountry,
		Message: fmt.Sprintf("country name '%s' (%s) already exists", value, field),
		Errors:  []FieldError{{Field: field, Message: "already exists"}},
	}
}

func (e *AppError) Error() string {
	return e.Message
}

// Is reports whether target is an AppError of the same kind, so the
// package-level sentinels match any error built by the constructors.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

func (e *AppError) Marshal() []byte {
	marshal, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	return marshal
}

func internalError() *AppError {
	return &AppError{Message: "internal error"}
}
