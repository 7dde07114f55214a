package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	testTable := []struct {
		name               string
		err                error
		expectedStatusCode int
		expectedErrorCode  Kind
		expectedErrors     []FieldError
	}{
		{
			name:               "invalid code",
			err:                NewInvalidCode("1"),
			expectedStatusCode: http.StatusBadRequest,
			expectedErrorCode:  KindInvalidCode,
		},
		{
			name:               "not found",
			err:                NewNotFound("ZZ"),
			expectedStatusCode: http.StatusNotFound,
			expectedErrorCode:  KindNotFound,
		},
		{
			name:               "duplicated code",
			err:                NewDuplicatedCode("RU", "isoAlpha2"),
			expectedStatusCode: http.StatusConflict,
			expectedErrorCode:  KindDuplicatedCode,
			expectedErrors:     []FieldError{{Field: "isoAlpha2", Message: "already exists"}},
		},
		{
			name: "invalid country",
			err: NewInvalidCountry("invalid data", []FieldError{
				{Field: "isoAlpha3", Message: "country codes cannot be changed"},
			}),
			expectedStatusCode: http.StatusBadRequest,
			expectedErrorCode:  KindInvalidCountry,
			expectedErrors:     []FieldError{{Field: "isoAlpha3", Message: "country codes cannot be changed"}},
		},
		{
			name:               "duplicated country",
			err:                NewDuplicatedCountry("Russia", "shortName"),
			expectedStatusCode: http.StatusConflict,
			expectedErrorCode:  KindDuplicatedCountry,
			expectedErrors:     []FieldError{{Field: "shortName", Message: "already exists"}},
		},
		{
			name:               "wrapped app error",
			err:                fmt.Errorf("edit: %w", NewNotFound("RUS")),
			expectedStatusCode: http.StatusNotFound,
			expectedErrorCode:  KindNotFound,
		},
		{
			name:               "unknown kind",
			err:                &AppError{Kind: Kind(42), Message: "leaked detail"},
			expectedStatusCode: http.StatusInternalServerError,
			expectedErrorCode:  0,
		},
		{
			name:               "unexpected error",
			err:                errors.New("connection refused"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedErrorCode:  0,
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			h := Middleware(func(w http.ResponseWriter, r *http.Request) error {
				return tc.err
			})

			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tc.expectedStatusCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var body AppError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.expectedErrorCode, body.Kind)
			assert.NotEmpty(t, body.Message)
			assert.NotContains(t, body.Message, "leaked")
			assert.Equal(t, tc.expectedErrors, body.Errors)
		})
	}
}

func TestMiddleware_NoError(t *testing.T) {
	h := Middleware(func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusNoContent)
		return nil
	})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestAppError_Is(t *testing.T) {
	assert.ErrorIs(t, NewNotFound("RU"), ErrNotFound)
	assert.ErrorIs(t, fmt.Errorf("wrap: %w", NewDuplicatedCode("RU", "isoAlpha2")), ErrDuplicatedCode)
	assert.NotErrorIs(t, NewNotFound("RU"), ErrInvalidCode)
	assert.ErrorIs(t, ErrDecodeBody, ErrInvalidCountry)
}
