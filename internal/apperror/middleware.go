package apperror

import (
	"errors"
	"net/http"
)

var statusByKind = map[Kind]int{
	KindInvalidCode:       http.StatusBadRequest,
	KindNotFound:          http.StatusNotFound,
	KindDuplicatedCode:    http.StatusConflict,
	KindInvalidCountry:    http.StatusBadRequest,
	KindDuplicatedCountry: http.StatusConflict,
}

type handler func(w http.ResponseWriter, r *http.Request) error

func Middleware(h handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		err := h(w, r)
		if err == nil {
			return
		}

		status := StatusCode(err)

		body := internalError()
		if status != http.StatusInternalServerError {
			errors.As(err, &body)
		}

		w.WriteHeader(status)
		w.Write(body.Marshal())
	}
}

// StatusCode returns the HTTP status the middleware writes for err.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if status, ok := statusByKind[appErr.Kind]; ok {
			return status
		}
	}

	return http.StatusInternalServerError
}
