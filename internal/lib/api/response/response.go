package response

import (
	"github.com/go-chi/render"
	"net/http"
	"schooldekho/internal/lib/apperr"
)

// Response is the error envelope shared by every endpoint.
type Response struct {
	Detail string `json:"detail"`
}

func Error(msg string) Response {
	return Response{Detail: msg}
}

// StatusOf maps a service error onto an HTTP status code.
func StatusOf(err error) int {
	switch {
	case apperr.IsValidation(err):
		return http.StatusUnprocessableEntity
	case apperr.IsNotFound(err):
		return http.StatusNotFound
	case apperr.IsConflict(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Fail renders err with the status derived from its kind.
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, StatusOf(err))
	render.JSON(w, r, Error(err.Error()))
}

// FailWith renders msg with an explicit status.
func FailWith(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, Error(msg))
}
