package errors

import (
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"schooldekho/internal/lib/api/response"
)

func NotFound(_ *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("Not Found"))
	}
}
