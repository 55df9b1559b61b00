package errors

import (
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"schooldekho/internal/lib/api/response"
)

func NotAllowed(_ *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusMethodNotAllowed)
		render.JSON(w, r, response.Error("Method Not Allowed"))
	}
}
