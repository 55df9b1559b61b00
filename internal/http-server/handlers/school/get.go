package school

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"schooldekho/internal/lib/api/response"
	"schooldekho/internal/lib/apperr"
	"schooldekho/internal/lib/sl"
)

func GetSchool(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		logger := log.With(
			sl.Module("http.handlers.school"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("school_id", id),
		)

		school, err := handler.GetSchool(r.Context(), id)
		if err != nil {
			if !apperr.IsNotFound(err) {
				logger.Error("failed to get school", sl.Err(err))
			}
			response.Fail(w, r, err)
			return
		}

		render.JSON(w, r, school)
	}
}
