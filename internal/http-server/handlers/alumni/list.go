package alumni

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"schooldekho/internal/lib/api/response"
	"schooldekho/internal/lib/sl"
)

// SchoolAlumni lists alumni linked to a school. Registered users carry no
// school reference yet, so the list is normally empty.
func SchoolAlumni(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schoolID := chi.URLParam(r, "school_id")
		logger := log.With(
			sl.Module("http.handlers.alumni"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("school_id", schoolID),
		)

		users, err := handler.SchoolAlumni(r.Context(), schoolID)
		if err != nil {
			logger.Error("failed to list alumni", sl.Err(err))
			response.Fail(w, r, err)
			return
		}

		render.JSON(w, r, users)
	}
}
