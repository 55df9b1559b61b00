package school

import (
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"schooldekho/internal/lib/api/response"
	"schooldekho/internal/lib/sl"
)

func FilterOptions(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.school"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		opts, err := handler.FilterOptions(r.Context())
		if err != nil {
			logger.Error("failed to load filter options", sl.Err(err))
			response.Fail(w, r, err)
			return
		}

		render.JSON(w, r, opts)
	}
}
