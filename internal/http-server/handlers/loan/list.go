package loan

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"schooldekho/internal/lib/api/response"
	"schooldekho/internal/lib/sl"
)

func UserLoans(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "user_id")
		logger := log.With(
			sl.Module("http.handlers.loan"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("user_id", userID),
		)

		loans, err := handler.UserLoans(r.Context(), userID)
		if err != nil {
			logger.Error("failed to list loan applications", sl.Err(err))
			response.Fail(w, r, err)
			return
		}

		render.JSON(w, r, loans)
	}
}
