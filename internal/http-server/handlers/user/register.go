package user

import (
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"schooldekho/entity"
	"schooldekho/internal/lib/api/request"
	"schooldekho/internal/lib/api/response"
	"schooldekho/internal/lib/apperr"
	"schooldekho/internal/lib/sl"
)

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

func Register(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.user"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req entity.UserInput
		if err := request.DecodeJSON(r, &req); err != nil {
			logger.Debug("failed to decode request body", sl.Err(err))
			response.Fail(w, r, err)
			return
		}

		user, err := handler.RegisterUser(r.Context(), req)
		if err != nil {
			switch {
			case apperr.IsValidation(err), apperr.IsConflict(err):
				logger.Debug("registration rejected", sl.Err(err))
			default:
				logger.Error("failed to register user", sl.Err(err))
			}
			response.Fail(w, r, err)
			return
		}

		render.JSON(w, r, RegisterResponse{
			Message: "User registered successfully",
			UserID:  user.ID,
		})
	}
}
