package loan

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

type ApplyResponse struct {
	Message       string `json:"message"`
	ApplicationID string `json:"application_id"`
}

func Apply(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.loan"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req entity.LoanInput
		if err := request.DecodeJSON(r, &req); err != nil {
			logger.Debug("failed to decode request body", sl.Err(err))
			response.Fail(w, r, err)
			return
		}

		loan, err := handler.ApplyLoan(r.Context(), req)
		if err != nil {
			if !apperr.IsValidation(err) {
				logger.Error("failed to submit loan application", sl.Err(err))
			}
			response.Fail(w, r, err)
			return
		}

		render.JSON(w, r, ApplyResponse{
			Message:       "Loan application submitted successfully",
			ApplicationID: loan.ID,
		})
	}
}
