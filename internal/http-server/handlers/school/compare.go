package school

import (
	"errors"
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

type CompareResponse struct {
	Schools []entity.School `json:"schools"`
}

// CompareSchools expects a JSON array of school ids.
func CompareSchools(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.school"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var ids []string
		if err := request.DecodeJSON(r, &ids); err != nil {
			logger.Debug("failed to decode request body", sl.Err(err))
			response.Fail(w, r, err)
			return
		}

		schools, err := handler.CompareSchools(r.Context(), ids)
		if err != nil {
			var ve *apperr.ValidationError
			if errors.As(err, &ve) {
				response.FailWith(w, r, http.StatusBadRequest, ve.Message)
				return
			}
			logger.Error("failed to compare schools", sl.Err(err))
			response.Fail(w, r, err)
			return
		}

		logger.Debug("schools compared", slog.Int("count", len(schools)))
		render.JSON(w, r, CompareResponse{Schools: schools})
	}
}
