package school

import (
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"schooldekho/entity"
	"schooldekho/internal/lib/api/request"
	"schooldekho/internal/lib/api/response"
	"schooldekho/internal/lib/sl"
)

func ListSchools(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.school"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		page, filter, err := parseListRequest(r)
		if err != nil {
			logger.Debug("invalid listing request", sl.Err(err))
			response.Fail(w, r, err)
			return
		}

		result, err := handler.ListSchools(r.Context(), filter, page)
		if err != nil {
			logger.Error("failed to list schools", sl.Err(err))
			response.Fail(w, r, err)
			return
		}

		logger.With(
			slog.Int("count", len(result.Schools)),
			slog.Int64("total", result.Total),
		).Debug("schools listed")
		render.JSON(w, r, result)
	}
}

func parseListRequest(r *http.Request) (entity.PageRequest, entity.SchoolFilter, error) {
	var filter entity.SchoolFilter

	pageNum, err := request.QueryInt(r, "page", entity.DefaultPage)
	if err != nil {
		return entity.PageRequest{}, filter, err
	}
	limit, err := request.QueryInt(r, "limit", entity.DefaultLimit)
	if err != nil {
		return entity.PageRequest{}, filter, err
	}
	page, err := entity.NewPageRequest(pageNum, limit)
	if err != nil {
		return entity.PageRequest{}, filter, err
	}

	filter.SchoolType = request.OptionalString(r, "school_type")
	filter.Board = request.OptionalString(r, "board")
	filter.City = request.OptionalString(r, "city")
	if filter.MinFee, err = request.OptionalInt(r, "min_fee"); err != nil {
		return entity.PageRequest{}, filter, err
	}
	if filter.MaxFee, err = request.OptionalInt(r, "max_fee"); err != nil {
		return entity.PageRequest{}, filter, err
	}

	return page, filter, nil
}
