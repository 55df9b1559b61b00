package health

import (
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"schooldekho/internal/lib/sl"
)

const (
	apiName    = "SchoolDekho API"
	apiVersion = "1.0.0"
)

type Response struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Health always answers 200; the body tells whether the store is reachable.
func Health(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.health"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if err := handler.Health(r.Context()); err != nil {
			logger.Warn("store unreachable", sl.Err(err))
			render.JSON(w, r, Response{Status: "unhealthy", Error: err.Error()})
			return
		}

		render.JSON(w, r, Response{Status: "healthy", Database: "connected"})
	}
}

func Root(_ *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{
			"message": apiName + " is running!",
			"version": apiVersion,
		})
	}
}
