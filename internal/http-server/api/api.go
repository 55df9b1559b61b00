package api

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net"
	"net/http"
	"schooldekho/internal/config"
	"schooldekho/internal/http-server/handlers/alumni"
	handlerErrors "schooldekho/internal/http-server/handlers/errors"
	"schooldekho/internal/http-server/handlers/health"
	"schooldekho/internal/http-server/handlers/loan"
	"schooldekho/internal/http-server/handlers/school"
	"schooldekho/internal/http-server/handlers/user"
	"schooldekho/internal/http-server/middleware/cors"
	"schooldekho/internal/http-server/middleware/logger"
	"schooldekho/internal/lib/sl"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	health.Core
	school.Core
	loan.Core
	user.Core
	alumni.Core
}

func New(conf *config.Config, log *slog.Logger, handler Handler) *Server {
	server := &Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Addr:     net.JoinHostPort(conf.Listen.BindIP, conf.Listen.Port),
		Handler:  NewRouter(conf, log, handler),
		ErrorLog: httpLog,
	}
	return server
}

// NewRouter wires every endpoint. Handlers never check credentials.
func NewRouter(conf *config.Config, log *slog.Logger, handler Handler) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(logger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(cors.New(conf.Cors.AllowedOrigins))
	if conf.Listen.Timeout > 0 {
		router.Use(middleware.Timeout(conf.Listen.Timeout))
	}
	router.Use(render.SetContentType(render.ContentTypeJSON))

	router.NotFound(handlerErrors.NotFound(log))
	router.MethodNotAllowed(handlerErrors.NotAllowed(log))

	router.Get("/", health.Root(log))

	router.Route("/api", func(api chi.Router) {
		api.Get("/health", health.Health(log, handler))

		api.Route("/schools", func(r chi.Router) {
			r.Get("/", school.ListSchools(log, handler))
			r.Post("/compare", school.CompareSchools(log, handler))
			r.Get("/{id}", school.GetSchool(log, handler))
		})
		api.Route("/loans", func(r chi.Router) {
			r.Post("/apply", loan.Apply(log, handler))
			r.Get("/{user_id}", loan.UserLoans(log, handler))
		})
		api.Route("/users", func(r chi.Router) {
			r.Post("/register", user.Register(log, handler))
		})
		api.Get("/filters/options", school.FilterOptions(log, handler))
		api.Get("/alumni/{school_id}", alumni.SchoolAlumni(log, handler))
	})

	return router
}

// Start blocks serving requests until Shutdown is called.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.httpServer.Addr, err)
	}

	s.log.Info("starting api server", slog.String("address", s.httpServer.Addr))

	err = s.httpServer.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("stopping api server")
	return s.httpServer.Shutdown(ctx)
}
