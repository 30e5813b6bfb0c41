package server

import (
	"net/http"

	"github.com/voxcast/voxcast/config"
	"github.com/voxcast/voxcast/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	*config.Config

	router chi.Router
}

func New(cfg *config.Config) (*Server, error) {
	handler, err := api.New(cfg)

	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	router.Route("/v1", handler.Attach)

	return &Server{
		Config: cfg,

		router: router,
	}, nil
}

func (s *Server) ListenAndServe() error {
	server := &http.Server{
		Addr: s.Address,

		Handler: otelhttp.NewHandler(s.router, "http"),
	}

	return server.ListenAndServe()
}
