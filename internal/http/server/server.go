package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"shortlink/internal/config"
	"shortlink/internal/domain/models"
	"shortlink/internal/http/handlers/link/overview"
	"shortlink/internal/http/handlers/link/redirect"
	"shortlink/internal/http/handlers/link/remove"
	"shortlink/internal/http/handlers/link/search"
	"shortlink/internal/http/handlers/link/shorten"
	"shortlink/internal/http/handlers/link/shortencustom"
	"shortlink/internal/http/handlers/link/stats"
	"shortlink/internal/http/handlers/link/update"
	"shortlink/internal/http/handlers/middlewares/identity"
	"shortlink/internal/http/handlers/middlewares/logger"
	"shortlink/internal/http/handlers/system/getping"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type LinkService interface {
	Create(ctx context.Context, originalURL string, identity *models.Identity, expiresAt *time.Time) (models.Link, error)
	CreateWithAlias(ctx context.Context, originalURL, customAlias string, identity *models.Identity, expiresAt *time.Time) (models.Link, error)
	Resolve(ctx context.Context, shortCode string) (string, error)
	Update(ctx context.Context, shortCode, newURL string, identity *models.Identity) error
	Delete(ctx context.Context, shortCode string, identity *models.Identity) error
	Stats(ctx context.Context, shortCode string, identity *models.Identity) (models.LinkStats, error)
	Search(ctx context.Context, originalURL string) (models.Link, error)
	PingDataBase(ctx context.Context) error
}

type OverviewService interface {
	Overview(ctx context.Context, identity *models.Identity) (models.UserOverview, error)
}

type Server struct {
	httpServer      *http.Server
	router          *mux.Router
	log             zerolog.Logger
	linkService     LinkService
	overviewService OverviewService
	cfg             config.Config
}

func NewServer(log zerolog.Logger, cfg config.Config, links LinkService, overviews OverviewService) (*Server, error) {
	if cfg.ServerAddress == "" {
		return nil, errors.New("server address cannot be empty")
	}
	if links == nil {
		return nil, errors.New("link service cannot be nil")
	}
	if overviews == nil {
		return nil, errors.New("overview service cannot be nil")
	}

	s := &Server{
		router:          mux.NewRouter(),
		cfg:             cfg,
		log:             log,
		linkService:     links,
		overviewService: overviews,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           s.router,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.Use(logger.MiddlewareLogging(s.log))
	s.router.Use(identity.Middleware())

	s.router.HandleFunc("/ping", getping.HandlerPing(s.linkService)).Methods("GET")

	// Создание и поиск - до маршрутов с {code}, чтобы пути не пересекались
	s.router.HandleFunc("/links/shorten", shorten.HandlerShorten(s.linkService)).Methods("POST")               // 201
	s.router.HandleFunc("/links/custom_shorten", shortencustom.HandlerShortenCustom(s.linkService)).Methods("POST") // 201, 400
	s.router.HandleFunc("/search", search.HandlerSearch(s.linkService)).Methods("GET")
	s.router.HandleFunc("/overview", overview.HandlerOverview(s.overviewService)).Methods("GET")

	s.router.HandleFunc("/links/{code}/stats", stats.HandlerStats(s.linkService)).Methods("GET")
	s.router.HandleFunc("/links/{code}", redirect.HandlerRedirect(s.linkService)).Methods("GET") // 302
	s.router.HandleFunc("/links/{code}", update.HandlerUpdate(s.linkService)).Methods("PUT")
	s.router.HandleFunc("/links/{code}", remove.HandlerRemove(s.linkService)).Methods("DELETE")
}

func (s *Server) Start(ctx context.Context) error {
	s.log.Info().Str("address", s.cfg.ServerAddress).Msg("Starting server")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
