// Package server wires the portfolio's HTTP surface.
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/highlight"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/visits"
	"github.com/Zachkp/portfolio/web"
	"github.com/gin-gonic/gin"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 60 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

// VisitStore is the visit log used by tracking and the admin area.
type VisitStore interface {
	visits.Recorder
	Stats(ctx context.Context) (*visits.Stats, error)
	Recent(ctx context.Context, limit int) ([]visits.Visit, error)
	Cleanup(ctx context.Context, retention time.Duration) (int64, error)
}

// Options are the dependencies of a Server.
type Options struct {
	Config  *config.Config
	Logger  logger.Logger
	Content content.Source
	Metrics *metrics.Metrics
	// Visits may be nil when neither tracking nor the admin area is enabled.
	Visits VisitStore
	Hasher *visits.Hasher
}

// Server serves the site.
type Server struct {
	cfg        *config.Config
	log        logger.Logger
	content    content.Source
	metrics    *metrics.Metrics
	visits     VisitStore
	hasher     *visits.Hasher
	adminToken string
	engine     *gin.Engine
}

// New builds the router. It fails if the templates do not parse or the
// admin token cannot be generated.
func New(opts Options) (*Server, error) {
	if opts.Config == nil || opts.Content == nil {
		return nil, errors.New("server: config and content source are required")
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if opts.Hasher == nil {
		h, err := visits.NewRandomHasher()
		if err != nil {
			return nil, err
		}
		opts.Hasher = h
	}

	s := &Server{
		cfg:     opts.Config,
		log:     opts.Logger,
		content: opts.Content,
		metrics: opts.Metrics,
		visits:  opts.Visits,
		hasher:  opts.Hasher,
	}

	if s.cfg.Admin.Enabled {
		if s.visits == nil {
			return nil, errors.New("server: admin requires a visit store")
		}
		token, err := visits.RandomToken()
		if err != nil {
			return nil, err
		}
		s.adminToken = token
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	if s.cfg.Service.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.SetHTMLTemplate(tmpl)
	engine.Use(gin.Recovery())
	engine.Use(requestID())
	engine.Use(requestLogger(s.log))
	engine.Use(s.metrics.Middleware())
	if s.cfg.Privacy.TrackVisits && s.visits != nil {
		engine.Use(visits.Track(s.visits, s.hasher, s.log, s.metrics.VisitsRecorded.Inc))
	}

	s.engine = engine
	s.routes()
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on the configured port until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Service.Port),
		Handler:      s.engine,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Starting HTTP server",
			logger.String("address", srv.Addr),
			logger.String("version", s.cfg.Service.Version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

var funcMap = template.FuncMap{
	"join":              strings.Join,
	"highlight":         highlight.Description.HTML,
	"highlightDuration": highlight.Duration.HTML,
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcMap).ParseFS(web.Templates(), "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}
