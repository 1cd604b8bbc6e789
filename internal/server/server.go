// Package server exposes price tag generation over HTTP.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"preizo/internal/label"
	"preizo/internal/metrics"
	"preizo/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Generator produces one document per request.
type Generator interface {
	Generate(raw label.RawInput) (*service.Document, error)
}

// Limiter decides whether a subject has used up its request budget.
type Limiter interface {
	Exceeded(ctx context.Context, subject, action string) (bool, error)
}

type Options struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Limiter and Metrics are optional.
	Limiter Limiter
	Metrics *metrics.Registry
}

type Server struct {
	engine  *gin.Engine
	http    *http.Server
	gen     Generator
	limiter Limiter
	metrics *metrics.Registry
	logger  *zap.Logger
}

func New(gen Generator, opts Options, logger *zap.Logger) *Server {
	s := &Server{
		engine:  gin.New(),
		gen:     gen,
		limiter: opts.Limiter,
		metrics: opts.Metrics,
		logger:  logger,
	}

	s.engine.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))
	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.routes()

	s.http = &http.Server{
		Addr:         opts.Addr,
		Handler:      s.engine,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	}
	return s
}

func (s *Server) routes() {
	s.engine.GET("/", s.form)
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if s.metrics != nil {
		s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	limited := s.engine.Group("/", s.rateLimit())
	limited.POST("/", s.generate)
	limited.POST("/labels", s.generate)
}

// Handler returns the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	const operation = "server.Run"

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("%s: %w", operation, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("%s: shutdown: %w", operation, err)
	}
	return nil
}
