// Package web serves the dashboard as server-side rendered HTML pages.
package web

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/diillson/carbonscope-dashboard-go/internal/application/viewmodel"
	"github.com/diillson/carbonscope-dashboard-go/internal/domain/entity"
	"github.com/diillson/carbonscope-dashboard-go/internal/shared/types"
)

// shutdownTimeout limita o tempo de encerramento gracioso.
const shutdownTimeout = 5 * time.Second

// DashboardService is what the web adapter needs from the application layer.
type DashboardService interface {
	FetchDashboard(ctx context.Context, args *types.CLIArgs) *viewmodel.Dashboard
	DetailModal(args *types.CLIArgs) viewmodel.DetailModal
	Palette(args *types.CLIArgs) (viewmodel.Palette, error)
	ExportSnapshot(snapshot entity.DashboardSnapshot, reportType, name, dir string) (string, error)
}

// Server is the gin front-end of the dashboard.
type Server struct {
	svc     DashboardService
	args    *types.CLIArgs
	palette viewmodel.Palette
	logger  *zap.Logger
	engine  *gin.Engine
}

// NewServer creates the server and registers every route.
func NewServer(svc DashboardService, args *types.CLIArgs, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	tmpl, err := template.New("pages").Funcs(templateFuncs).Parse(pageTemplates)
	if err != nil {
		return nil, err
	}
	// Uma paleta por servidor: no modo stable a cor de uma categoria sobrevive entre requisições.
	palette, err := svc.Palette(args)
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(logger))
	engine.SetHTMLTemplate(tmpl)

	s := &Server{svc: svc, args: args, palette: palette, logger: logger, engine: engine}
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.handleDashboard)
	s.engine.GET("/gamification", s.handleStatic(viewmodel.ViewGamificationInfo))
	s.engine.GET("/tips", s.handleStatic(viewmodel.ViewTips))
	s.engine.GET("/reports", s.handleStatic(viewmodel.ViewReports))
	s.engine.GET("/about", s.handleStatic(viewmodel.ViewAbout))
	s.engine.GET("/reports/export/:format", s.handleExport)
	s.engine.GET("/api/snapshot", s.handleSnapshot)
	s.engine.NoRoute(s.handleNotFound)
}

// Handler exposes the engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("Web dashboard listening", zap.String("addr", addr))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("Shutting down web dashboard")
		return srv.Shutdown(shutdownCtx)
	}
}

// requestLogger registra cada requisição no zap no lugar do logger padrão do gin.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
