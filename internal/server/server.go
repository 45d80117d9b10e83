package server

import (
	"context"
	"embed"
	"net/http"
	"time"

	"HexOracle/internal/divination"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

//go:embed web/index.html
var webFS embed.FS

// Config holds server configuration.
type Config struct {
	Listen       string
	AllowOrigins []string
}

// Server is the HTTP boundary: it serves the interactive page and the two
// divination actions as JSON endpoints.
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	svc        *divination.Service
	log        zerolog.Logger
}

// New creates the server and wires up routes and middleware.
func New(cfg Config, svc *divination.Service, log zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router: router,
		httpServer: &http.Server{
			Addr:         cfg.Listen,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		svc: svc,
		log: log.With().Str("component", "server").Logger(),
	}

	router.Use(s.requestLogger())

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	router.Use(cors.New(corsConfig))

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.GET("/symbols", s.handleSymbols)
		api.POST("/reading/market", s.handleMarketReading)
		api.POST("/reading/cast", s.handleCastReading)
	}
}

// Start blocks serving HTTP until Shutdown or a listener error.
func (s *Server) Start() error {
	s.log.Info().Str("listen", s.httpServer.Addr).Msg("http server starting")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("http server stopping")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startAt := time.Now()
		c.Next()
		s.log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(startAt)).
			Msg("request")
	}
}
