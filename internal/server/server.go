package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"biodata-api/internal/api/handlers"
	"biodata-api/internal/api/middleware"
	"biodata-api/internal/api/routes"
	"biodata-api/internal/app"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	router *gin.Engine
	app    *app.Application
	http   *http.Server
}

func NewServer(app *app.Application) *Server {
	if app.Config.Server.Mode != "" {
		gin.SetMode(app.Config.Server.Mode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.CorrelationID(), middleware.Logger(app.Logger))

	// --- Configure and Apply CORS Middleware ---
	log.Printf("Configuring CORS for origins: %v", app.Config.CORS.AllowedOrigins)
	router.Use(cors.New(corsConfig(app.Config.CORS.AllowedOrigins)))

	router.SetTrustedProxies(nil) // Remove the gin warning about untrusted proxies

	return &Server{
		router: router,
		app:    app,
		http: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", app.Config.Server.Host, app.Config.Server.Port),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func corsConfig(allowedOrigins []string) cors.Config {
	return cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, allowed := range allowedOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Correlation-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// Handler registers the routes and returns the ready router.
func (s *Server) Handler() http.Handler {
	biodataHandler := handlers.NewBiodataHandler(s.app.BiodataService, s.app.Validator)
	var pinger handlers.Pinger
	if s.app.DBPool != nil {
		pinger = s.app.DBPool
	}
	routes.RegisterRoutes(s.router, routes.Handlers{
		Auth:    handlers.NewAuthHandler(s.app.AuthService, s.app.Validator),
		Biodata: biodataHandler,
		Admin:   biodataHandler,
		Health:  handlers.NewHealthHandler(pinger).HealthCheck,
	}, s.app.AuthService)
	return s.router
}

// Start serves until Shutdown is called. It returns nil after a clean shutdown.
func (s *Server) Start() error {
	s.http.Handler = s.Handler()

	log.Printf("Server starting on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
