// Package httpapi implements the HTTP transport of the job board: routing,
// request handlers, the bearer-token authorization gate, CORS, and request
// logging.
package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/workhive/jobboard/internal/logging"
	"github.com/workhive/jobboard/internal/server/config"
	"github.com/workhive/jobboard/internal/server/models"
	"github.com/workhive/jobboard/internal/server/services"
)

// UserService is the slice of the user service the transport depends on.
type UserService interface {
	Register(ctx context.Context, params services.RegisterParams) error
	Login(ctx context.Context, email, password string) (string, *services.UserProfile, error)
	Profile(ctx context.Context, userID string) (*services.UserProfile, error)
}

// JobService is the slice of the job service the transport depends on.
type JobService interface {
	Create(ctx context.Context, params services.CreateJobParams) (*models.Job, error)
	List(ctx context.Context) ([]*models.Job, error)
}

type Server struct {
	address     string
	logger      logging.Logger
	users       UserService
	jobs        JobService
	jwtSecret   []byte
	appEnv      string
	corsOrigins []string
}

func NewServer(cfg *config.Config, l logging.Logger, us UserService, js JobService) *Server {
	if cfg.AppEnv == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	return &Server{
		address:     cfg.EndpointAddrHTTP,
		logger:      l.With("module", "http_server"),
		users:       us,
		jobs:        js,
		jwtSecret:   []byte(cfg.SecretKey),
		appEnv:      cfg.AppEnv,
		corsOrigins: cfg.CORSAllowedOrigins,
	}
}

// routes builds the gin engine: global middleware, the public auth routes,
// and the protected group behind the authorization gate.
func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())
	r.Use(s.cors())

	api := r.Group("/api")
	api.GET("/health", s.health)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", s.register)
	authGroup.POST("/login", s.login)
	authGroup.GET("/profile", s.authRequired(), s.profile)

	jobGroup := api.Group("/jobs", s.authRequired())
	jobGroup.POST("", s.createJob)
	jobGroup.GET("", s.listJobs)

	return r
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// listener fails, shutting down gracefully on cancellation.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
