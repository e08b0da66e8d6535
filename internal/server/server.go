package server

import (
	"fmt"
	"net/http"
	"time"

	"tendas-backend/internal/config"
	"tendas-backend/internal/mailer"
	custommiddleware "tendas-backend/internal/middleware"
	"tendas-backend/internal/repository"
	"tendas-backend/internal/service"
	"tendas-backend/internal/storage"
	"tendas-backend/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	kv     storage.KV
	redis  *redis.Client
}

// NewServer wires the catalog, editor and submission pipeline behind the
// HTTP API. redisClient may be nil, which disables rate limiting.
func NewServer(cfg *config.Config, logger *zap.Logger, kv storage.KV, redisClient *redis.Client, dispatcher mailer.Dispatcher) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	for _, mw := range custommiddleware.DefaultMiddlewareStack() {
		router.Use(mw)
	}
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.Server.AllowedOrigins, cfg.Server.Env == "development"))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if _, _, err := kv.Get(r.Context(), repository.CatalogKey); err != nil {
			custommiddleware.RespondWithError(w, http.StatusServiceUnavailable, "storage unavailable")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize the catalog store and services
	catalogRepo := repository.NewCatalogRepository(kv, logger)
	requestService := service.NewRequestService(dispatcher, service.MailSettings{
		BusinessAddress: cfg.Mail.BusinessAddress,
		FromAddress:     cfg.Mail.FromAddress,
		FromName:        cfg.Mail.FromName,
	}, logger)
	authService := service.NewAuthService(
		cfg.Admin.PasswordHash,
		cfg.Admin.JWTSecret,
		time.Duration(cfg.Admin.TokenTTLMinutes)*time.Minute,
	)

	// The admin chain: token validation, then the role check.
	authMiddleware := custommiddleware.AuthMiddleware(cfg.Admin.JWTSecret, logger)
	requireAdmin := custommiddleware.RequireAdmin(logger)
	adminOnly := func(next http.Handler) http.Handler {
		return authMiddleware(requireAdmin(next))
	}

	var limit func(http.Handler) http.Handler
	if redisClient != nil {
		limit = custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.Redis.RequestsPerMinute,
			Window:            time.Minute,
			KeyPrefix:         "form_rate_limit",
		}, logger)
	}

	// Register routes
	transport.NewCatalogHandler(catalogRepo, logger).RegisterRoutes(router, adminOnly)
	transport.NewRequestHandler(requestService, logger).RegisterRoutes(router, limit)
	transport.NewAuthHandler(authService, logger).RegisterRoutes(router)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		kv:     kv,
		redis:  redisClient,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.kv != nil {
		if err := s.kv.Close(); err != nil {
			s.logger.Error("Failed to close storage", zap.Error(err))
		}
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
