package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mywallet/wallet-api/internal/api/handler"
	"github.com/mywallet/wallet-api/internal/api/middleware"
	"github.com/mywallet/wallet-api/internal/core/service"
	"github.com/mywallet/wallet-api/internal/infrastructure/config"
	mongodb "github.com/mywallet/wallet-api/internal/infrastructure/db/mongo"
	redisdb "github.com/mywallet/wallet-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("mywallet"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	sessionRepo := mongodb.NewSessionRepository(db)
	sessionCache := redisdb.NewSessionCache(rdb)
	resolver := service.NewSessionResolver(sessionRepo, sessionCache, log)

	authService := service.NewAuthService(userRepo, sessionRepo, cfg.BcryptCost, log)
	ledgerService := service.NewLedgerService(userRepo, resolver, log)

	authHandler := handler.NewAuthHandler(authService)
	ledgerHandler := handler.NewLedgerHandler(ledgerService)
	bearer := middleware.BearerToken()

	// --- Public routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// --- Protected routes ---
	e.PUT("/income", ledgerHandler.Income, bearer)
	e.PUT("/outcome", ledgerHandler.Outcome, bearer)
	e.GET("/balance", ledgerHandler.Balance, bearer)

	// --- Debug surface (legacy controllers, unauthenticated) ---
	if cfg.DebugEndpoints {
		adminService := service.NewAdminService(userRepo, sessionRepo, log)
		adminHandler := handler.NewAdminHandler(adminService)

		e.GET("/signup", adminHandler.ListUsers)
		e.POST("/status", adminHandler.ListUsers)
		e.DELETE("/deleteallusers", adminHandler.PurgeUsers)
		e.GET("/compare", adminHandler.Compare)
		e.POST("/sessions", adminHandler.ListSessions)

		log.Warn().Msg("debug endpoints enabled")
	}

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
