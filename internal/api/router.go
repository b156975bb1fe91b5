package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aashnamahajan/DevelopersConnector/internal/api/handler"
	"github.com/aashnamahajan/DevelopersConnector/internal/api/middleware"
	"github.com/aashnamahajan/DevelopersConnector/internal/core/service"
	mongodb "github.com/aashnamahajan/DevelopersConnector/internal/infrastructure/db/mongo"
	redisdb "github.com/aashnamahajan/DevelopersConnector/internal/infrastructure/db/redis"
	httphandlers "github.com/aashnamahajan/DevelopersConnector/internal/infrastructure/http/handlers"
)

// Options carries the process-level settings the router needs.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	CacheTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("devconnector"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	profileCache := redisdb.NewProfileCache(rdb, opts.CacheTTL)
	tokens := service.NewTokenIssuer(opts.JWTSecret, opts.TokenTTL)

	authService := service.NewAuthService(userRepo, profileRepo, tokens, profileCache, log)
	profileService := service.NewProfileService(profileRepo, userRepo, profileCache, log)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	authGate := middleware.Auth(tokens)

	// --- Auth routes ---
	e.POST("/api/users", authHandler.Register)
	e.POST("/api/auth", authHandler.Login)
	e.GET("/api/auth", authHandler.CurrentUser, authGate)

	// --- Profile routes ---
	// The historical route table declares GET /api/profile/me twice: once as
	// the authenticated own-profile fetch and once as the public listing. One
	// path can hold one handler, and the own-profile route is the one that
	// always answered; the listing lives under /all.
	profile := e.Group("/api/profile/me")
	profile.GET("", profileHandler.Mine, authGate)
	profile.POST("", profileHandler.Upsert, authGate)
	profile.DELETE("", authHandler.DeleteAccount, authGate)
	profile.GET("/all", profileHandler.List)
	profile.GET("/user/:user_id", profileHandler.GetByUserID)
	profile.PUT("/experience", profileHandler.AddExperience, authGate)
	profile.DELETE("/experience/:exp_id", profileHandler.RemoveExperience, authGate)
	profile.PUT("/education", profileHandler.AddEducation, authGate)
	profile.DELETE("/education/:edu_id", profileHandler.RemoveEducation, authGate)

	// --- Operational endpoints (no auth required) ---
	healthHandler := httphandlers.NewHealthHandler()
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
