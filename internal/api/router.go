package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gamesgrid/arise-api/internal/api/handler"
	"github.com/gamesgrid/arise-api/internal/api/middleware"
	"github.com/gamesgrid/arise-api/internal/auth"
	"github.com/gamesgrid/arise-api/internal/core/ports"
	"github.com/gamesgrid/arise-api/internal/core/service"
	"github.com/gamesgrid/arise-api/internal/infrastructure/config"
	mongodb "github.com/gamesgrid/arise-api/internal/infrastructure/db/mongo"
	redisdb "github.com/gamesgrid/arise-api/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all routes registered. rdb may be
// nil, in which case login rate limiting is disabled.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Development())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("arise"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	gameRepo := mongodb.NewGameRepository(db)
	postRepo := mongodb.NewPostRepository(db)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	var limiter ports.LoginLimiter
	if rdb != nil {
		limiter = redisdb.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)
	}

	authService := service.NewAuthService(userRepo, tokens, limiter, cfg.BcryptCost, log)
	userService := service.NewUserService(userRepo, cfg.BcryptCost, log)
	gameService := service.NewGameService(gameRepo, log)
	postService := service.NewPostService(postRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	gameHandler := handler.NewGameHandler(gameService)
	postHandler := handler.NewPostHandler(postService)

	requireToken := middleware.Auth(tokens)
	requireAccount := middleware.RequireAccount(userRepo)
	ownProfile := middleware.OwnProfile()

	// --- User routes ---
	e.POST("/users", authHandler.Register)
	e.POST("/users/login", authHandler.Login)
	e.GET("/users/verify-token", authHandler.VerifyToken, requireToken)

	e.GET("/users", userHandler.List, requireToken, requireAccount)
	e.GET("/users/:id", userHandler.Get, requireToken, requireAccount)
	e.PUT("/users/:id", userHandler.Update, requireToken, requireAccount, ownProfile)
	e.DELETE("/users/:id", userHandler.Delete, requireToken, requireAccount, ownProfile)

	// --- Game routes (bearer only; no ownership checks by design) ---
	games := e.Group("/games", requireToken)
	games.GET("", gameHandler.List)
	games.GET("/status/:status", gameHandler.ListByStatus)
	games.GET("/stats/overview", gameHandler.Stats)
	games.GET("/:id", gameHandler.Get)
	games.POST("", gameHandler.Create)
	games.PUT("/:id", gameHandler.Update)
	games.DELETE("/:id", gameHandler.Delete)
	games.POST("/:id/join", gameHandler.Join)
	games.POST("/:id/leave", gameHandler.Leave)

	// --- Post routes ---
	posts := e.Group("/posts", requireToken)
	posts.GET("", postHandler.List)
	posts.GET("/:id", postHandler.Get)
	posts.POST("", postHandler.Create)
	posts.PUT("/:id", postHandler.Update)
	posts.DELETE("/:id", postHandler.Delete)

	// --- Health, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
