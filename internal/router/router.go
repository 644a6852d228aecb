package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/ridewise/backend/internal/handlers"
	"github.com/ridewise/backend/internal/middleware"
	"github.com/ridewise/backend/internal/models"
	"github.com/ridewise/backend/internal/repositories"
	"github.com/ridewise/backend/internal/storage"
	"github.com/ridewise/backend/pkg/config"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies.
// firebaseAuthClient may be nil when running in local auth mode.
func SetupRoutes(
	e *echo.Echo,
	pgdb *gorm.DB,
	rdb *redis.Client,
	firebaseAuthClient *auth.Client,
	blobStore storage.BlobStore,
	cfg *config.Config,
) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.Post{},
		&models.Reply{},
		&models.Reaction{},
		&models.User{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check and metrics - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Initialize Repositories ---
	postRepo := repositories.NewPostgresPostRepository(pgdb)
	replyRepo := repositories.NewPostgresReplyRepository(pgdb)
	reactionRepo := repositories.NewPostgresReactionRepository(pgdb, rdb)
	userRepo := repositories.NewPostgresUserRepository(pgdb)

	// --- Auth middleware per configured mode ---
	var optionalAuth, requiredAuth echo.MiddlewareFunc
	if cfg.AuthMode == "local" {
		optionalAuth = middleware.JWTAuthMiddleware(cfg.JWTSecret, false)
		requiredAuth = middleware.JWTAuthMiddleware(cfg.JWTSecret, true)
		log.Println("Local JWT authentication configured.")
	} else {
		optionalAuth = middleware.FirebaseAuthMiddleware(firebaseAuthClient, false)
		requiredAuth = middleware.FirebaseAuthMiddleware(firebaseAuthClient, true)
		log.Println("Firebase authentication configured.")
	}

	// Public reads carry an optional viewer identity, writes require one
	public := e.Group("/api/v1", optionalAuth)
	protected := e.Group("/api/v1", requiredAuth)

	// Identity provider config for browser clients
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret, cfg.Auth0Domain, cfg.Auth0ClientID)
	e.GET("/auth_config.json", authHandler.ServeAuthConfig)
	if cfg.AuthMode == "local" {
		authGroup := e.Group("/api/v1/auth")
		authHandler.RegisterAuthRoutes(authGroup)
		log.Println("Local auth routes configured.")
	}

	// Post routes
	postHandler := handlers.NewPostHandler(postRepo, replyRepo, reactionRepo, blobStore)
	postHandler.RegisterPostRoutes(public, protected)
	log.Println("Post routes configured.")

	// Reply routes
	replyHandler := handlers.NewReplyHandler(replyRepo, postRepo)
	replyHandler.RegisterReplyRoutes(protected)
	log.Println("Reply routes configured.")

	// Reaction routes
	reactionHandler := handlers.NewReactionHandler(reactionRepo, postRepo)
	reactionHandler.RegisterReactionRoutes(public, protected)
	log.Println("Reaction routes configured.")

	// Budget wizard routes
	budgetHandler := handlers.NewBudgetHandler()
	budgetHandler.RegisterBudgetRoutes(public)
	log.Println("Budget wizard routes configured.")

	log.Println("All routes configured.")
}
