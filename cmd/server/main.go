package main

import (
	"context"
	"log"

	firebaseAuth "firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/ridewise/backend/internal/router"
	"github.com/ridewise/backend/internal/storage"
	"github.com/ridewise/backend/pkg/cache"
	"github.com/ridewise/backend/pkg/config"
	"github.com/ridewise/backend/pkg/firebase"
	"github.com/ridewise/backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	ctx := context.Background()

	// Initialize Firebase unless running in local auth mode
	var authClient *firebaseAuth.Client
	if cfg.AuthMode != "local" {
		firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}
		authClient = firebaseApp.AuthClient
	}

	// Initialize blob store for post images
	blobStore, err := storage.NewMinioStore(storage.Config{
		Endpoint:      cfg.MinioEndpoint,
		AccessKey:     cfg.MinioAccessKey,
		SecretKey:     cfg.MinioSecretKey,
		UseSSL:        cfg.MinioUseSSL,
		Bucket:        cfg.MinioBucket,
		PublicBaseURL: cfg.MinioPublicBaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize blob store: %v", err)
	}
	if err := blobStore.EnsureBucket(ctx); err != nil {
		log.Fatalf("Failed to ensure blob store bucket: %v", err)
	}

	// Initialize Redis count cache (optional)
	rdb := cache.NewRedis(cfg.RedisAddr)

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, rdb, authClient, blobStore, cfg)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
