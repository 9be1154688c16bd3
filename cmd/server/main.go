package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"ripple/internal/auth"
	"ripple/internal/config"
	"ripple/internal/handler"
	"ripple/internal/middleware"
	"ripple/internal/reactions"
	"ripple/internal/repository/postgres"
	"ripple/internal/service"
	"ripple/internal/storage"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
		"asset_root", cfg.AssetRoot,
	)

	// Create JWT verifier
	jwtVerifier, err := auth.NewJWTVerifier(cfg.JWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create repositories
	tables := postgres.NewTableNames(cfg.TablePrefix)
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	postRepo := postgres.NewPostRepository(repoConfig)
	reactionRepo := postgres.NewReactionRepository(repoConfig)
	profileRepo := postgres.NewProfileRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Load reaction kinds
	kindRegistry, err := reactions.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load reaction kinds: %v", err)
	}

	// Create photo storage
	paths := storage.NewPaths(cfg.AssetRoot)
	photoStore := storage.NewPhotoStore(paths, logger)

	// Create services
	postService := service.NewPostService(postRepo, reactionRepo, txManager, kindRegistry, logger)
	profileService := service.NewProfileService(profileRepo, photoStore, logger)

	// Create handlers
	postsHandler := handler.NewPostsHandler(postService, logger)
	profileHandler := handler.NewProfileHandler(profileService, logger)
	reactionsHandler := handler.NewReactionsHandler(kindRegistry, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", postsHandler.HealthCheck)

	// Post routes
	mux.HandleFunc("POST /api/posts", postsHandler.CreatePost)
	mux.HandleFunc("PUT /api/posts/{id}/reactions", postsHandler.React)
	mux.HandleFunc("DELETE /api/posts/{id}/reactions", postsHandler.Unreact)

	// Reaction kind routes
	mux.HandleFunc("GET /api/reactions/kinds", reactionsHandler.ListKinds)

	// Profile routes
	mux.HandleFunc("GET /api/users/me/profile", profileHandler.GetProfile)
	mux.HandleFunc("PUT /api/users/me/profile", profileHandler.SetProfile)
	mux.HandleFunc("PUT /api/users/me/profile/photo", profileHandler.UploadPhoto)
	mux.HandleFunc("GET /api/users/me/profile/photo", profileHandler.GetPhoto)
	mux.HandleFunc("DELETE /api/users/me/profile/photo", profileHandler.DeletePhoto)

	// Build middleware chain (applied in reverse order, they wrap each other)
	// Order: CORS -> Recovery -> Auth -> Routes
	var h http.Handler = mux
	h = middleware.AuthMiddleware(jwtVerifier)(h)
	h = middleware.Recovery(logger)(h)

	// CORS - must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
