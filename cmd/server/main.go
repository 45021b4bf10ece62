package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"cms-admin/internal/auth"
	"cms-admin/internal/config"
	"cms-admin/internal/handler"
	"cms-admin/internal/infrastructure/database"
	"cms-admin/internal/logger"
	"cms-admin/internal/metrics"
	"cms-admin/internal/middleware"
	"cms-admin/internal/repository"
	"cms-admin/internal/service"
	"cms-admin/internal/storage"
	"cms-admin/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Apply schema migrations
	poolCfg := database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}
	if err := database.Migrate(poolCfg, cfg.MigrationsPath); err != nil {
		logger.Fatal("Failed to apply migrations",
			slog.String("error", err.Error()))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), poolCfg)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	articleRepo := repository.NewPostgresArticleRepository(pool)
	workRepo := repository.NewPostgresWorkRepository(pool)

	// Initialize object storage
	store, err := storage.NewFilesystemStore(cfg.MediaDir, cfg.MediaBaseURL)
	if err != nil {
		logger.Fatal("Failed to initialize media storage",
			slog.String("error", err.Error()))
	}

	// Initialize validator
	v := validator.NewValidator(cfg.DefaultLanguage)

	// Initialize services
	articleService := service.NewArticleService(articleRepo, store, v)
	workService := service.NewWorkService(workRepo, store, v)

	// Initialize auth
	verifier := auth.NewJWTVerifier(cfg.AuthSecret, cfg.AuthIssuer)

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(articleService)
	workHandler := handler.NewWorkHandler(workService)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Stored media objects
	router.Static("/media", cfg.MediaDir)

	requireAuth := middleware.RequireAuth(verifier)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Article routes
		articles := v1.Group("/articles")
		{
			articles.GET("", articleHandler.ListArticles)
			articles.GET("/:slug", articleHandler.GetArticle)
			articles.POST("", requireAuth, articleHandler.CreateArticle)
			articles.PUT("/:slug", requireAuth, articleHandler.UpdateArticle)
			articles.DELETE("/:slug", requireAuth, articleHandler.DeleteArticle)
			articles.POST("/:slug/cover", requireAuth, articleHandler.UploadArticleCover)
		}

		// Work routes
		// Distinct work tags. Registered outside the /works group because
		// the router cannot mix a static segment with the :slug wildcard.
		v1.GET("/tags", workHandler.ListWorkTags)

		works := v1.Group("/works")
		{
			works.GET("", workHandler.ListWorks)
			works.GET("/:slug", workHandler.GetWork)
			works.POST("", requireAuth, workHandler.CreateWork)
			works.PUT("/:slug", requireAuth, workHandler.UpdateWork)
			works.DELETE("/:slug", requireAuth, workHandler.DeleteWork)
			works.POST("/:slug/cover", requireAuth, workHandler.UploadWorkCover)
			works.PUT("/:slug/blocks", requireAuth, workHandler.SaveWorkBlocks)
			works.POST("/:slug/rename", requireAuth, workHandler.RenameWork)
		}
	}

	// CORS for the admin frontend
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.AllowedOrigins, ","),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      corsHandler.Handler(router),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
