package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blog-platform/internal/auth"
	"blog-platform/internal/config"
	"blog-platform/internal/generator"
	"blog-platform/internal/handler"
	"blog-platform/internal/infrastructure/database"
	"blog-platform/internal/logger"
	"blog-platform/internal/metrics"
	"blog-platform/internal/middleware"
	"blog-platform/internal/repository"
	"blog-platform/internal/service"
	"blog-platform/internal/storage"
	"blog-platform/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
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
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize token manager
	tokens, err := auth.NewTokenManager(cfg.JWTSecret)
	if err != nil {
		logger.Fatal("Failed to initialize token manager",
			slog.String("error", err.Error()))
	}

	// Initialize image store
	imageStore, err := storage.NewLocalImageStore(cfg.UploadDir)
	if err != nil {
		logger.Fatal("Failed to initialize image store",
			slog.String("error", err.Error()))
	}

	// Initialize repositories
	userRepo := repository.NewPostgresUserRepository(pool)
	articleRepo := repository.NewPostgresArticleRepository(pool)
	commentRepo := repository.NewPostgresCommentRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	authService := service.NewAuthService(userRepo, v, tokens, cfg.AdminEmail, cfg.AdminPasswordHash)
	articleService := service.NewArticleService(articleRepo, v)
	commentService := service.NewCommentService(commentRepo, v)
	dashboardService := service.NewDashboardService(articleRepo, commentRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	articleHandler := handler.NewArticleHandler(articleService)
	commentHandler := handler.NewCommentHandler(commentService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	uploadHandler := handler.NewUploadHandler(imageStore)
	generateHandler := handler.NewGenerateHandler(generator.NewTemplateGenerator())
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

	// Uploaded images are served statically; refs returned by the upload
	// endpoint resolve under this prefix.
	router.Static("/uploads", cfg.UploadDir)

	requireAuth := middleware.Auth(tokens)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/admin/login", authHandler.AdminLogin)
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		articles := v1.Group("/articles")
		{
			articles.GET("", articleHandler.List)
			articles.GET("/mine", requireAuth, articleHandler.ListMine)
			articles.GET("/:id", articleHandler.Get)
			articles.POST("", requireAuth, articleHandler.Create)
			articles.PUT("/:id", requireAuth, articleHandler.Update)
			articles.DELETE("/:id", requireAuth, articleHandler.Delete)
			articles.POST("/:id/publish", requireAuth, articleHandler.TogglePublish)
			articles.GET("/:id/comments", commentHandler.ListApproved)
			articles.POST("/:id/comments", commentHandler.Add)
		}

		comments := v1.Group("/comments", requireAuth)
		{
			comments.GET("", commentHandler.ListAll)
			comments.POST("/:id/approve", commentHandler.Approve)
			comments.DELETE("/:id", commentHandler.Delete)
		}

		v1.GET("/dashboard", requireAuth, dashboardHandler.Summary)
		v1.POST("/uploads", requireAuth, uploadHandler.Upload)
		v1.POST("/generate", requireAuth, generateHandler.Generate)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
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
