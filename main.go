package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Eyob-T295/summit-connect/config"
	"github.com/Eyob-T295/summit-connect/handler"
	"github.com/Eyob-T295/summit-connect/middleware"
	"github.com/Eyob-T295/summit-connect/pkg/logger"
	"github.com/Eyob-T295/summit-connect/service"
	"github.com/Eyob-T295/summit-connect/store"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully")

	// Initialize the lead registry on its file-backed store. Edits made to the
	// data file by other processes are picked up through the store watcher.
	fileStore, err := store.NewFileStore(cfg.Store.Path)
	if err != nil {
		slog.Error("failed to open lead store", "error", err, "path", cfg.Store.Path)
		os.Exit(1)
	}
	defer fileStore.Close()

	leadSvc := service.NewLeadService(fileStore)
	defer leadSvc.Close()

	geminiSvc, err := service.NewGeminiService(context.Background(), &cfg.Gemini)
	if err != nil {
		slog.Error("failed to initialize Gemini service", "error", err)
		os.Exit(1)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(cfg)
	leadHandler := handler.NewLeadHandler(leadSvc)
	aiHandler := handler.NewAIHandler(geminiSvc)
	navHandler := handler.NewNavHandler()

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New() // Use New() instead of Default() to avoid default middleware
	router.HandleMethodNotAllowed = true

	// Add custom middleware
	router.Use(middleware.RequestID())                 // Request ID for tracing
	router.Use(middleware.Recovery())                  // Panic recovery
	router.Use(middleware.RequestLogger())             // Access logging
	router.Use(corsMiddleware())                       // CORS
	router.Use(cacheMiddleware())                      // Cache control
	router.Use(middleware.RateLimit("api", 100, time.Minute)) // Rate limiting: 100 requests per minute

	// Serve the site itself
	staticDir := cfg.Server.StaticDir
	slog.Info("serving static files", "directory", staticDir)
	router.Static("/static", staticDir)
	router.StaticFile("/", staticDir+"/index.html")
	router.StaticFile("/index.html", staticDir+"/index.html")
	router.StaticFile("/app.js", staticDir+"/app.js")
	router.StaticFile("/styles.css", staticDir+"/styles.css")

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Public routes: the intake form and the AI helpers are reachable from the
	// marketing site without a login.
	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
		// The anonymous intake form gets a tighter budget than the rest of
		// the API
		api.POST("/leads", middleware.RateLimit("intake", 10, time.Minute), leadHandler.Submit)
		api.GET("/options", leadHandler.Options)
		api.POST("/generate-outreach", aiHandler.GenerateOutreach)
		api.POST("/analyze-leads", aiHandler.AnalyzeLeads)
		api.POST("/sections/observe", navHandler.ObserveSections)
		api.POST("/sections/:id/reveal", navHandler.RevealSection)
	}

	// Protected routes: the internal dashboard
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(&cfg.Auth))
	{
		protected.GET("/auth/me", authHandler.GetCurrentUser)
		protected.GET("/leads", leadHandler.List)
		protected.GET("/leads/:id", leadHandler.Get)
		protected.PATCH("/leads/:id", leadHandler.Update)
		protected.POST("/leads/:id/no-show", leadHandler.MarkNoShow)
		protected.DELETE("/leads", leadHandler.Clear)
		protected.GET("/stats", leadHandler.Stats)
		protected.GET("/navigate", navHandler.Navigate)
	}

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

// corsMiddleware handles CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PATCH, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// cacheMiddleware sets cache control headers for static files
func cacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		// Skip caching for API routes
		if strings.HasPrefix(path, "/api") {
			c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
			c.Next()
			return
		}

		// Set cache headers for static files (1 hour)
		if strings.HasSuffix(path, ".js") ||
			strings.HasSuffix(path, ".css") ||
			strings.HasSuffix(path, ".html") ||
			path == "/" {
			c.Header("Cache-Control", "public, max-age=3600, must-revalidate")
		}

		c.Next()
	}
}
