package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/junfengy/peeler/internal/api"
	"github.com/junfengy/peeler/internal/auth"
	"github.com/junfengy/peeler/internal/middleware"
	"github.com/junfengy/peeler/internal/store"
	"github.com/junfengy/peeler/pkg/dict"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Get configuration
	port := getEnv("PORT", "8080")
	wordlistPath := getEnv("WORDLIST", "data/sowpods.txt")
	redisURL := getEnv("REDIS_URL", "")
	jwtSecret := getEnv("JWT_SECRET", "your-secret-key-change-in-production")

	// Load the dictionary once; it is shared read-only by every solve
	trie, err := dict.LoadFile(wordlistPath)
	if err != nil {
		log.Fatalf("Failed to load word list: %v", err)
	}
	log.Printf("Dictionary loaded: %d words", trie.Size())

	// Optional Redis cache for solve results
	var cache *store.Cache
	if redisURL != "" {
		cache, err = store.New(redisURL)
		if err != nil {
			log.Printf("Warning: Redis connection failed: %v", err)
			log.Println("Running without the solve cache...")
			cache = nil
		} else {
			log.Println("Solve cache connected")
		}
	}

	// Initialize services
	authService := auth.NewAuthService(jwtSecret)
	authMiddleware := middleware.NewAuthMiddleware(authService)
	handlers := api.NewHandlers(trie, authService, cache)

	// Setup Gin router
	router := gin.Default()
	router.Use(middleware.CORS())
	router.Use(middleware.PerformanceMonitor())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "words": trie.Size(), "time": time.Now().Unix()})
	})

	// Performance metrics endpoint
	router.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, middleware.GetMetrics())
	})

	// API routes
	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/auth/guest", handlers.Guest)

		solveGroup := apiGroup.Group("")
		solveGroup.Use(authMiddleware.RequireAuth())
		{
			solveGroup.POST("/solve", handlers.Solve)
			solveGroup.POST("/peel", handlers.Peel)
			solveGroup.POST("/swap", handlers.Swap)
		}

		// WebSocket endpoint streams search progress; the token travels in
		// the query string because browsers cannot set headers on upgrades.
		apiGroup.GET("/solve/live", func(c *gin.Context) {
			token := c.Query("token")
			if token == "" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
				return
			}
			if _, err := authService.ValidateToken(token); err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
			handlers.SolveLive(c)
		})

	}

	// Return JSON instead of HTML for unknown routes
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Not Found",
			"path":  c.Request.URL.Path,
		})
	})

	// Create server
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	// Start server in a goroutine so shutdown can be handled gracefully
	go func() {
		log.Printf("Server listening on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := cache.Close(); err != nil {
		log.Printf("Error closing cache: %v", err)
	}
	log.Println("Server stopped")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
