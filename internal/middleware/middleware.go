package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/junfengy/peeler/internal/auth"
)

const (
	AuthUserKey = "authUser"
)

type AuthMiddleware struct {
	authService *auth.AuthService
}

func NewAuthMiddleware(authService *auth.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireAuth is a middleware that requires a valid JWT token
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
			c.Abort()
			return
		}

		claims, err := m.authService.ValidateToken(token)
		if err != nil {
			if err == auth.ErrTokenExpired {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			}
			c.Abort()
			return
		}

		c.Set(AuthUserKey, claims)
		c.Next()
	}
}

// extractToken extracts the JWT token from the Authorization header
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}

	return parts[1]
}

// GetAuthUser retrieves the authenticated player from the context
func GetAuthUser(c *gin.Context) *auth.Claims {
	claims, exists := c.Get(AuthUserKey)
	if !exists {
		return nil
	}
	return claims.(*auth.Claims)
}

// CORS middleware
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// EndpointMetrics holds timing statistics for a single endpoint
type EndpointMetrics struct {
	Count     int64         `json:"count"`
	TotalTime time.Duration `json:"totalTime"`
	MinTime   time.Duration `json:"minTime"`
	MaxTime   time.Duration `json:"maxTime"`
}

var (
	metricsMu sync.RWMutex
	metrics   = make(map[string]*EndpointMetrics)
)

// PerformanceMonitor records per-endpoint request timings
func PerformanceMonitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		key := c.Request.Method + " " + c.FullPath()
		metricsMu.Lock()
		m, ok := metrics[key]
		if !ok {
			m = &EndpointMetrics{MinTime: elapsed, MaxTime: elapsed}
			metrics[key] = m
		}
		m.Count++
		m.TotalTime += elapsed
		if elapsed < m.MinTime {
			m.MinTime = elapsed
		}
		if elapsed > m.MaxTime {
			m.MaxTime = elapsed
		}
		metricsMu.Unlock()
	}
}

// GetMetrics returns a copy of the collected endpoint metrics
func GetMetrics() map[string]EndpointMetrics {
	metricsMu.RLock()
	defer metricsMu.RUnlock()
	out := make(map[string]EndpointMetrics, len(metrics))
	for k, v := range metrics {
		out[k] = *v
	}
	return out
}
