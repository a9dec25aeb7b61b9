package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/junfengy/peeler/internal/auth"
)

func setup(t *testing.T) (*gin.Engine, *auth.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	authService := auth.NewAuthService("test-secret")
	router := gin.New()
	router.Use(NewAuthMiddleware(authService).RequireAuth())
	router.GET("/protected", func(c *gin.Context) {
		claims := GetAuthUser(c)
		c.JSON(http.StatusOK, gin.H{"playerId": claims.PlayerID})
	})
	return router, authService
}

func TestRequireAuth(t *testing.T) {
	router, authService := setup(t)

	token, err := authService.GenerateToken("player-1", "Guest")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "valid token", authHeader: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", authHeader: token, wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", authHeader: "Basic " + token, wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer nope", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS())
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
}
