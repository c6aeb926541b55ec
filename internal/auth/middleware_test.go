package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service, err := NewAuthService("test-secret", "fleet-supply-backend", time.Hour)
	assert.NoError(t, err)

	router := gin.New()
	router.Use(NewAuthMiddleware(service).RequireAuth())
	router.GET("/whoami", func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	})
	return router, service
}

// TestRequireAuthWithGeneratedToken tests that a signed token passes the
// middleware and surfaces the caller's ID
func TestRequireAuthWithGeneratedToken(t *testing.T) {
	router, service := setupAuthRouter(t)

	user := testUser()
	token, err := service.GenerateJWT(user)
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), user.ID.String())
}

// TestRequireAuthMissingHeader tests rejecting a request without credentials
func TestRequireAuthMissingHeader(t *testing.T) {
	router, _ := setupAuthRouter(t)

	req := httptest.NewRequest("GET", "/whoami", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

// TestRequireAuthMalformedHeader tests rejecting a non-Bearer header
func TestRequireAuthMalformedHeader(t *testing.T) {
	router, service := setupAuthRouter(t)

	token, err := service.GenerateJWT(testUser())
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Token "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

// TestRequireAuthGarbageToken tests rejecting an unparseable token
func TestRequireAuthGarbageToken(t *testing.T) {
	router, _ := setupAuthRouter(t)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
