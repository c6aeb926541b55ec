package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		// Set user context
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("user_type", string(claims.UserType))
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// GetUserID is a helper function to extract the caller's user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("email")
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
