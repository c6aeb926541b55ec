package auth

import (
	"fmt"
	"time"

	"fleet-supply-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthService issues and validates the JWT access tokens the API accepts.
// Identity providers live upstream; this service only signs claims for users
// that already exist.
type AuthService struct {
	secret   []byte
	issuer   string
	tokenTTL time.Duration
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID   uuid.UUID       `json:"user_id"`
	Email    string          `json:"email" example:"chief.engineer@example.com"`
	UserType models.UserType `json:"user_type" example:"regular"`
	jwt.RegisteredClaims
}

// NewAuthService creates a new authentication service
func NewAuthService(secret, issuer string, tokenTTL time.Duration) (*AuthService, error) {
	if secret == "" {
		return nil, fmt.Errorf("auth service requires a signing secret")
	}
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		secret:   []byte(secret),
		issuer:   issuer,
		tokenTTL: tokenTTL,
	}, nil
}

// GenerateJWT signs an access token for the given user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:   user.ID,
		Email:    user.Email,
		UserType: user.UserType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateJWT parses and validates an access token and returns its claims
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.UserID == uuid.Nil {
		return nil, fmt.Errorf("token carries no user id")
	}
	return claims, nil
}
