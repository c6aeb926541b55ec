package auth

import (
	"testing"
	"time"

	"fleet-supply-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "chief.engineer@test.com",
		UserType:  models.UserTypeRegular,
	}
}

// TestNewAuthServiceRequiresSecret tests that an empty signing secret is rejected
func TestNewAuthServiceRequiresSecret(t *testing.T) {
	service, err := NewAuthService("", "fleet-supply-backend", time.Hour)

	assert.Nil(t, service)
	assert.Error(t, err)
}

// TestGenerateAndValidateJWT tests the sign/validate round trip
func TestGenerateAndValidateJWT(t *testing.T) {
	service, err := NewAuthService("test-secret", "fleet-supply-backend", time.Hour)
	assert.NoError(t, err)

	user := testUser()
	token, err := service.GenerateJWT(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.UserTypeRegular, claims.UserType)
	assert.Equal(t, "fleet-supply-backend", claims.Issuer)
}

// TestValidateJWTWrongSecret tests that a token signed elsewhere is rejected
func TestValidateJWTWrongSecret(t *testing.T) {
	signer, err := NewAuthService("signer-secret", "fleet-supply-backend", time.Hour)
	assert.NoError(t, err)
	verifier, err := NewAuthService("other-secret", "fleet-supply-backend", time.Hour)
	assert.NoError(t, err)

	token, err := signer.GenerateJWT(testUser())
	assert.NoError(t, err)

	claims, err := verifier.ValidateJWT(token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

// TestValidateJWTExpired tests that a lapsed token is rejected
func TestValidateJWTExpired(t *testing.T) {
	service, err := NewAuthService("test-secret", "fleet-supply-backend", time.Nanosecond)
	assert.NoError(t, err)

	token, err := service.GenerateJWT(testUser())
	assert.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	claims, err := service.ValidateJWT(token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}
