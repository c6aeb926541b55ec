package handlers

import (
	"fleet-supply-backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUserID returns the authenticated caller's ID from the request context
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	return auth.GetUserID(c)
}
