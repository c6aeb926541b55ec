package handlers

import (
	"net/http"

	apperrors "fleet-supply-backend/internal/errors"
	"fleet-supply-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubscriptionHandler handles HTTP requests for subscriptions
type SubscriptionHandler struct {
	service service.SubscriptionServiceInterface
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(service service.SubscriptionServiceInterface) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

// GetSubscription handles GET /api/organizations/:id/subscription
// @Summary Get the organization's active subscription
// @Description Get the active plan's limits together with current vessel and member counts
// @Tags subscriptions
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.SubscriptionResponse "Successfully retrieved subscription"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 404 {object} map[string]interface{} "No active subscription"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/subscription [get]
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	sub, err := h.service.GetActiveForOrganization(orgID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get subscription", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sub)
}
