package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "fleet-supply-backend/internal/errors"
	"fleet-supply-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvitationHandler handles HTTP requests for invitations
type InvitationHandler struct {
	service service.InvitationServiceInterface
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(service service.InvitationServiceInterface) *InvitationHandler {
	return &InvitationHandler{service: service}
}

// IssueInvitation handles POST /api/organizations/:id/invitations
// @Summary Issue an invitation
// @Description Mint a single-use invitation code scoped to the organization, optionally tied to a vessel
// @Tags invitations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param invitation body service.IssueInvitationRequest true "Invitation data"
// @Success 201 {object} service.InvitationResponse "Successfully issued invitation"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Caller cannot invite members"
// @Failure 404 {object} map[string]interface{} "Organization or vessel not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/invitations [post]
func (h *InvitationHandler) IssueInvitation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	var req service.IssueInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	// The route fixes the scope and the issuer.
	req.InvitedBy = userID
	req.OrganizationID = &orgID

	invitation, err := h.service.Issue(&req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err) || errors.Is(err, apperrors.ErrInvitationScopeMissing):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue invitation", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, invitation)
}

// RedeemInvitation handles POST /api/invitations/redeem
// @Summary Redeem an invitation code
// @Description Consume a pending invitation code and enroll the caller into its scope
// @Tags invitations
// @Accept json
// @Produce json
// @Param redemption body service.RedeemInvitationRequest true "Invitation code"
// @Success 200 {object} service.RedeemInvitationResponse "Successfully redeemed invitation"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Invitation code not found"
// @Failure 409 {object} map[string]interface{} "Invitation already used or revoked"
// @Failure 410 {object} map[string]interface{} "Invitation expired"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /invitations/redeem [post]
func (h *InvitationHandler) RedeemInvitation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.RedeemInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.Redeem(req.Code, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvitationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvitationExpired):
			c.JSON(http.StatusGone, gin.H{"error": err.Error()})
		case apperrors.IsInvitation(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to redeem invitation", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListInvitations handles GET /api/organizations/:id/invitations
// @Summary List an organization's invitations
// @Description Get the organization's invitations with pagination support
// @Tags invitations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.InvitationListResponse "Successfully retrieved invitations"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/invitations [get]
func (h *InvitationHandler) ListInvitations(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	invitations, err := h.service.ListByOrganization(orgID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invitations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, invitations)
}

// RevokeInvitation handles DELETE /api/organizations/:id/invitations/:invitation_id
// @Summary Revoke an invitation
// @Description Withdraw a pending invitation so its code can no longer be redeemed
// @Tags invitations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param invitation_id path string true "Invitation ID (UUID)"
// @Success 204 "Successfully revoked invitation"
// @Failure 400 {object} map[string]interface{} "Invalid invitation ID"
// @Failure 404 {object} map[string]interface{} "Invitation not found"
// @Failure 409 {object} map[string]interface{} "Invitation already used"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/invitations/{invitation_id} [delete]
func (h *InvitationHandler) RevokeInvitation(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	id, err := uuid.Parse(c.Param("invitation_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID: invalid UUID format"})
		return
	}

	if err := h.service.Revoke(orgID, id); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvitationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsInvitation(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke invitation", "details": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
