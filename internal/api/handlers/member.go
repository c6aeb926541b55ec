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

// MemberHandler handles HTTP requests for organization memberships
type MemberHandler struct {
	service service.MemberServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(service service.MemberServiceInterface) *MemberHandler {
	return &MemberHandler{service: service}
}

// AddMember handles POST /api/organizations/:id/members
// @Summary Add a member directly
// @Description Enroll a user into the organization without an invitation. Owner only.
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param member body service.AddMemberRequest true "Member data"
// @Success 201 {object} service.MemberResponse "Successfully added member"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Caller is not the owner"
// @Failure 404 {object} map[string]interface{} "Organization or user not found"
// @Failure 409 {object} map[string]interface{} "User is already a member"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/members [post]
func (h *MemberHandler) AddMember(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	var req service.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	member, err := h.service.Add(orgID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrMemberExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add member", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, member)
}

// ListMembers handles GET /api/organizations/:id/members
// @Summary List organization members
// @Description Get the organization's members with pagination support
// @Tags members
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.MemberListResponse "Successfully retrieved members"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	members, err := h.service.ListByOrganization(orgID, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list members", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, members)
}

// UpdateMemberRole handles PUT /api/organizations/:id/members/:user_id/role
// @Summary Update a member's role
// @Description Change a member's organization role
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param user_id path string true "User ID (UUID)"
// @Param role body service.UpdateMemberRoleRequest true "New role"
// @Success 200 {object} service.MemberResponse "Successfully updated member"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Caller is not privileged"
// @Failure 404 {object} map[string]interface{} "Membership not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/members/{user_id}/role [put]
func (h *MemberHandler) UpdateMemberRole(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID: invalid UUID format"})
		return
	}

	var req service.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	member, err := h.service.UpdateRole(orgID, userID, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, member)
}

// RemoveMember handles DELETE /api/organizations/:id/members/:user_id
// @Summary Remove a member
// @Description Remove a user's membership from the organization
// @Tags members
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param user_id path string true "User ID (UUID)"
// @Success 204 "Successfully removed member"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Caller is not privileged"
// @Failure 404 {object} map[string]interface{} "Membership not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/members/{user_id} [delete]
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID: invalid UUID format"})
		return
	}

	if err := h.service.Remove(orgID, userID); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove member", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
