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

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// CreateOrganization handles POST /api/organizations
// @Summary Create a new organization
// @Description Found a new organization owned by the caller. Requires an organization-owner account.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} service.OrganizationResponse "Successfully created organization"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Caller cannot found organizations"
// @Failure 409 {object} map[string]interface{} "Organization already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	// The caller always founds their own organization.
	req.OwnerID = userID

	org, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create organization", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, org)
}

// GetOrganization handles GET /api/organizations/:id
// @Summary Get organization by ID
// @Description Get a specific organization by its UUID
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.OrganizationResponse "Successfully retrieved organization"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	org, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get organization", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, org)
}

// ListOrganizations handles GET /api/organizations
// @Summary List the caller's organizations
// @Description Get organizations the caller owns or administers
// @Tags organizations
// @Produce json
// @Success 200 {array} service.OrganizationResponse "Successfully retrieved organizations"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	orgs, err := h.service.ListForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list organizations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// ListAllOrganizations handles GET /api/organizations/all
// @Summary List all organizations
// @Description Get all organizations with pagination support
// @Tags organizations
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.OrganizationListResponse "Successfully retrieved organizations"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/all [get]
func (h *OrganizationHandler) ListAllOrganizations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	orgs, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list organizations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// UpdateOrganization handles PUT /api/organizations/:id
// @Summary Update an organization
// @Description Update an organization's display name and description
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param organization body service.UpdateOrganizationRequest true "Organization data"
// @Success 200 {object} service.OrganizationResponse "Successfully updated organization"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Caller is not privileged"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id} [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	var req service.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update organization", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, org)
}

// DeleteOrganization handles DELETE /api/organizations/:id
// @Summary Delete an organization
// @Description Delete an organization and all of its dependent records
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 204 "Successfully deleted organization"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 403 {object} map[string]interface{} "Caller is not the owner"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id} [delete]
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete organization", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
