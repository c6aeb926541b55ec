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

// VesselHandler handles HTTP requests for vessels
type VesselHandler struct {
	service service.VesselServiceInterface
}

// NewVesselHandler creates a new vessel handler
func NewVesselHandler(service service.VesselServiceInterface) *VesselHandler {
	return &VesselHandler{service: service}
}

// CreateVessel handles POST /api/organizations/:id/vessels
// @Summary Provision a new vessel
// @Description Create a vessel in the organization and grant the creator access. Honors the subscription's vessel cap.
// @Tags vessels
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param vessel body service.CreateVesselRequest true "Vessel data"
// @Success 201 {object} service.VesselResponse "Successfully created vessel"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Caller cannot create vessels"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 409 {object} map[string]interface{} "Vessel name already taken or subscription vessel cap reached"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/vessels [post]
func (h *VesselHandler) CreateVessel(c *gin.Context) {
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

	var req service.CreateVesselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	vessel, err := h.service.Create(userID, orgID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrVesselExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsLimitExceeded(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vessel", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, vessel)
}

// GetVessel handles GET /api/vessels/:vessel_id
// @Summary Get vessel by ID
// @Description Get a specific vessel by its UUID
// @Tags vessels
// @Produce json
// @Param vessel_id path string true "Vessel ID (UUID)"
// @Success 200 {object} service.VesselResponse "Successfully retrieved vessel"
// @Failure 400 {object} map[string]interface{} "Invalid vessel ID"
// @Failure 404 {object} map[string]interface{} "Vessel not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vessels/{vessel_id} [get]
func (h *VesselHandler) GetVessel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("vessel_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vessel ID: invalid UUID format"})
		return
	}

	vessel, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrVesselNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get vessel", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, vessel)
}

// ListVessels handles GET /api/organizations/:id/vessels
// @Summary List an organization's vessels
// @Description Get the organization's vessels with pagination support
// @Tags vessels
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.VesselListResponse "Successfully retrieved vessels"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/vessels [get]
func (h *VesselHandler) ListVessels(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	vessels, err := h.service.ListByOrganization(orgID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vessels", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, vessels)
}

// ListMyVessels handles GET /api/vessels
// @Summary List the caller's vessels
// @Description Get vessels the caller holds an active assignment on
// @Tags vessels
// @Produce json
// @Success 200 {array} service.VesselResponse "Successfully retrieved vessels"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vessels [get]
func (h *VesselHandler) ListMyVessels(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	vessels, err := h.service.ListForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vessels", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, vessels)
}

// UpdateVessel handles PUT /api/vessels/:vessel_id
// @Summary Update a vessel
// @Description Update a vessel's flag and description
// @Tags vessels
// @Accept json
// @Produce json
// @Param vessel_id path string true "Vessel ID (UUID)"
// @Param vessel body service.UpdateVesselRequest true "Vessel data"
// @Success 200 {object} service.VesselResponse "Successfully updated vessel"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Caller has no access to this vessel"
// @Failure 404 {object} map[string]interface{} "Vessel not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vessels/{vessel_id} [put]
func (h *VesselHandler) UpdateVessel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("vessel_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vessel ID: invalid UUID format"})
		return
	}

	var req service.UpdateVesselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	vessel, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrVesselNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vessel", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, vessel)
}

// DeleteVessel handles DELETE /api/vessels/:vessel_id
// @Summary Delete a vessel
// @Description Delete a vessel and its dependent records
// @Tags vessels
// @Produce json
// @Param vessel_id path string true "Vessel ID (UUID)"
// @Success 204 "Successfully deleted vessel"
// @Failure 400 {object} map[string]interface{} "Invalid vessel ID"
// @Failure 403 {object} map[string]interface{} "Caller has no access to this vessel"
// @Failure 404 {object} map[string]interface{} "Vessel not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vessels/{vessel_id} [delete]
func (h *VesselHandler) DeleteVessel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("vessel_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vessel ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrVesselNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vessel", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
