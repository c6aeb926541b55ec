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

// SupplyRequestHandler handles HTTP requests for supply requests
type SupplyRequestHandler struct {
	service service.SupplyRequestServiceInterface
}

// NewSupplyRequestHandler creates a new supply request handler
func NewSupplyRequestHandler(service service.SupplyRequestServiceInterface) *SupplyRequestHandler {
	return &SupplyRequestHandler{service: service}
}

// CreateSupplyRequest handles POST /api/vessels/:vessel_id/supply-requests
// @Summary Open a supply request
// @Description Open a draft supply request for the vessel
// @Tags supply-requests
// @Accept json
// @Produce json
// @Param vessel_id path string true "Vessel ID (UUID)"
// @Param request body service.CreateSupplyRequestRequest true "Supply request data"
// @Success 201 {object} service.SupplyRequestResponse "Successfully created supply request"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Caller has no access to this vessel"
// @Failure 404 {object} map[string]interface{} "Vessel not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vessels/{vessel_id}/supply-requests [post]
func (h *SupplyRequestHandler) CreateSupplyRequest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	vesselID, err := uuid.Parse(c.Param("vessel_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vessel ID: invalid UUID format"})
		return
	}

	var req service.CreateSupplyRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	request, err := h.service.Create(userID, vesselID, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create supply request", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, request)
}

// GetSupplyRequest handles GET /api/supply-requests/:request_id
// @Summary Get supply request by ID
// @Description Get a specific supply request by its UUID
// @Tags supply-requests
// @Produce json
// @Param request_id path string true "Supply request ID (UUID)"
// @Success 200 {object} service.SupplyRequestResponse "Successfully retrieved supply request"
// @Failure 400 {object} map[string]interface{} "Invalid supply request ID"
// @Failure 404 {object} map[string]interface{} "Supply request not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /supply-requests/{request_id} [get]
func (h *SupplyRequestHandler) GetSupplyRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("request_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supply request ID: invalid UUID format"})
		return
	}

	request, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrSupplyRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get supply request", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, request)
}

// ListSupplyRequests handles GET /api/vessels/:vessel_id/supply-requests
// @Summary List a vessel's supply requests
// @Description Get the vessel's supply requests with pagination support
// @Tags supply-requests
// @Produce json
// @Param vessel_id path string true "Vessel ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.SupplyRequestListResponse "Successfully retrieved supply requests"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vessels/{vessel_id}/supply-requests [get]
func (h *SupplyRequestHandler) ListSupplyRequests(c *gin.Context) {
	vesselID, err := uuid.Parse(c.Param("vessel_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vessel ID: invalid UUID format"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	requests, err := h.service.ListByVessel(vesselID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list supply requests", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// UpdateSupplyRequest handles PUT /api/supply-requests/:request_id
// @Summary Update a supply request
// @Description Edit a draft supply request's details
// @Tags supply-requests
// @Accept json
// @Produce json
// @Param request_id path string true "Supply request ID (UUID)"
// @Param request body service.UpdateSupplyRequestRequest true "Supply request data"
// @Success 200 {object} service.SupplyRequestResponse "Successfully updated supply request"
// @Failure 400 {object} map[string]interface{} "Invalid request or non-draft status"
// @Failure 404 {object} map[string]interface{} "Supply request not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /supply-requests/{request_id} [put]
func (h *SupplyRequestHandler) UpdateSupplyRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("request_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supply request ID: invalid UUID format"})
		return
	}

	var req service.UpdateSupplyRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	request, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supply request", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, request)
}

// UpdateSupplyRequestStatus handles PATCH /api/supply-requests/:request_id/status
// @Summary Advance a supply request's lifecycle
// @Description Move the supply request to its next lifecycle state
// @Tags supply-requests
// @Accept json
// @Produce json
// @Param request_id path string true "Supply request ID (UUID)"
// @Param status body service.UpdateSupplyStatusRequest true "New status"
// @Success 200 {object} service.SupplyRequestResponse "Successfully updated status"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Supply request not found"
// @Failure 409 {object} map[string]interface{} "Illegal status transition"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /supply-requests/{request_id}/status [patch]
func (h *SupplyRequestHandler) UpdateSupplyRequestStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("request_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supply request ID: invalid UUID format"})
		return
	}

	var req service.UpdateSupplyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	request, err := h.service.UpdateStatus(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidStatusTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supply request", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, request)
}

// DeleteSupplyRequest handles DELETE /api/supply-requests/:request_id
// @Summary Delete a supply request
// @Description Delete a supply request and its waybills
// @Tags supply-requests
// @Produce json
// @Param request_id path string true "Supply request ID (UUID)"
// @Success 204 "Successfully deleted supply request"
// @Failure 400 {object} map[string]interface{} "Invalid supply request ID"
// @Failure 404 {object} map[string]interface{} "Supply request not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /supply-requests/{request_id} [delete]
func (h *SupplyRequestHandler) DeleteSupplyRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("request_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supply request ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete supply request", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
