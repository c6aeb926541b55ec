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

// WaybillHandler handles HTTP requests for waybills
type WaybillHandler struct {
	service service.WaybillServiceInterface
}

// NewWaybillHandler creates a new waybill handler
func NewWaybillHandler(service service.WaybillServiceInterface) *WaybillHandler {
	return &WaybillHandler{service: service}
}

// CreateWaybill handles POST /api/supply-requests/:request_id/waybills
// @Summary Issue a waybill
// @Description Issue a shipping waybill against an ordered supply request
// @Tags waybills
// @Accept json
// @Produce json
// @Param request_id path string true "Supply request ID (UUID)"
// @Param waybill body service.CreateWaybillRequest true "Waybill data"
// @Success 201 {object} service.WaybillResponse "Successfully issued waybill"
// @Failure 400 {object} map[string]interface{} "Invalid request body or request not ordered"
// @Failure 404 {object} map[string]interface{} "Supply request not found"
// @Failure 409 {object} map[string]interface{} "Waybill number already taken"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /supply-requests/{request_id}/waybills [post]
func (h *WaybillHandler) CreateWaybill(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("request_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supply request ID: invalid UUID format"})
		return
	}

	var req service.CreateWaybillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	waybill, err := h.service.Create(requestID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrWaybillExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create waybill", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, waybill)
}

// GetWaybill handles GET /api/waybills/:id
// @Summary Get waybill by ID
// @Description Get a specific waybill by its UUID
// @Tags waybills
// @Produce json
// @Param id path string true "Waybill ID (UUID)"
// @Success 200 {object} service.WaybillResponse "Successfully retrieved waybill"
// @Failure 400 {object} map[string]interface{} "Invalid waybill ID"
// @Failure 404 {object} map[string]interface{} "Waybill not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /waybills/{id} [get]
func (h *WaybillHandler) GetWaybill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid waybill ID: invalid UUID format"})
		return
	}

	waybill, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrWaybillNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get waybill", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, waybill)
}

// ListWaybills handles GET /api/supply-requests/:request_id/waybills
// @Summary List a supply request's waybills
// @Description Get the supply request's waybills with pagination support
// @Tags waybills
// @Produce json
// @Param request_id path string true "Supply request ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.WaybillListResponse "Successfully retrieved waybills"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /supply-requests/{request_id}/waybills [get]
func (h *WaybillHandler) ListWaybills(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("request_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supply request ID: invalid UUID format"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	waybills, err := h.service.ListBySupplyRequest(requestID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list waybills", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, waybills)
}

// UpdateWaybillStatus handles PATCH /api/waybills/:id/status
// @Summary Update a waybill's shipping status
// @Description Move the waybill through issued, in transit and delivered
// @Tags waybills
// @Accept json
// @Produce json
// @Param id path string true "Waybill ID (UUID)"
// @Param status body service.UpdateWaybillStatusRequest true "New status"
// @Success 200 {object} service.WaybillResponse "Successfully updated status"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Waybill not found"
// @Failure 409 {object} map[string]interface{} "Illegal status transition"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /waybills/{id}/status [patch]
func (h *WaybillHandler) UpdateWaybillStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid waybill ID: invalid UUID format"})
		return
	}

	var req service.UpdateWaybillStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	waybill, err := h.service.UpdateStatus(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidStatusTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update waybill", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, waybill)
}
