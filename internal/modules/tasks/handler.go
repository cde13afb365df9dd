package tasks

import (
	"net/http"
	"strconv"

	"paintpro/internal/domain"
	"paintpro/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterVendorRoutes exposes lifecycle operations to the vendor role.
func (h *Handler) RegisterVendorRoutes(rg *gin.RouterGroup) {
	rg.GET("/assignments/assigned/:vendorId", h.ListAssigned)
	rg.PUT("/assignments/:id/status", h.AdvanceStatus)
	rg.POST("/assignments/:id/images", h.RecordImages)
}

func (h *Handler) ListAssigned(c *gin.Context) {
	vendorID, err := strconv.ParseInt(c.Param("vendorId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid vendor ID")
		return
	}

	tasks, err := h.service.ListByVendor(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list assignments")
		return
	}
	response.Success(c, http.StatusOK, tasks)
}

func (h *Handler) AdvanceStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid assignment ID")
		return
	}

	var req AdvanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.Advance(c.Request.Context(), id, domain.AssignmentStatus(req.Status))
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown status value")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Assignment not found")
		case ErrInvalidStatusTransition:
			response.Error(c, http.StatusConflict, "CONFLICT", "Invalid status transition")
		case ErrAfterImagesRequired:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Completion requires at least one after image")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update status")
		}
		return
	}

	response.Success(c, http.StatusOK, a)
}

func (h *Handler) RecordImages(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid assignment ID")
		return
	}

	var req RecordImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.RecordImages(c.Request.Context(), id, domain.ImageSlot(req.Slot), req.URLs)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Slot must be before or after, with at least one URL")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Assignment not found")
		case ErrInvalidStatusTransition:
			response.Error(c, http.StatusConflict, "CONFLICT", "Assignment is already completed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record images")
		}
		return
	}

	response.Success(c, http.StatusOK, a)
}
