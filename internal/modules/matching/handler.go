package matching

import (
	"net/http"

	"paintpro/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes exposes vendor assignment to the admin role.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/assignments/assignVendor", h.AssignVendor)
}

func (h *Handler) AssignVendor(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.Assign(c.Request.Context(), req.RequestID, req.VendorID, req.Price)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid assignment payload")
		case ErrRequestNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Request not found")
		case ErrVendorNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vendor not found")
		case ErrNotEligible:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Vendor is not approved for assignments")
		case ErrAlreadyAssigned:
			response.Error(c, http.StatusConflict, "CONFLICT", "Request already assigned")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to assign vendor")
		}
		return
	}

	response.Success(c, http.StatusCreated, a)
}
