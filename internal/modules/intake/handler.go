package intake

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

// RegisterCustomerRoutes exposes request creation and the customer's
// own request listing.
func (h *Handler) RegisterCustomerRoutes(rg *gin.RouterGroup) {
	rg.POST("/requests", h.CreateRequest)
	rg.GET("/requests/my", h.ListMy)
}

// RegisterAdminRoutes exposes the global request listing.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/requests", h.List)
	rg.GET("/requests/:id", h.GetByID)
}

func (h *Handler) CreateRequest(c *gin.Context) {
	var form CreateRequestForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid form data")
		return
	}

	mpForm, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Multipart form expected")
		return
	}
	photos := mpForm.File["photos"]

	req, err := h.service.CreateRequest(c.Request.Context(), c.GetInt64("user_id"), form, photos)
	if err != nil {
		switch err {
		case ErrNoPhotos:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "At least one photo is required")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing fields or non-numeric dimensions")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create request")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":     req.ID,
		"status": req.Status(),
		"photos": req.Photos,
		"rooms":  req.RoomInfo,
	})
}

func (h *Handler) ListMy(c *gin.Context) {
	reqs, err := h.service.ListRequests(c.Request.Context(), Filter{CustomerID: c.GetInt64("user_id")})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list requests")
		return
	}
	response.Success(c, http.StatusOK, presentRequests(reqs))
}

func (h *Handler) List(c *gin.Context) {
	reqs, err := h.service.ListRequests(c.Request.Context(), Filter{Status: c.Query("status")})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list requests")
		return
	}
	response.Success(c, http.StatusOK, presentRequests(reqs))
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request ID")
		return
	}

	req, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Request not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load request")
		return
	}

	response.Success(c, http.StatusOK, presentRequest(*req))
}

// presentRequest flattens the derived status into the payload, since
// domain.Request computes it behind a method.
func presentRequest(r domain.Request) gin.H {
	out := gin.H{
		"id":          r.ID,
		"customer_id": r.CustomerID,
		"rooms":       r.RoomInfo,
		"status":      r.Status(),
		"photos":      r.Photos,
		"created_at":  r.CreatedAt,
	}
	if r.Assignment != nil {
		out["assignment"] = r.Assignment
	}
	return out
}

func presentRequests(reqs []domain.Request) []gin.H {
	out := make([]gin.H, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, presentRequest(r))
	}
	return out
}
