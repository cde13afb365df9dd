package dashboard

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

// RegisterRoutes exposes a single endpoint; the projection is picked by
// the role claim on the session, never by anything client-supplied.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Dashboard)
}

func (h *Handler) Dashboard(c *gin.Context) {
	view, err := h.service.DashboardFor(c.Request.Context(), c.GetString("role"), c.GetInt64("user_id"))
	if err != nil {
		switch err {
		case ErrUnknownRole:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "No dashboard for this role")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "No profile for this principal")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build dashboard")
		}
		return
	}
	response.Success(c, http.StatusOK, view)
}
