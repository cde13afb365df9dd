package catalog

import (
	"net/http"
	"strconv"

	"paintpro/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	designs := rg.Group("/designs")
	{
		designs.GET("", h.List)
		designs.GET("/:id", h.View)
		designs.POST("/:id/like", h.Like)
	}
}

func (h *Handler) List(c *gin.Context) {
	designs, err := h.service.ListDesigns(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list designs")
		return
	}
	response.Success(c, http.StatusOK, designs)
}

func (h *Handler) View(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid design ID")
		return
	}

	d, err := h.service.ViewDesign(c.Request.Context(), id)
	if err != nil {
		if err == ErrDesignNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Design not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load design")
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) Like(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid design ID")
		return
	}

	if err := h.service.LikeDesign(c.Request.Context(), id); err != nil {
		if err == ErrDesignNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Design not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to like design")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"liked": true})
}
