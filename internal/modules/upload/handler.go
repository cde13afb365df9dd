package upload

import (
	"net/http"

	"paintpro/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler handles direct media uploads. Any authenticated user can
// upload; ownership is tracked by user_id.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	uploads := rg.Group("/uploads")
	{
		uploads.POST("", h.Upload)
		uploads.GET("", h.ListMy)
		uploads.GET("/:id", h.GetByID)
	}
}

func (h *Handler) Upload(c *gin.Context) {
	userID := c.GetInt64("user_id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "no file provided")
		return
	}

	u, err := h.service.Store(c.Request.Context(), userID, fileHeader)
	if err != nil {
		switch err {
		case ErrEmptyFile, ErrInvalidMimeType:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case ErrFileTooLarge:
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "upload failed")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":         u.ID,
		"url":        u.FileURL,
		"name":       u.OriginalName,
		"mime_type":  u.MimeType,
		"size":       u.Size,
		"created_at": u.CreatedAt,
	})
}

func (h *Handler) GetByID(c *gin.Context) {
	u, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == ErrUploadNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "upload not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to load upload")
		return
	}
	response.Success(c, http.StatusOK, u)
}

func (h *Handler) ListMy(c *gin.Context) {
	uploads, err := h.service.ListByUser(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list uploads")
		return
	}
	response.Success(c, http.StatusOK, uploads)
}
