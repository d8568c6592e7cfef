package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookline/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/stores/:id", h.GetStorePage)
	rg.GET("/stores/:id/services", h.ListServices)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.DELETE("/stores/:id", h.DeleteStore)
}

func (h *Handler) GetStorePage(c *gin.Context) {
	page, err := h.service.GetStorePage(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Store not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load store")
		return
	}

	response.Success(c, http.StatusOK, page)
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Store not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list services")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"services": services})
}

func (h *Handler) DeleteStore(c *gin.Context) {
	err := h.service.DeleteStore(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), c.Param("id"))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Store not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this store")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete store")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
