package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookline/internal/domain"
	"bookline/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the unauthenticated booking endpoint.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/reservations", h.CreateReservation)
}

// RegisterProtectedRoutes mounts the owner/admin endpoints.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/reservations", h.ListReservations)
	rg.PUT("/reservations/:id/status", h.UpdateStatus)
}

func (h *Handler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.service.CreateReservation(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation request")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Store or service not found")
		case ErrSlotTaken:
			// distinct code so clients can offer "choose another time"
			response.Error(c, http.StatusConflict, "SLOT_UNAVAILABLE", "The selected time slot is no longer available")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create reservation")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"reservation": r})
}

func (h *Handler) ListReservations(c *gin.Context) {
	storeID := c.Query("store")
	if storeID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "store query parameter is required")
		return
	}

	actor := actorFromContext(c)
	list, err := h.service.ListForStore(c.Request.Context(), actor, storeID, c.Query("date"), c.Query("status"))
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date or status filter")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Store not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this store")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reservations")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservations": list})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	actor := actorFromContext(c)
	r, err := h.service.UpdateStatus(c.Request.Context(), actor, c.Param("id"), domain.ReservationStatus(req.Status))
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status value")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this reservation's store")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update reservation")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": r})
}

func actorFromContext(c *gin.Context) Actor {
	return Actor{
		UserID: c.GetString("user_id"),
		Role:   c.GetString("role"),
	}
}
