package booking

import "time"

type CreateReservationRequest struct {
	StoreID       string    `json:"store_id" binding:"required"`
	ServiceID     string    `json:"service_id" binding:"required"`
	StartTime     time.Time `json:"start_time" binding:"required"`
	CustomerName  string    `json:"customer_name" binding:"required"`
	CustomerPhone string    `json:"customer_phone" binding:"required"`
	CustomerEmail string    `json:"customer_email"`
	Notes         string    `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Actor is the authenticated principal behind a lifecycle request.
type Actor struct {
	UserID string
	Role   string
}
