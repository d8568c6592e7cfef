package domain

import "time"

type Review struct {
	ID            string    `json:"id"`
	StoreID       string    `json:"store_id"`
	ReservationID *string   `json:"reservation_id,omitempty"`
	CustomerName  string    `json:"customer_name"`
	Rating        int       `json:"rating" validate:"gte=1,lte=5"`
	Comment       string    `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
