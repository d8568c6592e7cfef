package domain

import "time"

// Customer is an optional profile a store keeps for repeat visitors.
// Reservations snapshot contact details instead of referencing this record.
type Customer struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Notes     string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
