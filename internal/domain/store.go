package domain

import "time"

type Store struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Service struct {
	ID              string    `json:"id"`
	StoreID         string    `json:"store_id" validate:"required"`
	Name            string    `json:"name" validate:"required"`
	Description     string    `json:"description,omitempty" gorm:"type:text"`
	Price           float64   `json:"price" validate:"gte=0"`
	DurationMinutes int       `json:"duration_minutes" validate:"gt=0"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
