package catalog

import "bookline/internal/domain"

// StorePage is the public booking-page payload: the store's contact
// details plus its bookable services.
type StorePage struct {
	Store    *domain.Store    `json:"store"`
	Services []domain.Service `json:"services"`
}
