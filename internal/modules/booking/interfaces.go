package booking

import (
	"context"
	"time"

	"bookline/internal/domain"
)

// ReservationRepository defines the persistence operations the engine needs.
type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	HasConflict(ctx context.Context, storeID string, start, end time.Time, excludeID string) (bool, error)
	ListForStore(ctx context.Context, storeID string, day *time.Time, status string) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error
	DeleteByStoreID(ctx context.Context, storeID string) (int64, error)
}

// CatalogRepository is the read-only view of stores and services.
type CatalogRepository interface {
	GetStore(ctx context.Context, id string) (*domain.Store, error)
	GetService(ctx context.Context, storeID, serviceID string) (*domain.Service, error)
}
