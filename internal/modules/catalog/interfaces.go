package catalog

import (
	"context"

	"bookline/internal/domain"
	"bookline/internal/repository"
)

type StoreRepository interface {
	GetStore(ctx context.Context, id string) (*domain.Store, error)
	ListServices(ctx context.Context, storeID string, activeOnly bool) ([]domain.Service, error)
	DeleteStoreCascade(ctx context.Context, storeID string) (repository.CascadeCounts, error)
}
