package catalog

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"bookline/internal/domain"
)

type Service struct {
	stores StoreRepository
}

func NewService(stores StoreRepository) *Service {
	return &Service{stores: stores}
}

func (s *Service) GetStorePage(ctx context.Context, storeID string) (*StorePage, error) {
	store, err := s.stores.GetStore(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	services, err := s.stores.ListServices(ctx, store.ID, true)
	if err != nil {
		return nil, err
	}

	return &StorePage{Store: store, Services: services}, nil
}

func (s *Service) ListServices(ctx context.Context, storeID string) ([]domain.Service, error) {
	if _, err := s.stores.GetStore(ctx, storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.stores.ListServices(ctx, storeID, true)
}

// DeleteStore removes a store and all of its services, customers, reviews
// and reservations in one transaction. Children are deleted before the
// store itself so nothing is left referencing a gone store.
func (s *Service) DeleteStore(ctx context.Context, actorID, actorRole, storeID string) error {
	store, err := s.stores.GetStore(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if actorRole != domain.RoleAdmin && actorID != store.OwnerID {
		return ErrForbidden
	}

	counts, err := s.stores.DeleteStoreCascade(ctx, store.ID)
	if err != nil {
		logrus.WithError(err).WithField("store_id", store.ID).Error("store cascade delete failed, rolled back")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"store_id":     store.ID,
		"reviews":      counts.Reviews,
		"reservations": counts.Reservations,
		"customers":    counts.Customers,
		"services":     counts.Services,
	}).Info("store deleted")

	return nil
}
