package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"bookline/internal/domain"
	"bookline/internal/repository"
)

type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) GetStore(ctx context.Context, id string) (*domain.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Store), args.Error(1)
}

func (m *MockStoreRepository) ListServices(ctx context.Context, storeID string, activeOnly bool) ([]domain.Service, error) {
	args := m.Called(ctx, storeID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockStoreRepository) DeleteStoreCascade(ctx context.Context, storeID string) (repository.CascadeCounts, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).(repository.CascadeCounts), args.Error(1)
}

func TestService_GetStorePage(t *testing.T) {
	mockStores := new(MockStoreRepository)

	store := &domain.Store{ID: "store-1", OwnerID: "owner-1", Name: "Shear Genius"}
	services := []domain.Service{{ID: "svc-1", Name: "Haircut", DurationMinutes: 60, Active: true}}

	mockStores.On("GetStore", mock.Anything, "store-1").Return(store, nil)
	mockStores.On("ListServices", mock.Anything, "store-1", true).Return(services, nil)

	service := NewService(mockStores)

	page, err := service.GetStorePage(context.Background(), "store-1")

	assert.NoError(t, err)
	assert.Equal(t, "Shear Genius", page.Store.Name)
	assert.Len(t, page.Services, 1)
}

func TestService_GetStorePage_NotFound(t *testing.T) {
	mockStores := new(MockStoreRepository)
	mockStores.On("GetStore", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockStores)

	_, err := service.GetStorePage(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_DeleteStore_OwnerAllowed(t *testing.T) {
	mockStores := new(MockStoreRepository)

	store := &domain.Store{ID: "store-1", OwnerID: "owner-1"}
	mockStores.On("GetStore", mock.Anything, "store-1").Return(store, nil)
	mockStores.On("DeleteStoreCascade", mock.Anything, "store-1").
		Return(repository.CascadeCounts{Reservations: 4, Services: 2}, nil)

	service := NewService(mockStores)

	err := service.DeleteStore(context.Background(), "owner-1", domain.RoleStoreOwner, "store-1")

	assert.NoError(t, err)
	mockStores.AssertCalled(t, "DeleteStoreCascade", mock.Anything, "store-1")
}

func TestService_DeleteStore_NonOwnerForbidden(t *testing.T) {
	mockStores := new(MockStoreRepository)

	store := &domain.Store{ID: "store-1", OwnerID: "owner-1"}
	mockStores.On("GetStore", mock.Anything, "store-1").Return(store, nil)

	service := NewService(mockStores)

	err := service.DeleteStore(context.Background(), "intruder", domain.RoleStoreOwner, "store-1")

	assert.ErrorIs(t, err, ErrForbidden)
	mockStores.AssertNotCalled(t, "DeleteStoreCascade", mock.Anything, mock.Anything)
}

func TestService_DeleteStore_AdminAllowed(t *testing.T) {
	mockStores := new(MockStoreRepository)

	store := &domain.Store{ID: "store-1", OwnerID: "owner-1"}
	mockStores.On("GetStore", mock.Anything, "store-1").Return(store, nil)
	mockStores.On("DeleteStoreCascade", mock.Anything, "store-1").
		Return(repository.CascadeCounts{}, nil)

	service := NewService(mockStores)

	err := service.DeleteStore(context.Background(), "admin-1", domain.RoleAdmin, "store-1")

	assert.NoError(t, err)
}
