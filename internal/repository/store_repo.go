package repository

import (
	"context"
	"time"

	"bookline/internal/domain"

	"gorm.io/gorm"
)

type StoreRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

type storeModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	OwnerID     string    `gorm:"column:owner_id;index"`
	Name        string    `gorm:"column:name"`
	Description *string   `gorm:"column:description"`
	Address     *string   `gorm:"column:address"`
	City        *string   `gorm:"column:city"`
	Phone       *string   `gorm:"column:phone"`
	Email       *string   `gorm:"column:email"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (storeModel) TableName() string { return "stores" }

type serviceModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	StoreID         string    `gorm:"column:store_id;index"`
	Name            string    `gorm:"column:name"`
	Description     *string   `gorm:"column:description"`
	Price           float64   `gorm:"column:price"`
	DurationMinutes int       `gorm:"column:duration_minutes"`
	Active          bool      `gorm:"column:active"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (serviceModel) TableName() string { return "services" }

type customerModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	StoreID   string    `gorm:"column:store_id;index"`
	Name      string    `gorm:"column:name"`
	Phone     *string   `gorm:"column:phone"`
	Email     *string   `gorm:"column:email"`
	Notes     *string   `gorm:"column:notes"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (customerModel) TableName() string { return "customers" }

type reviewModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	StoreID       string    `gorm:"column:store_id;index"`
	ReservationID *string   `gorm:"column:reservation_id"`
	CustomerName  string    `gorm:"column:customer_name"`
	Rating        int       `gorm:"column:rating"`
	Comment       *string   `gorm:"column:comment"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toDomainStore(m storeModel) *domain.Store {
	return &domain.Store{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: strOrEmpty(m.Description),
		Address:     strOrEmpty(m.Address),
		City:        strOrEmpty(m.City),
		Phone:       strOrEmpty(m.Phone),
		Email:       strOrEmpty(m.Email),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toDomainService(m serviceModel) *domain.Service {
	return &domain.Service{
		ID:              m.ID,
		StoreID:         m.StoreID,
		Name:            m.Name,
		Description:     strOrEmpty(m.Description),
		Price:           m.Price,
		DurationMinutes: m.DurationMinutes,
		Active:          m.Active,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (r *StoreRepository) CreateStore(ctx context.Context, s *domain.Store) error {
	m := storeModel{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		Name:        s.Name,
		Description: strOrNil(s.Description),
		Address:     strOrNil(s.Address),
		City:        strOrNil(s.City),
		Phone:       strOrNil(s.Phone),
		Email:       strOrNil(s.Email),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainStore(m)
	return nil
}

func (r *StoreRepository) CreateService(ctx context.Context, s *domain.Service) error {
	m := serviceModel{
		ID:              s.ID,
		StoreID:         s.StoreID,
		Name:            s.Name,
		Description:     strOrNil(s.Description),
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Active:          s.Active,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainService(m)
	return nil
}

func (r *StoreRepository) GetStore(ctx context.Context, id string) (*domain.Store, error) {
	var m storeModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return toDomainStore(m), nil
}

// GetService resolves a service within its store. A service belonging to a
// different store is treated as absent.
func (r *StoreRepository) GetService(ctx context.Context, storeID, serviceID string) (*domain.Service, error) {
	var m serviceModel
	err := r.db.WithContext(ctx).
		First(&m, "id = ? AND store_id = ?", serviceID, storeID).Error
	if err != nil {
		return nil, err
	}
	return toDomainService(m), nil
}

func (r *StoreRepository) ListServices(ctx context.Context, storeID string, activeOnly bool) ([]domain.Service, error) {
	q := r.db.WithContext(ctx).Model(&serviceModel{}).Where("store_id = ?", storeID)
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var rows []serviceModel
	if err := q.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Service, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainService(m))
	}
	return out, nil
}

type CascadeCounts struct {
	Reviews      int64
	Reservations int64
	Customers    int64
	Services     int64
}

// DeleteStoreCascade removes a store and everything hanging off it in a
// single transaction. Children go first so no reservation can be left
// pointing at a deleted store.
func (r *StoreRepository) DeleteStoreCascade(ctx context.Context, storeID string) (CascadeCounts, error) {
	var counts CascadeCounts
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("store_id = ?", storeID).Delete(&reviewModel{})
		if res.Error != nil {
			return res.Error
		}
		counts.Reviews = res.RowsAffected

		res = tx.Where("store_id = ?", storeID).Delete(&reservationModel{})
		if res.Error != nil {
			return res.Error
		}
		counts.Reservations = res.RowsAffected

		res = tx.Where("store_id = ?", storeID).Delete(&customerModel{})
		if res.Error != nil {
			return res.Error
		}
		counts.Customers = res.RowsAffected

		res = tx.Where("store_id = ?", storeID).Delete(&serviceModel{})
		if res.Error != nil {
			return res.Error
		}
		counts.Services = res.RowsAffected

		return tx.Where("id = ?", storeID).Delete(&storeModel{}).Error
	})
	return counts, err
}
