package repository

import (
	"context"
	"time"

	"bookline/internal/domain"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	StoreID         string    `gorm:"column:store_id;index:idx_reservations_store_start,priority:1"`
	ServiceID       string    `gorm:"column:service_id"`
	ServiceName     string    `gorm:"column:service_name"`
	ServicePrice    float64   `gorm:"column:service_price"`
	CustomerName    string    `gorm:"column:customer_name"`
	CustomerPhone   string    `gorm:"column:customer_phone"`
	CustomerEmail   *string   `gorm:"column:customer_email"`
	StartTime       time.Time `gorm:"column:start_time;index:idx_reservations_store_start,priority:2"`
	EndTime         time.Time `gorm:"column:end_time"`
	DurationMinutes int       `gorm:"column:duration_minutes"`
	Status          string    `gorm:"column:status"`
	Notes           *string   `gorm:"column:notes"`
	ReminderSent    bool      `gorm:"column:reminder_sent"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) *domain.Reservation {
	var email, notes string
	if m.CustomerEmail != nil {
		email = *m.CustomerEmail
	}
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Reservation{
		ID:              m.ID,
		StoreID:         m.StoreID,
		ServiceID:       m.ServiceID,
		ServiceName:     m.ServiceName,
		ServicePrice:    m.ServicePrice,
		CustomerName:    m.CustomerName,
		CustomerPhone:   m.CustomerPhone,
		CustomerEmail:   email,
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		DurationMinutes: m.DurationMinutes,
		Status:          domain.ReservationStatus(m.Status),
		Notes:           notes,
		ReminderSent:    m.ReminderSent,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toReservationModel(r *domain.Reservation) reservationModel {
	var email, notes *string
	if r.CustomerEmail != "" {
		v := r.CustomerEmail
		email = &v
	}
	if r.Notes != "" {
		v := r.Notes
		notes = &v
	}

	return reservationModel{
		ID:              r.ID,
		StoreID:         r.StoreID,
		ServiceID:       r.ServiceID,
		ServiceName:     r.ServiceName,
		ServicePrice:    r.ServicePrice,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerEmail:   email,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		DurationMinutes: r.DurationMinutes,
		Status:          string(r.Status),
		Notes:           notes,
		ReminderSent:    r.ReminderSent,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(res)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*res = *toDomainReservation(m)
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	var m reservationModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservation(m), nil
}

// HasConflict is the authoritative overlap check. Intervals are half-open:
// a reservation ending exactly at the candidate start does not count.
func (r *ReservationRepository) HasConflict(ctx context.Context, storeID string, start, end time.Time, excludeID string) (bool, error) {
	var cnt int64
	q := `
SELECT COUNT(1)
FROM reservations
WHERE store_id = ?
  AND status <> 'cancelled'
  AND start_time < ?
  AND end_time > ?
  AND id <> ?
`
	tx := r.db.WithContext(ctx).Raw(q, storeID, end, start, excludeID).Scan(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// ListForStore returns a store's reservations sorted by start time. day, if
// non-nil, restricts to the calendar day containing it (in its location).
func (r *ReservationRepository) ListForStore(ctx context.Context, storeID string, day *time.Time, status string) ([]domain.Reservation, error) {
	q := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("store_id = ?", storeID)

	if day != nil {
		from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		q = q.Where("start_time >= ? AND start_time < ?", from, from.Add(24*time.Hour))
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var rows []reservationModel
	if err := q.Order("start_time ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DueForReminder selects reservations starting within (from, to] that still
// need a reminder. The predicate mirrors the sweep rules: active status,
// flag unset, an email to send to. limit bounds per-run work.
func (r *ReservationRepository) DueForReminder(ctx context.Context, from, to time.Time, limit int) ([]domain.Reservation, error) {
	var rows []reservationModel
	err := r.db.WithContext(ctx).
		Where("start_time > ? AND start_time <= ?", from, to).
		Where("status IN ?", []string{string(domain.ReservationPending), string(domain.ReservationConfirmed)}).
		Where("reminder_sent = ?", false).
		Where("customer_email IS NOT NULL AND customer_email <> ''").
		Order("start_time ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

// MarkReminderSent flips the write-once flag. It never goes back to false.
func (r *ReservationRepository) MarkReminderSent(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("id = ? AND reminder_sent = ?", id, false).
		Updates(map[string]any{"reminder_sent": true, "updated_at": time.Now()})
	return tx.Error
}

// DeleteByStoreID is the bulk removal primitive used by store deletion.
func (r *ReservationRepository) DeleteByStoreID(ctx context.Context, storeID string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("store_id = ?", storeID).Delete(&reservationModel{})
	return tx.RowsAffected, tx.Error
}
