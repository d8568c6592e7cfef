package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"bookline/internal/domain"
	"bookline/internal/pkg/storelock"
	"bookline/internal/pkg/validator"
)

// pgExclusionViolation is raised by the Postgres range exclusion constraint
// when two overlapping inserts race past the in-process lock (multi-node
// deployments share no mutex).
const pgExclusionViolation = "23P01"

type Service struct {
	reservations  ReservationRepository
	catalog       CatalogRepository
	locks         *storelock.Map
	defaultStatus domain.ReservationStatus
}

func NewService(
	reservations ReservationRepository,
	catalog CatalogRepository,
	defaultStatus domain.ReservationStatus,
) *Service {
	if defaultStatus == "" {
		defaultStatus = domain.ReservationConfirmed
	}
	return &Service{
		reservations:  reservations,
		catalog:       catalog,
		locks:         storelock.New(),
		defaultStatus: defaultStatus,
	}
}

// CreateReservation books a slot on the store's timeline. The service's
// name and price are copied onto the reservation so later catalog edits
// never rewrite booked history. Conflicts leave the store untouched.
func (s *Service) CreateReservation(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	if req.CustomerName == "" || req.CustomerPhone == "" || req.StartTime.IsZero() {
		return nil, ErrValidation
	}

	store, err := s.catalog.GetStore(ctx, req.StoreID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	svc, err := s.catalog.GetService(ctx, store.ID, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !domain.ValidSlot(req.StartTime, svc.DurationMinutes) {
		return nil, ErrValidation
	}
	end := domain.SlotEnd(req.StartTime, svc.DurationMinutes)

	// Serialize check-then-insert per store, otherwise two overlapping
	// requests can both pass the conflict check before either write lands.
	mu := s.locks.Get(store.ID)
	mu.Lock()
	defer mu.Unlock()

	conflict, err := s.reservations.HasConflict(ctx, store.ID, req.StartTime, end, "")
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrSlotTaken
	}

	r := &domain.Reservation{
		ID:              uuid.NewString(),
		StoreID:         store.ID,
		ServiceID:       svc.ID,
		ServiceName:     svc.Name,
		ServicePrice:    svc.Price,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		StartTime:       req.StartTime,
		EndTime:         end,
		DurationMinutes: svc.DurationMinutes,
		Status:          s.defaultStatus,
		Notes:           req.Notes,
		ReminderSent:    false,
	}

	if fields := validator.Validate(r); fields != nil {
		return nil, ErrValidation
	}

	if err := s.reservations.Create(ctx, r); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	return r, nil
}

// ListForStore returns a store's reservations for the owner's calendar,
// optionally narrowed to one day (YYYY-MM-DD) and/or one status.
func (s *Service) ListForStore(ctx context.Context, actor Actor, storeID, dateStr, status string) ([]domain.Reservation, error) {
	store, err := s.catalog.GetStore(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := authorize(actor, store); err != nil {
		return nil, err
	}

	var day *time.Time
	if dateStr != "" {
		d, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, ErrValidation
		}
		day = &d
	}
	if status != "" && !domain.ReservationStatus(status).Valid() {
		return nil, ErrValidation
	}

	return s.reservations.ListForStore(ctx, store.ID, day, status)
}

// UpdateStatus moves a reservation to a new status. Any status may follow
// any other; the only gate is ownership. Cancelling is what frees the slot,
// conflict checks ignore cancelled reservations.
func (s *Service) UpdateStatus(ctx context.Context, actor Actor, reservationID string, status domain.ReservationStatus) (*domain.Reservation, error) {
	if !status.Valid() {
		return nil, ErrValidation
	}

	r, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	store, err := s.catalog.GetStore(ctx, r.StoreID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := authorize(actor, store); err != nil {
		return nil, err
	}

	if err := s.reservations.UpdateStatus(ctx, r.ID, status); err != nil {
		return nil, err
	}

	return s.reservations.GetByID(ctx, r.ID)
}

// DeleteAllForStore is the bulk primitive the store-deletion flow invokes.
func (s *Service) DeleteAllForStore(ctx context.Context, storeID string) (int64, error) {
	return s.reservations.DeleteByStoreID(ctx, storeID)
}

func authorize(actor Actor, store *domain.Store) error {
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	if actor.UserID != "" && actor.UserID == store.OwnerID {
		return nil
	}
	return ErrForbidden
}
