package reminder

import (
	"context"
	"time"

	"bookline/internal/domain"
)

// ReservationSource selects reminder candidates and records sends.
type ReservationSource interface {
	DueForReminder(ctx context.Context, from, to time.Time, limit int) ([]domain.Reservation, error)
	MarkReminderSent(ctx context.Context, id string) error
}

// StoreSource resolves the store whose contact details go into the email.
type StoreSource interface {
	GetStore(ctx context.Context, id string) (*domain.Store, error)
}

// Mailer is the outbound notification transport.
type Mailer interface {
	SendReminder(ctx context.Context, r domain.Reservation, store domain.Store) error
}
