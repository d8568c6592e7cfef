package domain

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Valid reports whether s is one of the known status values.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCompleted, ReservationCancelled:
		return true
	}
	return false
}

// Active reservations are the ones that occupy their slot. A cancelled
// reservation frees the slot; no separate release step exists.
func (s ReservationStatus) Active() bool {
	return s != ReservationCancelled
}

type Reservation struct {
	ID        string `json:"id"`
	StoreID   string `json:"store_id" validate:"required"`
	ServiceID string `json:"service_id" validate:"required"`

	// Snapshot of the service at booking time. Later edits to the
	// catalog must not rewrite history.
	ServiceName  string  `json:"service_name"`
	ServicePrice float64 `json:"service_price"`

	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerPhone string `json:"customer_phone" validate:"required"`
	CustomerEmail string `json:"customer_email,omitempty"`

	StartTime       time.Time `json:"start_time" validate:"required"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`

	Status       ReservationStatus `json:"status"`
	Notes        string            `json:"notes,omitempty" gorm:"type:text"`
	ReminderSent bool              `json:"reminder_sent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SlotEnd derives the end of a slot from its start and the service duration.
// The end is stored on the reservation, never recomputed on read.
func SlotEnd(start time.Time, durationMinutes int) time.Time {
	return start.Add(time.Duration(durationMinutes) * time.Minute)
}

// ValidSlot reports whether a candidate interval is well formed.
func ValidSlot(start time.Time, durationMinutes int) bool {
	return !start.IsZero() && durationMinutes > 0
}

// SlotsOverlap is the single definition of overlap in the system: two
// half-open intervals [s1,e1) and [s2,e2) overlap iff s1 < e2 && s2 < e1.
// Back-to-back slots (e1 == s2) do not overlap.
func SlotsOverlap(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}
