package reminder

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Service struct {
	reservations ReservationSource
	stores       StoreSource
	mailer       Mailer

	window    time.Duration
	batchSize int

	now func() time.Time

	running sync.Mutex
}

func NewService(reservations ReservationSource, stores StoreSource, mailer Mailer, window time.Duration, batchSize int) *Service {
	return &Service{
		reservations: reservations,
		stores:       stores,
		mailer:       mailer,
		window:       window,
		batchSize:    batchSize,
		now:          time.Now,
	}
}

// Sweep runs one reminder pass: select reservations starting within the
// window that have not been reminded yet, email each customer, and flip
// reminder_sent per reservation before touching the next one. A failed
// send leaves the flag unset, so the next pass retries it; a successful
// send is never repeated because the flag is part of the selection. Only
// one sweep runs at a time, a concurrent call returns immediately.
func (s *Service) Sweep(ctx context.Context) (sent int, err error) {
	if !s.running.TryLock() {
		logrus.Debug("reminder sweep already running, skipping")
		return 0, nil
	}
	defer s.running.Unlock()

	now := s.now()
	due, err := s.reservations.DueForReminder(ctx, now, now.Add(s.window), s.batchSize)
	if err != nil {
		return 0, err
	}

	for _, r := range due {
		log := logrus.WithFields(logrus.Fields{
			"reservation_id": r.ID,
			"store_id":       r.StoreID,
			"start_time":     r.StartTime,
		})

		store, err := s.stores.GetStore(ctx, r.StoreID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn("store gone, skipping reminder")
				continue
			}
			log.WithError(err).Error("store lookup failed, skipping reminder")
			continue
		}

		if err := s.mailer.SendReminder(ctx, r, *store); err != nil {
			// eligible again on the next pass
			log.WithError(err).Error("reminder dispatch failed")
			continue
		}

		if err := s.reservations.MarkReminderSent(ctx, r.ID); err != nil {
			// The email went out but the flag write failed; the next pass
			// would send again. Loud on purpose.
			log.WithError(err).Error("reminder sent but flag write failed, duplicate possible")
			continue
		}

		sent++
		log.Info("reminder sent")
	}

	return sent, nil
}
