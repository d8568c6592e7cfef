package reminder

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Sweeper drives recurring sweeps. It is started on boot and stops when
// its context is cancelled; there are no package-level timers.
type Sweeper struct {
	service  *Service
	interval time.Duration
}

func NewSweeper(service *Service, interval time.Duration) *Sweeper {
	return &Sweeper{service: service, interval: interval}
}

// Run blocks until ctx is cancelled. Runs never overlap: ticks are
// consumed sequentially and Sweep itself skips when one is in flight.
func (w *Sweeper) Run(ctx context.Context) {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			logrus.Info("reminder sweeper stopped")
			return
		case <-t.C:
			w.sweep(ctx)
		}
	}
}

func (w *Sweeper) sweep(ctx context.Context) {
	sent, err := w.service.Sweep(ctx)
	if err != nil {
		logrus.WithError(err).Error("reminder sweep failed")
		return
	}
	if sent > 0 {
		logrus.WithField("sent", sent).Info("reminder sweep completed")
	}
}
