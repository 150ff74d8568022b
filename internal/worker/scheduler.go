package worker

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/SharanSapkota/arena-server/internal/guest"
	"github.com/SharanSapkota/arena-server/internal/payment"
)

const (
	pendingPaymentTTL = 24 * time.Hour
	guestSessionTTL   = 30 * 24 * time.Hour
)

// Worker runs periodic cleanup jobs.
type Worker struct {
	scheduler   gocron.Scheduler
	paymentRepo payment.PaymentRepository
	guestRepo   guest.GuestRepository
}

func New(paymentRepo payment.PaymentRepository, guestRepo guest.GuestRepository) (*Worker, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &Worker{scheduler: scheduler, paymentRepo: paymentRepo, guestRepo: guestRepo}, nil
}

// Start registers the cleanup jobs and starts the scheduler.
func (w *Worker) Start() error {
	if _, err := w.scheduler.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(w.expireStalePayments),
	); err != nil {
		return err
	}

	if _, err := w.scheduler.NewJob(
		gocron.DurationJob(24*time.Hour),
		gocron.NewTask(w.purgeOldGuests),
	); err != nil {
		return err
	}

	w.scheduler.Start()
	return nil
}

func (w *Worker) Stop() error {
	return w.scheduler.Shutdown()
}

func (w *Worker) expireStalePayments() {
	rows, err := w.paymentRepo.FailPendingOlderThan(time.Now().Add(-pendingPaymentTTL))
	if err != nil {
		log.Printf("expire stale payments: %v", err)
		return
	}
	if rows > 0 {
		log.Printf("marked %d stale pending payments as failed", rows)
	}
}

func (w *Worker) purgeOldGuests() {
	rows, err := w.guestRepo.DeleteGuestsOlderThan(time.Now().Add(-guestSessionTTL))
	if err != nil {
		log.Printf("purge old guests: %v", err)
		return
	}
	if rows > 0 {
		log.Printf("purged %d expired guest sessions", rows)
	}
}
