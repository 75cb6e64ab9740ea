// Package worker runs the background booking reconciliation schedule.
package worker

import (
	"context"
	"time"

	"booking-scheduler-backend/internal/logger"
	"booking-scheduler-backend/internal/provider"
	"booking-scheduler-backend/internal/repository"

	"github.com/robfig/cron/v3"
)

const syncTimeout = 2 * time.Minute

// SyncWorker periodically reconciles bookings from every registered
// backend into local storage
type SyncWorker struct {
	cron     *cron.Cron
	registry *provider.Registry
	listings *repository.ListingRepository
	log      *logger.Logger
}

// NewSyncWorker creates a sync worker
func NewSyncWorker(registry *provider.Registry, listings *repository.ListingRepository, log *logger.Logger) *SyncWorker {
	return &SyncWorker{
		cron:     cron.New(),
		registry: registry,
		listings: listings,
		log:      log,
	}
}

// Start schedules the sync run. schedule accepts cron expressions and
// @every shorthand.
func (w *SyncWorker) Start(schedule string) error {
	if _, err := w.cron.AddFunc(schedule, w.runOnce); err != nil {
		return err
	}
	w.cron.Start()
	w.log.WithField("schedule", schedule).Info("Booking sync worker started")
	return nil
}

// Stop halts the schedule and waits for a running pass to finish
func (w *SyncWorker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
	w.log.Info("Booking sync worker stopped")
}

// runOnce syncs every listing against every backend. Failures are
// logged per backend so one bad backend cannot stall the rest.
func (w *SyncWorker) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	listings, err := w.listings.GetActive(ctx)
	if err != nil {
		w.log.WithError(err).Error("Sync pass failed to list listings")
		return
	}

	for _, p := range w.registry.All() {
		synced, failed := 0, 0
		for i := range listings {
			result, err := p.SyncBookings(ctx, listings[i].ID)
			if err != nil {
				w.log.WithError(err).WithField("backend", p.Backend()).
					WithField("listing_id", listings[i].ID).
					Error("Booking sync failed for listing")
				failed++
				continue
			}
			synced += result.Synced
			failed += result.Failed
		}
		w.log.WithFields(map[string]interface{}{
			"backend": p.Backend(),
			"synced":  synced,
			"failed":  failed,
		}).Info("Booking sync pass completed")
	}
}
