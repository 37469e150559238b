// Package scheduler runs the background notification jobs: daily reminder
// computation, due-notification sweeps, and retention cleanups.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"mihrab/config"
	"mihrab/internal/delivery"
	"mihrab/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultComputeInterval     = 1 * time.Hour
	defaultSweepInterval       = 30 * time.Second
	defaultPurgeInterval       = 12 * time.Hour
	defaultDevicePurgeInterval = 24 * time.Hour
)

// SchedulerParams holds dependencies for the scheduler delivery, injected by Fx.
type SchedulerParams struct {
	fx.In
	fx.Lifecycle

	Config      *config.Config
	Logger      *slog.Logger
	SchedulerUC usecase.SchedulerUsecase
	PrayerUC    usecase.PrayerUsecase
	DeviceUC    usecase.DeviceUsecase
}

type schedulerServer struct {
	logger      *slog.Logger
	schedulerUC usecase.SchedulerUsecase
	prayerUC    usecase.PrayerUsecase
	deviceUC    usecase.DeviceUsecase

	computeInterval     time.Duration
	sweepInterval       time.Duration
	purgeInterval       time.Duration
	devicePurgeInterval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewServer creates the scheduler delivery.
func NewServer(params SchedulerParams) (delivery.Delivery, error) {
	s := &schedulerServer{
		logger:              params.Logger,
		schedulerUC:         params.SchedulerUC,
		prayerUC:            params.PrayerUC,
		deviceUC:            params.DeviceUC,
		computeInterval:     defaultComputeInterval,
		sweepInterval:       defaultSweepInterval,
		purgeInterval:       defaultPurgeInterval,
		devicePurgeInterval: defaultDevicePurgeInterval,
		done:                make(chan struct{}),
	}

	if cfg := params.Config.Scheduler; cfg != nil {
		if cfg.ComputeInterval > 0 {
			s.computeInterval = cfg.ComputeInterval
		}
		if cfg.SweepInterval > 0 {
			s.sweepInterval = cfg.SweepInterval
		}
		if cfg.PurgeInterval > 0 {
			s.purgeInterval = cfg.PurgeInterval
		}
		if cfg.DevicePurgeInterval > 0 {
			s.devicePurgeInterval = cfg.DevicePurgeInterval
		}
	}

	params.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve runs the job loops until the delivery is stopped. The first
// computation fires immediately so a restart never leaves the day's
// reminders missing until the next tick.
func (s *schedulerServer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	defer close(s.done)

	s.logger.Info("Starting notification scheduler",
		slog.Duration("computeInterval", s.computeInterval),
		slog.Duration("sweepInterval", s.sweepInterval))

	s.runCompute(ctx)

	computeTicker := time.NewTicker(s.computeInterval)
	defer computeTicker.Stop()
	sweepTicker := time.NewTicker(s.sweepInterval)
	defer sweepTicker.Stop()
	purgeTicker := time.NewTicker(s.purgeInterval)
	defer purgeTicker.Stop()
	devicePurgeTicker := time.NewTicker(s.devicePurgeInterval)
	defer devicePurgeTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Notification scheduler stopped")

			return nil
		case <-computeTicker.C:
			s.runCompute(ctx)
		case <-sweepTicker.C:
			s.runSweep(ctx)
		case <-purgeTicker.C:
			s.runPurge(ctx)
		case <-devicePurgeTicker.C:
			s.runDevicePurge(ctx)
		}
	}
}

func (s *schedulerServer) stop(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}

// runCompute recomputes today's reminders for every eligible device.
func (s *schedulerServer) runCompute(ctx context.Context) {
	scheduled, err := s.schedulerUC.ScheduleDaily(ctx)
	if err != nil {
		s.logger.Error("Daily reminder computation failed", slog.Any("error", err))

		return
	}

	s.logger.Info("Daily reminder computation finished", slog.Int("scheduled", scheduled))
}

// runSweep dispatches due reminders and broadcasts.
func (s *schedulerServer) runSweep(ctx context.Context) {
	if sent, err := s.schedulerUC.ProcessDuePrayerReminders(ctx); err != nil {
		s.logger.Error("Prayer reminder sweep failed", slog.Any("error", err))
	} else if sent > 0 {
		s.logger.Info("Prayer reminders dispatched", slog.Int("sent", sent))
	}

	if sent, err := s.schedulerUC.ProcessDueBroadcasts(ctx); err != nil {
		s.logger.Error("Broadcast sweep failed", slog.Any("error", err))
	} else if sent > 0 {
		s.logger.Info("Broadcasts dispatched", slog.Int("sent", sent))
	}
}

// runPurge applies the retention windows to sent reminders and stale prayer
// snapshots.
func (s *schedulerServer) runPurge(ctx context.Context) {
	if removed, err := s.schedulerUC.PurgeSentReminders(ctx); err != nil {
		s.logger.Error("Sent reminder purge failed", slog.Any("error", err))
	} else if removed > 0 {
		s.logger.Info("Sent reminders purged", slog.Int64("removed", removed))
	}

	if removed, err := s.prayerUC.PurgeStale(ctx); err != nil {
		s.logger.Error("Prayer cache purge failed", slog.Any("error", err))
	} else if removed > 0 {
		s.logger.Info("Stale prayer snapshots purged", slog.Int64("removed", removed))
	}
}

// runDevicePurge drops registrations with no recent activity.
func (s *schedulerServer) runDevicePurge(ctx context.Context) {
	removed, err := s.deviceUC.PurgeInactive(ctx)
	if err != nil {
		s.logger.Error("Inactive device purge failed", slog.Any("error", err))

		return
	}

	if removed > 0 {
		s.logger.Info("Inactive devices purged", slog.Int64("removed", removed))
	}
}
