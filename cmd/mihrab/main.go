package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"mihrab/config"
	"mihrab/internal/delivery"
	"mihrab/internal/delivery/http"
	"mihrab/internal/delivery/http/middleware"
	"mihrab/internal/delivery/http/router/handler"
	"mihrab/internal/delivery/scheduler"
	"mihrab/internal/domain/service"
	"mihrab/internal/infra/geocode"
	logs "mihrab/internal/infra/log"
	"mihrab/internal/infra/notification"
	"mihrab/internal/infra/persistence/postgres"
	"mihrab/internal/infra/prayer"
	"mihrab/internal/infra/quran"
	"mihrab/internal/usecase"
	"mihrab/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			warmQuranCache,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		newSchedulerConfig,
		logs.New,
		context.Background,
		postgres.New,
	)
}

// newSchedulerConfig exposes the scheduler section so use cases depend on
// just the cadence settings.
func newSchedulerConfig(cfg *config.Config) *config.SchedulerConfig {
	return cfg.Scheduler
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDeviceRepository,
			postgres.NewScheduleRepository,
			postgres.NewPrayerCacheRepository,
			postgres.NewQuranRepository,
			postgres.NewEventRepository,
			postgres.NewLocationCacheRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newFirebaseGateway,
			prayer.NewAladhanSource,
			geocode.NewLocationIQGeocoder,
			quran.NewAlquranSource,
		),
	)
}

// newFirebaseGateway creates the FCM gateway with dependency injection
func newFirebaseGateway(ctx context.Context, cfg *config.Config) (service.NotificationGateway, error) {
	if cfg.Firebase == nil {
		return nil, fmt.Errorf("firebase configuration is required")
	}

	gateway, err := notification.NewFirebaseGateway(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase gateway: %w", err)
	}

	return gateway, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDeviceService,
			impl.NewPrayerService,
			impl.NewPrayerSchedulerService,
			impl.NewNotificationService,
			impl.NewQuranService,
			impl.NewEventService,
			impl.NewLocationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDeviceHandler,
			handler.NewPrayerHandler,
			handler.NewQuranHandler,
			handler.NewEventHandler,
			handler.NewNotificationHandler,
			handler.NewLocationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// warmQuranCache seeds the local Quran cache on startup. A failure is fatal:
// the text endpoints must never serve a partial Quran.
func warmQuranCache(ctx context.Context, quranUC usecase.QuranUsecase) error {
	return quranUC.EnsureCache(ctx)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
