package main

import (
	"context"
	"log/slog"
	"os"

	"sahara/config"
	"sahara/internal/delivery"
	"sahara/internal/delivery/api"
	"sahara/internal/delivery/api/middleware"
	"sahara/internal/delivery/api/router/handler"
	"sahara/internal/infra/auth"
	"sahara/internal/infra/companion"
	logs "sahara/internal/infra/log"
	"sahara/internal/infra/persistence"
	"sahara/internal/infra/qrcode"
	"sahara/internal/infra/ratelimit"
	"sahara/internal/usecase/impl"

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
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		persistence.New,
		ratelimit.NewRedisClient,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeServiceFromConfig,
			companion.NewChatService,
			companion.NewVisionService,
			ratelimit.NewLoginRateLimiter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewContactService,
			impl.NewReminderService,
			impl.NewCompanionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewContactHandler,
			handler.NewReminderHandler,
			handler.NewCompanionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
