package main

import (
	"context"
	"log/slog"
	"os"

	"petcare/config"
	"petcare/internal/delivery"
	"petcare/internal/delivery/http"
	httpmiddleware "petcare/internal/delivery/http/middleware"
	"petcare/internal/delivery/http/router/handler"
	deliverymiddleware "petcare/internal/delivery/middleware"
	"petcare/internal/infra/auth"
	logs "petcare/internal/infra/log"
	"petcare/internal/infra/persistence/postgres"
	"petcare/internal/usecase/impl"

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPetRepository,
			postgres.NewUserPetRepository,
			postgres.NewAppointmentRepository,
			postgres.NewHealthRecordRepository,
			postgres.NewDiscoveryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPetService,
			impl.NewUserPetService,
			impl.NewAppointmentService,
			impl.NewHealthRecordService,
			impl.NewDiscoveryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			deliverymiddleware.NewRequestIDMiddleware,
			deliverymiddleware.NewLoggerMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPetHandler,
			handler.NewUserPetHandler,
			handler.NewAppointmentHandler,
			handler.NewHealthRecordHandler,
			handler.NewDiscoveryHandler,
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
		),
	)
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
