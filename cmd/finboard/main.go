package main

import (
	"context"
	"log/slog"
	"os"

	"finboard/config"
	"finboard/internal/delivery"
	"finboard/internal/delivery/http"
	"finboard/internal/delivery/http/middleware"
	"finboard/internal/delivery/http/router/handler"
	"finboard/internal/gateway"
	"finboard/internal/infra/credstore"
	logs "finboard/internal/infra/log"
	"finboard/internal/infra/remote"
	"finboard/internal/infra/token"
	"finboard/internal/usecase"
	"finboard/internal/usecase/impl"

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
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			registerSessionHooks,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		credstore.New,
		token.NewInspector,
		gateway.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			remote.NewAuthRepository,
			remote.NewAccountRepository,
			remote.NewTransactionRepository,
			remote.NewBankRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewAccountService,
			impl.NewTransactionService,
			impl.NewBankService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAccountHandler,
			handler.NewTransactionHandler,
			handler.NewBankHandler,
			handler.NewDashboardHandler,
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

// registerSessionHooks ties the gateway and the session together at startup:
// a rejected credential drops the in-memory identity, and the one startup
// check runs before the server accepts traffic.
func registerSessionHooks(lc fx.Lifecycle, gw *gateway.Gateway, session usecase.SessionUsecase) {
	gw.OnAuthRejected(session.HandleAuthRejection)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			session.Initialize(ctx)

			return nil
		},
	})
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
