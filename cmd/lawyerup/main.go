package main

import (
	"context"
	"log/slog"
	"os"

	"lawyerup/config"
	"lawyerup/internal/delivery"
	"lawyerup/internal/delivery/api"
	apimiddleware "lawyerup/internal/delivery/api/middleware"
	"lawyerup/internal/delivery/api/router/handler"
	"lawyerup/internal/delivery/worker"
	workerhandler "lawyerup/internal/delivery/worker/handler"
	"lawyerup/internal/infra/assistant"
	"lawyerup/internal/infra/auth"
	logs "lawyerup/internal/infra/log"
	"lawyerup/internal/infra/notification"
	"lawyerup/internal/infra/persistence/memory"
	"lawyerup/internal/infra/pubsub"
	"lawyerup/internal/infra/qrcode"
	"lawyerup/internal/infra/realtime"
	"lawyerup/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			memory.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewTransactionManager,
			memory.NewUserRepository,
			memory.NewRequestRepository,
			memory.NewCaseRepository,
			memory.NewChatRepository,
			memory.NewPostRepository,
			memory.NewNotificationRepository,
			memory.NewNewsRepository,
			memory.NewBotTranscriptRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			assistant.NewLegalAssistant,
			notification.NewFirebaseService,
			notification.NewNotificationSink,
			realtime.NewHub,
			realtime.AsPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewDirectoryService,
			impl.NewRequestService,
			impl.NewCaseService,
			impl.NewChatService,
			impl.NewFeedService,
			impl.NewNotificationService,
			impl.NewAssistantService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewProfileHandler,
			handler.NewDirectoryHandler,
			handler.NewRequestHandler,
			handler.NewCaseHandler,
			handler.NewChatHandler,
			handler.NewFeedHandler,
			handler.NewNotificationHandler,
			handler.NewAssistantHandler,
			handler.NewStreamHandler,
			workerhandler.NewNewsJob,
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
			fx.Annotate(
				worker.NewServer,
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
