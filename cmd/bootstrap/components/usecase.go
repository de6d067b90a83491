package components

import (
	"context"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/infra/client"
	"table-booking/internal/infra/messaging"
	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/config"
	"table-booking/internal/pkg/jwt"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/postcommit"
	"table-booking/internal/usecase/queries"
	"table-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecasePortsModule,
	usecasePostCommitModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewCodeSource,
)

var usecasePortsModule = fx.Module("usecase/ports",
	fx.Provide(
		fx.Annotate(
			client.NewSlotClient,
			fx.As(new(commands.SlotOracle)),
		),
		func(s *jwt.Service) commands.ManageTokenIssuer { return s },
		commands.NewConfirmationIssuer,
	),
)

var usecasePostCommitModule = fx.Module("usecase/postcommit",
	fx.Provide(
		func(p messaging.Publisher) postcommit.Publisher { return p },
		postcommit.NewRenderer,
		fx.Annotate(
			func(p postcommit.Publisher, cfg config.MessagingConfig) *postcommit.MessagingDispatcher {
				return postcommit.NewMessagingDispatcher(p, cfg.EmailSubject)
			},
			fx.As(new(postcommit.Dispatcher)),
		),
		NewPipeline,
		func(p *postcommit.Pipeline) commands.AfterCommitHook { return p },
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
	),
)

// NewPipeline drains in-flight side effects on shutdown, after the HTTP server stops.
func NewPipeline(
	lc fx.Lifecycle,
	uow shared.UnitOfWork,
	dispatcher postcommit.Dispatcher,
	publisher postcommit.Publisher,
	renderer *postcommit.Renderer,
	clk clock.Clock,
	cfg config.Config,
) *postcommit.Pipeline {
	p := postcommit.NewPipeline(uow, dispatcher, publisher, renderer, clk, postcommit.Config{
		SenderAddress: cfg.Notification.SenderAddress,
		EventSubject:  cfg.Messaging.EventSubject,
		Timeout:       cfg.Notification.PostCommitTimeout,
	})
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return p.Drain(ctx)
		},
	})
	return p
}
