package bootstrap

import (
	"context"
	"log/slog"

	"table-booking/internal/infra/messaging"
	"table-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewPublisher,
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.MessagingConfig) (messaging.Publisher, error) {
	pub, err := messaging.NewPublisher(cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("messaging publisher initialized", "driver", cfg.Driver)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
