package bootstrap

import (
	"table-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.BookingConfig { return cfg.Booking },
		func(cfg config.Config) config.SlotOracleConfig { return cfg.SlotOracle },
		func(cfg config.Config) config.MessagingConfig { return cfg.Messaging },
	),
)
