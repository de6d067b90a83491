package components

import (
	"table-booking/internal/handler"
	"table-booking/internal/handler/api"
	"table-booking/internal/handler/middleware"
	"table-booking/internal/handler/validation"
	"table-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		func(s *jwt.Service) middleware.ManageTokenValidator { return s },
		middleware.NewManageAuthMiddleware,
	),
	fx.Invoke(
		validation.Register,
		handler.NewRouter,
	),
)
