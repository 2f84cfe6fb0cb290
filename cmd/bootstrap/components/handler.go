package components

import (
	"host-pricing/internal/handler"
	"host-pricing/internal/handler/api"
	"host-pricing/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPricingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
