package components

import (
	"loginhub/internal/handler"
	"loginhub/internal/handler/api"
	"loginhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCompanyHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
		middleware.NewAdminMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
