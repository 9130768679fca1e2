package components

import (
	"loginhub/internal/pkg/clock"
	"loginhub/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewAuthorizer,
		usecase.NewProvisioningUseCase,
	),
)
