package components

import (
	"loginhub/internal/infra/readstore"
	"loginhub/internal/infra/repository"
	"loginhub/internal/infra/uow"
	"loginhub/internal/usecase"
	"loginhub/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(usecase.UserReadStore)),
			fx.As(new(usecase.UserDirectory)),
		),
		fx.Annotate(
			readstore.NewCompanyReadStore,
			fx.As(new(usecase.CompanyReadStore)),
			fx.As(new(usecase.CompanyStatusReader)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(shared.UserRepository)),
		),
		fx.Annotate(
			repository.NewCompanyRepository,
			fx.As(new(shared.CompanyRepository)),
		),
	),
)
