package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/servicebooking/internal/config"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(
		NewAuthUseCase,
		NewCatalogUseCase,
		NewLedgerUseCase,
		NewBlogUseCase,
		NewContactUseCase,
		NewReviewUseCase,
		func(cfg *config.Config) AdminPolicy { return cfg },
	),
)
