package catalog

import (
	"github.com/colorhaus/colorhaus/internal/catalog/repository"
	"github.com/colorhaus/colorhaus/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.Provide),
	fx.Provide(repository.ProvideReference),
	fx.Provide(service.New),
)
