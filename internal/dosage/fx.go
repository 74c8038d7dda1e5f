package dosage

import (
	"github.com/colorhaus/colorhaus/internal/dosage/repository"
	"github.com/colorhaus/colorhaus/internal/dosage/service"
	"go.uber.org/fx"
)

var Module = fx.Module("dosage.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
