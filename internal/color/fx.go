package color

import (
	"github.com/colorhaus/colorhaus/internal/color/repository"
	"github.com/colorhaus/colorhaus/internal/color/service"
	"go.uber.org/fx"
)

var Module = fx.Module("color.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
