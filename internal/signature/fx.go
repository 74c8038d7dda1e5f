package signature

import (
	"github.com/colorhaus/colorhaus/internal/signature/provider"
	"github.com/colorhaus/colorhaus/internal/signature/repository"
	"github.com/colorhaus/colorhaus/internal/signature/service"
	"go.uber.org/fx"
)

var Module = fx.Module("signature.service",
	fx.Provide(repository.Provide),
	fx.Provide(provider.NewLocalProcessor),
	fx.Provide(service.New),
)
