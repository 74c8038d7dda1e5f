package quote

import (
	"github.com/colorhaus/colorhaus/internal/quote/repository"
	"github.com/colorhaus/colorhaus/internal/quote/service"
	"go.uber.org/fx"
)

var Module = fx.Module("quote.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
