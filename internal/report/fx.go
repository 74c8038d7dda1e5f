package report

import (
	"github.com/colorhaus/colorhaus/internal/report/repository"
	"github.com/colorhaus/colorhaus/internal/report/service"
	"go.uber.org/fx"
)

var Module = fx.Module("report.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
