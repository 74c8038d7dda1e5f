package samplerequest

import (
	"github.com/colorhaus/colorhaus/internal/samplerequest/repository"
	"github.com/colorhaus/colorhaus/internal/samplerequest/service"
	"go.uber.org/fx"
)

var Module = fx.Module("samplerequest.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
