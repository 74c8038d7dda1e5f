package profile

import (
	"github.com/colorhaus/colorhaus/internal/profile/repository"
	"github.com/colorhaus/colorhaus/internal/profile/service"
	"github.com/colorhaus/colorhaus/internal/profile/session"
	"go.uber.org/fx"
)

var Module = fx.Module("profile.service",
	fx.Provide(repository.Provide),
	fx.Provide(repository.ProvideSession),
	fx.Provide(session.NewManager),
	fx.Provide(service.New),
)
