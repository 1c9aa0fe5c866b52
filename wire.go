//go:build wireinject
// +build wireinject

package main

import (
	"github.com/Jody-Heid/beautyqueue-frontend/config"
	"github.com/Jody-Heid/beautyqueue-frontend/environment"
	"github.com/Jody-Heid/beautyqueue-frontend/forms"
	"github.com/Jody-Heid/beautyqueue-frontend/navigation"
	"github.com/Jody-Heid/beautyqueue-frontend/routers"
	"github.com/Jody-Heid/beautyqueue-frontend/routers/frontend"
	"github.com/Jody-Heid/beautyqueue-frontend/services/simulated"
	"github.com/Jody-Heid/beautyqueue-frontend/toast"
	"github.com/Jody-Heid/beautyqueue-frontend/utils"
	"github.com/google/wire"
)

func InitializeServer() (Server, error) {
	wire.Build(
		NewServer,
		routers.NewMainRouter,
		frontend.NewRouter,
		simulated.NewAuthService,
		forms.NewValidator,
		toast.NewCatalog,
		navigation.NewSidebar,
		utils.NewTimeProvider,
		environment.NewEnv,
		utils.NewLogger,
		config.NewAppConfig,
	)
	return Server{}, nil
}
