package main

import (
	"github.com/Jody-Heid/beautyqueue-frontend/config"
	"github.com/Jody-Heid/beautyqueue-frontend/environment"
	"github.com/Jody-Heid/beautyqueue-frontend/routers"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const defaultPort = "8000"

// Server is the dashboard's HTTP server
type Server struct {
	*gin.Engine
	Port string
}

// NewServer sets up the dashboard's engine. Sessions cannot be signed without a JWT secret,
// so the server refuses to start when it is missing.
func NewServer(logger *zap.Logger, cfg *config.AppConfig, env *environment.Env, mainRouter routers.MainRouter) (Server, error) {
	if err := env.Require(environment.JWTSecret); err != nil {
		return Server{}, errors.Wrap(err, "invalid environment")
	}

	if env.Get(environment.Environment) == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), routers.RequestLogger(logger))
	engine.LoadHTMLGlob(cfg.TemplatesGlob)

	mainRouter.RegisterRoutes(engine.Group("/"))

	port := env.Get(environment.Port)
	if port == "" {
		port = defaultPort
	}

	return Server{
		Engine: engine,
		Port:   port,
	}, nil
}
