package environment

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// names of env vars
const (
	Environment = "ENVIRONMENT"
	Port        = "PORT"
	JWTSecret   = "JWT_SECRET"
	ConfigDir   = "CONFIG_DIR"
)

// NewEnv creates an Env with loaded environment variables
func NewEnv(logger *zap.Logger) *Env {
	env := Env{
		vars: map[string]string{
			Environment: valueOfEnvVar(logger, Environment),
			Port:        valueOfEnvVar(logger, Port),
			JWTSecret:   valueOfEnvVar(logger, JWTSecret),
			ConfigDir:   valueOfEnvVar(logger, ConfigDir),
		},
	}
	return &env
}

// Env is a struct to store environment variables in an immutable collection
type Env struct {
	vars map[string]string
}

// Get returns an environment variable with the specified name
func (env *Env) Get(variableName string) string {
	return env.vars[variableName]
}

// Require returns an error naming the first of the given variables that is not set
func (env *Env) Require(variableNames ...string) error {
	for _, name := range variableNames {
		if env.Get(name) == "" {
			return errors.Errorf("required environment variable %s not defined", name)
		}
	}
	return nil
}

func valueOfEnvVar(logger *zap.Logger, varName string) string {
	envVar := os.Getenv(varName)
	if len(envVar) == 0 {
		logger.Warn("expected environment variable not defined", zap.String("var", varName))
	}

	return envVar
}
