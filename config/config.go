package config

import (
	"path/filepath"
	"time"

	"github.com/Jody-Heid/beautyqueue-frontend/environment"
	"github.com/pkg/errors"

	"go.uber.org/config"
)

const defaultConfigDir = "config"

// AppConfig is a struct to store non-private configuration for the project
type AppConfig struct {
	Name          string      `yaml:"name"`
	TemplatesGlob string      `yaml:"templates_glob"`
	Auth          AuthConfig  `yaml:"auth"`
	Toasts        ToastConfig `yaml:"toasts"`
}

// AuthConfig stores timings of the authentication flows
type AuthConfig struct {
	// SimulatedDelay is how long every stubbed auth call takes
	SimulatedDelay              time.Duration `yaml:"simulated_delay"`
	LoginRedirectDelay          time.Duration `yaml:"login_redirect_delay"`
	ForgotPasswordRedirectDelay time.Duration `yaml:"forgot_password_redirect_delay"`
	ResetPasswordRedirectDelay  time.Duration `yaml:"reset_password_redirect_delay"`
	SessionLifetime             time.Duration `yaml:"session_lifetime"`
	RememberMeLifetime          time.Duration `yaml:"remember_me_lifetime"`
}

// ToastConfig stores how long notifications stay on screen
type ToastConfig struct {
	DefaultDuration       time.Duration `yaml:"default_duration"`
	ResetLinkSentDuration time.Duration `yaml:"reset_link_sent_duration"`
}

// NewAppConfig loads the project config from the config files based on the environment
func NewAppConfig(env *environment.Env) (*AppConfig, error) {
	dir := env.Get(environment.ConfigDir)
	if dir == "" {
		dir = defaultConfigDir
	}

	configFiles := []config.YAMLOption{config.File(filepath.Join(dir, "base.yaml"))}
	if env.Get(environment.Environment) == "prod" {
		configFiles = append(configFiles, config.File(filepath.Join(dir, "production.yaml")))
	} else if env.Get(environment.Environment) == "dev" {
		configFiles = append(configFiles, config.File(filepath.Join(dir, "development.yaml")))
	}

	configProvider, err := config.NewYAML(configFiles...)
	if err != nil {
		return nil, errors.Wrap(err, "could not load config files")
	}

	var cfg AppConfig
	err = configProvider.Get(config.Root).Populate(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not populate app config")
	}

	return &cfg, nil
}
