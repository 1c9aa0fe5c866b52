package simulated

import (
	"context"
	"time"

	"github.com/Jody-Heid/beautyqueue-frontend/config"
	"github.com/Jody-Heid/beautyqueue-frontend/entities"
	"github.com/Jody-Heid/beautyqueue-frontend/services"
	"github.com/Jody-Heid/beautyqueue-frontend/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// authService stands in for the staff auth API: every call takes a fixed
// delay and succeeds unless the caller gives up first
type authService struct {
	logger       *zap.Logger
	cfg          *config.AppConfig
	timeProvider utils.TimeProvider
}

// NewAuthService creates an AuthService whose calls are simulated
func NewAuthService(logger *zap.Logger, cfg *config.AppConfig, timeProvider utils.TimeProvider) services.AuthService {
	return &authService{
		logger:       logger,
		cfg:          cfg,
		timeProvider: timeProvider,
	}
}

func (s *authService) Login(ctx context.Context, email, _ string, rememberMe bool) (*entities.Session, error) {
	if err := s.wait(ctx); err != nil {
		return nil, errors.Wrap(err, "login interrupted")
	}

	lifetime := s.cfg.Auth.SessionLifetime
	if rememberMe {
		lifetime = s.cfg.Auth.RememberMeLifetime
	}

	now := s.timeProvider.Now()
	s.logger.Debug("simulated login", zap.String("email", email), zap.Bool("remember me", rememberMe))

	return &entities.Session{
		Email:      email,
		RememberMe: rememberMe,
		IssuedAt:   now,
		ExpiresAt:  now.Add(lifetime),
	}, nil
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	if err := s.wait(ctx); err != nil {
		return errors.Wrap(err, "password reset request interrupted")
	}

	s.logger.Debug("simulated password reset request", zap.String("email", email))
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, token, _ string) error {
	if token == "" {
		return services.ErrMissingResetToken
	}

	if err := s.wait(ctx); err != nil {
		return errors.Wrap(err, "password reset interrupted")
	}

	s.logger.Debug("simulated password reset")
	return nil
}

// wait blocks for the simulated round trip; the timer is released as soon as ctx is done
func (s *authService) wait(ctx context.Context) error {
	timer := time.NewTimer(s.cfg.Auth.SimulatedDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
