package simulated

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Jody-Heid/beautyqueue-frontend/config"
	"github.com/Jody-Heid/beautyqueue-frontend/services"
	"github.com/Jody-Heid/beautyqueue-frontend/utils"
)

var testNow = time.Date(2024, time.May, 4, 10, 0, 0, 0, time.UTC)

func newTestService(delay time.Duration) services.AuthService {
	return NewAuthService(zap.NewNop(), &config.AppConfig{
		Auth: config.AuthConfig{
			SimulatedDelay:     delay,
			SessionLifetime:    time.Hour,
			RememberMeLifetime: 24 * time.Hour,
		},
	}, utils.FixedTimeProvider{Time: testNow})
}

func Test_Login__should_return_session_for_email(t *testing.T) {
	session, err := newTestService(time.Millisecond).Login(context.Background(), "a@b.com", "secret1", false)

	assert.NoError(t, err)
	assert.Equal(t, "a@b.com", session.Email)
	assert.False(t, session.RememberMe)
	assert.Equal(t, testNow, session.IssuedAt)
	assert.Equal(t, time.Hour, session.Lifetime())
}

func Test_Login__should_use_remember_me_lifetime(t *testing.T) {
	session, err := newTestService(0).Login(context.Background(), "a@b.com", "secret1", true)

	assert.NoError(t, err)
	assert.True(t, session.RememberMe)
	assert.Equal(t, 24*time.Hour, session.Lifetime())
}

func Test_Login__should_wait_for_simulated_delay(t *testing.T) {
	delay := 20 * time.Millisecond
	start := time.Now()

	_, err := newTestService(delay).Login(context.Background(), "a@b.com", "secret1", false)

	assert.NoError(t, err)
	assert.True(t, time.Since(start) >= delay)
}

func Test_calls__should_return_error_when_context_is_cancelled(t *testing.T) {
	service := newTestService(time.Hour)

	tests := []struct {
		name string
		call func(ctx context.Context) error
	}{
		{
			name: "Login",
			call: func(ctx context.Context) error {
				_, err := service.Login(ctx, "a@b.com", "secret1", false)
				return err
			},
		},
		{
			name: "RequestPasswordReset",
			call: func(ctx context.Context) error {
				return service.RequestPasswordReset(ctx, "x@y.com")
			},
		},
		{
			name: "ResetPassword",
			call: func(ctx context.Context) error {
				return service.ResetPassword(ctx, "token", "newsecret")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			err := tt.call(ctx)
			assert.True(t, errors.Is(err, context.Canceled))
		})
	}
}

func Test_RequestPasswordReset__should_succeed_for_any_email(t *testing.T) {
	service := newTestService(0)

	assert.NoError(t, service.RequestPasswordReset(context.Background(), "x@y.com"))
	assert.NoError(t, service.RequestPasswordReset(context.Background(), "nobody@nowhere.com"))
}

func Test_ResetPassword__should_return_ErrMissingResetToken_when_token_empty(t *testing.T) {
	err := newTestService(time.Hour).ResetPassword(context.Background(), "", "newsecret")

	assert.Equal(t, services.ErrMissingResetToken, err)
}

func Test_ResetPassword__should_succeed_with_token(t *testing.T) {
	err := newTestService(0).ResetPassword(context.Background(), "token", "newsecret")

	assert.NoError(t, err)
}
