package services

import (
	"context"

	"github.com/Jody-Heid/beautyqueue-frontend/entities"
)

// AuthService performs the staff authentication calls behind the auth forms
type AuthService interface {
	// Login signs a staff member in and returns their session
	Login(ctx context.Context, email, password string, rememberMe bool) (*entities.Session, error)
	// RequestPasswordReset asks for a reset link to be sent to email.
	// It must not reveal whether an account exists for the email.
	RequestPasswordReset(ctx context.Context, email string) error
	// ResetPassword sets a new password using the token of a reset link
	ResetPassword(ctx context.Context, token, password string) error
}
