package services

import "errors"

var (
	// ErrMissingResetToken is the error returned by AuthService when
	// a password reset is attempted without the token from the reset link
	ErrMissingResetToken = errors.New("password reset token was not provided")
)
