package forms

import "strconv"

// Field names shared by the form schemas and the templates
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldRememberMe      = "rememberMe"
)

// LoginForm is the staff sign-in form
type LoginForm struct {
	Email      string `form:"email" validate:"email"`
	Password   string `form:"password" validate:"min=6"`
	RememberMe bool   `form:"rememberMe"`
}

// Values returns the values that are safe to render back into the form
func (f LoginForm) Values() map[string]string {
	return map[string]string{
		FieldEmail:      f.Email,
		FieldRememberMe: strconv.FormatBool(f.RememberMe),
	}
}

// ForgotPasswordForm requests a password reset link
type ForgotPasswordForm struct {
	Email string `form:"email" validate:"email"`
}

// Values returns the values that are safe to render back into the form
func (f ForgotPasswordForm) Values() map[string]string {
	return map[string]string{
		FieldEmail: f.Email,
	}
}

// ResetPasswordForm sets a new password; the confirmation must repeat it
type ResetPasswordForm struct {
	Password        string `form:"password" validate:"min=6"`
	ConfirmPassword string `form:"confirmPassword" validate:"eqfield=Password"`
}

// Values returns the values that are safe to render back into the form.
// Passwords are never echoed.
func (f ResetPasswordForm) Values() map[string]string {
	return map[string]string{}
}
