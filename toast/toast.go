package toast

import (
	"fmt"
	"time"

	"github.com/Jody-Heid/beautyqueue-frontend/config"
)

// Variant is the visual style of a notification
type Variant string

const (
	Default     Variant = "default"
	Success     Variant = "success"
	Destructive Variant = "destructive"
)

// Toast is a transient notification shown to the user
type Toast struct {
	Title       string
	Description string
	Variant     Variant
	Duration    time.Duration
}

// DurationMillis is the display duration in milliseconds, as consumed by the page script
func (t Toast) DurationMillis() int64 {
	return t.Duration.Milliseconds()
}

// IsDestructive reports whether the notification describes a failure
func (t Toast) IsDestructive() bool {
	return t.Variant == Destructive
}

// Catalog builds every notification raised by the authentication flows
type Catalog struct {
	defaultDuration       time.Duration
	resetLinkSentDuration time.Duration
}

// NewCatalog creates a Catalog using the configured display durations
func NewCatalog(cfg *config.AppConfig) *Catalog {
	return &Catalog{
		defaultDuration:       cfg.Toasts.DefaultDuration,
		resetLinkSentDuration: cfg.Toasts.ResetLinkSentDuration,
	}
}

func (c *Catalog) LoginSucceeded(email string) Toast {
	return Toast{
		Title:       "Login Successful",
		Description: fmt.Sprintf("Welcome back %s", email),
		Variant:     Success,
		Duration:    c.defaultDuration,
	}
}

func (c *Catalog) LoginFailed() Toast {
	return c.failure("Failed to login. Please try again.")
}

// ResetLinkSent is shown whether or not an account exists for the email
func (c *Catalog) ResetLinkSent() Toast {
	return Toast{
		Title:       "Reset Link Sent",
		Description: "If an account exists with this email, you will receive password reset instructions.",
		Variant:     Success,
		Duration:    c.resetLinkSentDuration,
	}
}

func (c *Catalog) ResetLinkFailed() Toast {
	return c.failure("Failed to send reset link. Please try again.")
}

func (c *Catalog) PasswordReset() Toast {
	return Toast{
		Title:       "Password Reset",
		Description: "Your password has been reset.",
		Variant:     Success,
		Duration:    c.defaultDuration,
	}
}

func (c *Catalog) PasswordResetFailed() Toast {
	return c.failure("Failed to reset password. Please try again.")
}

func (c *Catalog) InvalidResetLink() Toast {
	return Toast{
		Title:       "Invalid Reset Link",
		Description: "Please request a new password reset link.",
		Variant:     Destructive,
		Duration:    c.defaultDuration,
	}
}

func (c *Catalog) failure(description string) Toast {
	return Toast{
		Title:       "Error",
		Description: description,
		Variant:     Destructive,
		Duration:    c.defaultDuration,
	}
}
