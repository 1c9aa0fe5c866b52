package common

import (
	"github.com/dgrijalva/jwt-go"
)

// SessionClaims is the model for the claims in the session JWT
type SessionClaims struct {
	jwt.StandardClaims
	RememberMe bool `json:"remember_me,omitempty"`
}
