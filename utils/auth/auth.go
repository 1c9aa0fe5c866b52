package auth

import (
	"fmt"
	"time"

	"github.com/Jody-Heid/beautyqueue-frontend/entities"
	"github.com/Jody-Heid/beautyqueue-frontend/utils/auth/common"
	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

// CookieName is the name of the cookie carrying the session JWT
const CookieName = "Authorization"

// NewJWT creates a new session JWT for the given session with the specified secret
func NewJWT(session entities.Session, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("JWT token secret undefined")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, common.SessionClaims{
		StandardClaims: jwt.StandardClaims{
			Subject:   session.Email,
			IssuedAt:  session.IssuedAt.Unix(),
			ExpiresAt: session.ExpiresAt.Unix(),
		},
		RememberMe: session.RememberMe,
	})

	return token.SignedString(secret)
}

// GetJWTClaims returns the claims of the given JWT, nil if the token is invalid or expired
func GetJWTClaims(token string, secret []byte) *common.SessionClaims {
	if len(secret) == 0 || token == "" {
		return nil
	}

	claims := &common.SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil
	}

	return claims
}

// SessionFromClaims rebuilds the session described by the claims
func SessionFromClaims(claims common.SessionClaims) entities.Session {
	return entities.Session{
		Email:      claims.Subject,
		RememberMe: claims.RememberMe,
		IssuedAt:   time.Unix(claims.IssuedAt, 0),
		ExpiresAt:  time.Unix(claims.ExpiresAt, 0),
	}
}
