package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Anushervon04/SRM/app/config"
	"github.com/Anushervon04/SRM/app/models"
)

// ErrInvalidSession is returned for cookies that do not decode to a
// (username, role) pair.
var ErrInvalidSession = errors.New("invalid session cookie")

// SessionCodec turns a (username, role) pair into an auth cookie value and
// back. Route logic never looks inside the cookie itself, so the legacy
// unsigned format can be swapped for a signed one without touching handlers.
type SessionCodec interface {
	Issue(username string, role models.Role) (string, error)
	Decode(value string) (username string, role models.Role, err error)
}

// PlainCodec is the legacy cookie format: "username:role", unsigned and
// forgeable by the client. Kept as the default for compatibility with
// existing deployments.
type PlainCodec struct{}

func (PlainCodec) Issue(username string, role models.Role) (string, error) {
	return fmt.Sprintf("%s:%s", username, role), nil
}

func (PlainCodec) Decode(value string) (string, models.Role, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return "", "", ErrInvalidSession
	}
	return parts[0], models.Role(parts[1]), nil
}

// SignedCodec carries the same two claims inside an HS256 JWT.
type SignedCodec struct {
	Secret []byte
}

type sessionClaims struct {
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

func (s SignedCodec) Issue(username string, role models.Role) (string, error) {
	claims := sessionClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:     uuid.NewString(),
			Issuer: "srm",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

func (s SignedCodec) Decode(value string) (string, models.Role, error) {
	token, err := jwt.ParseWithClaims(value, &sessionClaims{}, func(*jwt.Token) (any, error) {
		return s.Secret, nil
	})
	if err != nil {
		return "", "", ErrInvalidSession
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return "", "", ErrInvalidSession
	}
	return claims.Username, claims.Role, nil
}

// Codec picks the session format for this process: signed when a session
// secret is configured, the legacy plain format otherwise.
func Codec() SessionCodec {
	if config.AppConfig != nil && config.AppConfig.SessionSecret != "" {
		return SignedCodec{Secret: []byte(config.AppConfig.SessionSecret)}
	}
	return PlainCodec{}
}
