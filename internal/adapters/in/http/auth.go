package http

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ErrInvalidToken covers every way a presented bearer token can be bad:
// wrong signature, wrong algorithm, expired, or claims that do not resolve
// to an account. A request without any token is not an error; it is a guest.
var ErrInvalidToken = errors.New("invalid bearer token")

type accountClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// actorFromRequest resolves the acting party for a request.
// No Authorization header means a guest actor; a present but invalid token
// is rejected rather than downgraded, so a caller with an expired token
// does not silently lose their identity.
func actorFromRequest(c echo.Context, secret string) (account.Actor, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return account.NewGuestActor(), nil
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return account.Actor{}, ErrInvalidToken
	}

	return actorFromToken(strings.TrimSpace(parts[1]), secret)
}

func actorFromToken(tokenStr, secret string) (account.Actor, error) {
	claims := &accountClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return account.Actor{}, ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return account.Actor{}, ErrInvalidToken
	}
	userID, err := kernel.UUIDFromString(subject)
	if err != nil {
		return account.Actor{}, ErrInvalidToken
	}

	role, err := account.RoleFromString(claims.Role)
	if err != nil {
		return account.Actor{}, ErrInvalidToken
	}

	actor, err := account.NewActor(userID, role)
	if err != nil {
		return account.Actor{}, ErrInvalidToken
	}
	return actor, nil
}
