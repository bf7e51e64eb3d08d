package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/generated/servers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

var (
	ErrNoPrincipal      = errors.New("request carries no authenticated principal")
	ErrPrincipalBlocked = errors.New("principal account is deactivated")
)

// Principal identifies the authenticated actor behind a request. Credential
// storage and token issuance live in an external auth service; this adapter
// only verifies and unpacks the token it issued.
type Principal struct {
	ID       kernel.UUID
	Role     account.Role
	IsActive bool
}

// principalClaims is the token payload the auth service signs.
type principalClaims struct {
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
	jwt.RegisteredClaims
}

// PrincipalMiddleware verifies the bearer token, when present, and stores
// the resulting Principal in the echo context. Requests without a token pass
// through; handlers that need an actor reject them via principalFromContext.
// A token that is present but invalid fails the request immediately.
func PrincipalMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(ctx)
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			if tokenString == header {
				return unauthorized(ctx, "malformed authorization header")
			}

			principal, err := parsePrincipal(tokenString, secret)
			if err != nil {
				return unauthorized(ctx, "invalid or expired token")
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

func parsePrincipal(tokenString string, secret []byte) (Principal, error) {
	claims := &principalClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %s", token.Method.Alg())
		}
		return secret, nil
	})
	if err != nil {
		return Principal{}, err
	}
	if !token.Valid {
		return Principal{}, jwt.ErrTokenUnverifiable
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Principal{}, err
	}

	role, err := account.ParseRole(claims.Role)
	if err != nil {
		return Principal{}, err
	}

	return Principal{
		ID:       id,
		Role:     role,
		IsActive: claims.IsActive,
	}, nil
}

// principalFromContext returns the authenticated principal or an error for
// anonymous requests and deactivated accounts.
func principalFromContext(ctx echo.Context) (Principal, error) {
	principal, ok := ctx.Get(principalContextKey).(Principal)
	if !ok {
		return Principal{}, ErrNoPrincipal
	}

	if !principal.IsActive {
		return Principal{}, ErrPrincipalBlocked
	}

	return principal, nil
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
