package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"golf-api/internal/domain/model"
	"golf-api/internal/domain/usecase/auth"
)

const principalKey = "principal"

// TokenParser validates bearer tokens
type TokenParser interface {
	ParseToken(token string) (*model.Principal, error)
}

var _ TokenParser = (auth.UseCase)(nil)

// RequireAuth rejects requests without a valid bearer token and stores the caller in the context
func RequireAuth(parser TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
				return c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "missing bearer token"})
			}

			principal, err := parser.ParseToken(strings.TrimSpace(token))
			if err != nil {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
				return c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: auth.ErrInvalidToken.Error()})
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// RequireAdmin must run after RequireAuth
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "missing bearer token"})
			}
			if !principal.IsAdmin {
				return c.JSON(http.StatusForbidden, model.ErrorResponse{Error: "admin permission required"})
			}
			return next(c)
		}
	}
}

// PrincipalFrom returns the caller stored by RequireAuth
func PrincipalFrom(c echo.Context) (*model.Principal, bool) {
	principal, ok := c.Get(principalKey).(*model.Principal)
	return principal, ok && principal != nil
}
