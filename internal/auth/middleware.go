package auth

import (
	"errors"
	"net/http"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	apperrors "recipeshare/internal/errors"
)

const contextKeyClaims = "auth_claims"

var errNoToken = errors.New("missing token")

// headerToken takes the second space separated part of the Authorization
// header regardless of scheme, so "Token abc" presents "abc" for validation.
func headerToken(c echo.Context) ([]string, error) {
	parts := strings.Split(c.Request().Header.Get(echo.HeaderAuthorization), " ")
	if len(parts) < 2 || parts[1] == "" {
		return nil, errNoToken
	}
	return []string{parts[1]}, nil
}

// Middleware returns the bearer-token guard for protected routes.
// A missing token yields 401, a presented token that fails validation yields
// 403.
func Middleware(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:       contextKeyClaims,
		TokenLookup:      "header:" + echo.HeaderAuthorization + ":Bearer ",
		TokenLookupFuncs: []middleware.ValuesExtractor{headerToken},
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return jwtService.ValidateToken(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var parseErr *echojwt.TokenParsingError
			if errors.As(err, &parseErr) {
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
					Error: "Invalid or expired token",
					Code:  "INVALID_TOKEN",
				})
			}
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "Access token required",
				Code:  "TOKEN_REQUIRED",
			})
		},
	})
}

// UserIDFromContext returns the user id set by Middleware. 0 if not set.
func UserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get(contextKeyClaims).(*Claims)
	if !ok || claims == nil {
		return 0
	}
	return claims.UserID
}
