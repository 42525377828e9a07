package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/campusworks/tasktrack/internal/core/token"
)

// principalKey is the echo context key the guard stores the principal under.
const principalKey = "principal"

// Auth is the access control guard: it extracts the session token from the
// Authorization header, verifies it through the codec, and injects the
// resulting principal into the request context. Every failure kind collapses
// into the same 401; the internal reason is logged at debug level only.
func Auth(codec *token.Codec, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			// The token is accepted verbatim; a Bearer prefix is tolerated.
			raw := header
			if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
				raw = strings.TrimSpace(header[7:])
			}

			principal, err := codec.Verify(raw)
			if err != nil {
				log.Debug().Err(err).Str("path", c.Path()).Msg("token rejected")
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}
