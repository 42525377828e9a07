package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusworks/tasktrack/internal/api/middleware"
	"github.com/campusworks/tasktrack/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware and
// performs a fast-fail check before any service call:
//   - the principal must be present (presence proves the middleware ran).
//   - a student principal requires a non-empty student id; without it the
//     token is structurally valid but operationally unusable, so reject with 401.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	principal, ok := middleware.Principal(c)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	if principal.Role == domain.RoleStudent && principal.StudentID == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing student identity")
	}
	return principal, nil
}
