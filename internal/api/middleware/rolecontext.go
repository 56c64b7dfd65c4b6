package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
)

// RoleHeader carries the session role resolved upstream. Authentication
// is outside this service; the header value is trusted as-is.
const RoleHeader = "X-User-Role"

// ContextRoleKey is where the parsed role is stored on the echo context.
const ContextRoleKey = "role"

// RoleContext parses the session role header and injects it into the
// request context. Absent or unrecognized values fold into RoleUnknown,
// which still resolves to a valid minimal capability profile — the
// middleware never rejects a request.
func RoleContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := domain.ParseRole(c.Request().Header.Get(RoleHeader))
			c.Set(ContextRoleKey, role)
			return next(c)
		}
	}
}
