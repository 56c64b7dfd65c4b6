package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/api/middleware"
	"github.com/DeveloperRam-Coder/AllSync-CRM/internal/core/domain"
)

// sessionRole reads the role that RoleContext placed on the request.
// A missing value folds into RoleUnknown, same as a missing header.
func sessionRole(c echo.Context) domain.Role {
	if role, ok := c.Get(middleware.ContextRoleKey).(domain.Role); ok {
		return role
	}
	return domain.RoleUnknown
}
