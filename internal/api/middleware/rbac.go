package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/dailymate/dailymate-api/internal/core/domain"
)

// RequireRole enforces role-based access control. Mount it after
// RequireSession.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, ok := c.Get("account").(*domain.Account)
			if !ok {
				return domain.ErrUnauthorized
			}
			if _, ok := allowed[account.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
