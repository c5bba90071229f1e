package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clearview/jobtracker/internal/core/domain"
)

// RequireRole admits only authenticated principals holding one of
// allowedRoles. Anonymous requests get 401, authenticated ones lacking the
// role get 403.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, err := domain.RequirePrincipal(c.Request().Context())
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
			}
			for _, r := range allowedRoles {
				if account.HasRole(r) {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
	}
}
