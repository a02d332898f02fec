package context

import (
	"github.com/labstack/echo/v4"

	"lawyerup/internal/domain/entity"
)

const (
	// KeyUserID is the key for the authenticated user id in echo.Context.
	KeyUserID ContextKey = "user_id"

	// KeyRole is the key for the authenticated user's role in echo.Context.
	KeyRole ContextKey = "role"
)

// SetAuth stores the authenticated principal in echo.Context.
func SetAuth(c echo.Context, userID string, role entity.Role) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyRole), role)
}

// GetUserID returns the authenticated user id, or "" for anonymous requests.
func GetUserID(c echo.Context) string {
	id, _ := c.Get(string(KeyUserID)).(string)
	return id
}

// GetRole returns the authenticated user's role, or "" for anonymous requests.
func GetRole(c echo.Context) entity.Role {
	role, _ := c.Get(string(KeyRole)).(entity.Role)
	return role
}
