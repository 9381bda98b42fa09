package middleware

import (
	"strings"

	"Backend-StudentHub/src/models"
	"Backend-StudentHub/src/utils"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by AuthJWT for downstream handlers.
const (
	LocalUserID = "userId"
	LocalRole   = "role"
)

// AuthJWT verifies the bearer token and attaches the caller's identity to the
// request. When an allow-list is given, callers whose role is not in it get
// 403. Only the Authorization header is consulted; the session cookie cleared
// by logout is never an auth source.
func AuthJWT(tm *utils.TokenManager, allowed ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return utils.HandleError(c, fiber.StatusUnauthorized, "No token provided")
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tm.Parse(tokenStr)
		if err != nil {
			return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token")
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)

		if len(allowed) > 0 && !roleAllowed(claims.Role, allowed) {
			return utils.HandleError(c, fiber.StatusForbidden, "Forbidden")
		}

		return c.Next()
	}
}

func roleAllowed(role models.Role, allowed []models.Role) bool {
	// exhaustive match over the closed enum; unknown roles never pass
	if !role.IsValid() {
		return false
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// CallerID returns the authenticated user id set by AuthJWT.
func CallerID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}

// CallerRole returns the authenticated role set by AuthJWT.
func CallerRole(c *fiber.Ctx) models.Role {
	role, _ := c.Locals(LocalRole).(models.Role)
	return role
}
