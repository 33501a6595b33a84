package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "campushub_backend/internals/helpers"
)

// OnlyRoles guards a route group by the resolved actor's role.
func OnlyRoles(forbiddenMessage string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := ActorFromCtx(c)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "missing actor information")
		}
		for _, allowed := range roles {
			if actor.Role == allowed {
				return c.Next()
			}
		}
		if forbiddenMessage == "" {
			forbiddenMessage = "you are not authorized to access this resource"
		}
		return helper.JsonError(c, fiber.StatusForbidden, forbiddenMessage)
	}
}
