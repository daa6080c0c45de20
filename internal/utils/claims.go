package utils

import (
	"errors"

	"counpaign/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the auth middleware.
const (
	ClaimsKey = "claims"
	ActorKey  = "actor"
)

// GetUserClaims extracts the user claims from the Fiber context.
// It returns an error if the claims are missing or of an invalid type.
func GetUserClaims(c *fiber.Ctx) (*models.UserClaims, error) {
	v := c.Locals(ClaimsKey)
	if v == nil {
		return nil, errors.New("claims not found in context")
	}

	claims, ok := v.(*models.UserClaims)
	if !ok {
		return nil, errors.New("invalid claims type")
	}
	return claims, nil
}

// GetActor returns the authenticated principal.
func GetActor(c *fiber.Ctx) (models.Actor, bool) {
	actor, ok := c.Locals(ActorKey).(models.Actor)
	return actor, ok
}
