package handlers

import (
	apperrors "counpaign/internal/errors"
	"counpaign/internal/models"
	"counpaign/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// actor is a helper function to reduce duplication
func actor(c *fiber.Ctx) (models.Actor, error) {
	a, ok := utils.GetActor(c)
	if !ok || a.ID == uuid.Nil {
		return models.Actor{}, apperrors.ErrUnauthorized
	}
	return a, nil
}

func paramID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apperrors.Validation("invalid " + name)
	}
	return id, nil
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.Validation("invalid request body")
	}
	return nil
}
