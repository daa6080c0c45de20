package handlers

import (
	"counpaign/internal/services/participation"
	"counpaign/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type ParticipationHandler struct {
	participations participation.Service
}

func NewParticipationHandler(participations participation.Service) *ParticipationHandler {
	return &ParticipationHandler{participations: participations}
}

func (h *ParticipationHandler) Join(c *fiber.Ctx) error {
	a, err := actor(c)
	if err != nil {
		return utils.Error(c, err)
	}
	campaignID, err := paramID(c, "campaignId")
	if err != nil {
		return utils.Error(c, err)
	}

	p, err := h.participations.Join(c.UserContext(), a.ID, campaignID)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Created(c, fiber.Map{"message": "Successfully joined the campaign", "participation": p})
}

func (h *ParticipationHandler) My(c *fiber.Ctx) error {
	a, err := actor(c)
	if err != nil {
		return utils.Error(c, err)
	}

	ps, err := h.participations.Mine(c.UserContext(), a.ID)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, ps)
}

func (h *ParticipationHandler) Win(c *fiber.Ctx) error {
	a, err := actor(c)
	if err != nil {
		return utils.Error(c, err)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Error(c, err)
	}

	res, err := h.participations.Win(c.UserContext(), a, id)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, res)
}
