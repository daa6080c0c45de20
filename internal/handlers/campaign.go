package handlers

import (
	"counpaign/internal/services/campaign"
	"counpaign/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type CampaignHandler struct {
	campaigns campaign.Service
}

func NewCampaignHandler(campaigns campaign.Service) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns}
}

// List returns every campaign, newest first. ?promoted=true narrows it to
// promoted campaigns.
func (h *CampaignHandler) List(c *fiber.Ctx) error {
	campaigns, err := h.campaigns.List(c.UserContext(), c.QueryBool("promoted", false))
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, campaigns)
}

func (h *CampaignHandler) ListByBusiness(c *fiber.Ctx) error {
	businessID, err := paramID(c, "businessId")
	if err != nil {
		return utils.Error(c, err)
	}

	campaigns, err := h.campaigns.ListByBusiness(c.UserContext(), businessID)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, campaigns)
}

func (h *CampaignHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Error(c, err)
	}

	cp, err := h.campaigns.Get(c.UserContext(), id)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, cp)
}

func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	a, err := actor(c)
	if err != nil {
		return utils.Error(c, err)
	}
	var req campaign.CreateRequest
	if err := parseBody(c, &req); err != nil {
		return utils.Error(c, err)
	}

	cp, err := h.campaigns.Create(c.UserContext(), a.ID, req)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Created(c, fiber.Map{"message": "Campaign created successfully", "campaign": cp})
}

func (h *CampaignHandler) Update(c *fiber.Ctx) error {
	a, err := actor(c)
	if err != nil {
		return utils.Error(c, err)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Error(c, err)
	}
	var patch campaign.Patch
	if err := parseBody(c, &patch); err != nil {
		return utils.Error(c, err)
	}

	cp, err := h.campaigns.Update(c.UserContext(), a.ID, id, patch)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.Map{"message": "Campaign updated successfully", "campaign": cp})
}

func (h *CampaignHandler) Delete(c *fiber.Ctx) error {
	a, err := actor(c)
	if err != nil {
		return utils.Error(c, err)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Error(c, err)
	}

	if err := h.campaigns.Delete(c.UserContext(), a.ID, id); err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.Map{"message": "Campaign deleted successfully"})
}
