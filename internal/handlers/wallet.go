package handlers

import (
	"counpaign/internal/services/business"
	"counpaign/internal/services/wallet"
	"counpaign/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const defaultExploreLimit = 20

type WalletHandler struct {
	walletService wallet.Service
	directory     business.Service
}

func NewWalletHandler(walletService wallet.Service, directory business.Service) *WalletHandler {
	return &WalletHandler{walletService: walletService, directory: directory}
}

// Explore lists every business, paginated with page and limit.
func (h *WalletHandler) Explore(c *fiber.Ctx) error {
	p := utils.GetPagination(c, 1, defaultExploreLimit)

	profiles, total, err := h.directory.Explore(c.UserContext(), p.Offset, p.Limit)
	if err != nil {
		return utils.Error(c, err)
	}
	p.SetTotal(total)
	return utils.Success(c, utils.NewPaginatedResponse(profiles, p))
}

func (h *WalletHandler) Newest(c *fiber.Ctx) error {
	profiles, err := h.directory.Newest(c.UserContext())
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, profiles)
}

func (h *WalletHandler) GetBusiness(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Error(c, err)
	}

	profile, err := h.directory.Get(c.UserContext(), id)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, profile)
}

func (h *WalletHandler) Add(c *fiber.Ctx) error {
	a, err := actor(c)
	if err != nil {
		return utils.Error(c, err)
	}
	var input struct {
		BusinessID uuid.UUID `json:"businessId"`
	}
	if err := parseBody(c, &input); err != nil {
		return utils.Error(c, err)
	}

	rel, err := h.walletService.Add(c.UserContext(), a.ID, input.BusinessID)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Created(c, fiber.Map{"message": "Business added to wallet", "data": rel})
}

func (h *WalletHandler) Remove(c *fiber.Ctx) error {
	a, err := actor(c)
	if err != nil {
		return utils.Error(c, err)
	}
	var req wallet.RemoveRequest
	if err := parseBody(c, &req); err != nil {
		return utils.Error(c, err)
	}

	if err := h.walletService.Remove(c.UserContext(), a.ID, req); err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.Map{"message": "Business removed and order updated"})
}

func (h *WalletHandler) Reorder(c *fiber.Ctx) error {
	a, err := actor(c)
	if err != nil {
		return utils.Error(c, err)
	}
	var input struct {
		Order []uuid.UUID `json:"order"`
	}
	if err := parseBody(c, &input); err != nil {
		return utils.Error(c, err)
	}

	cards, err := h.walletService.Reorder(c.UserContext(), a.ID, input.Order)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, fiber.Map{"message": "Order updated", "data": cards})
}

// My returns the caller's wallet cards in display order.
func (h *WalletHandler) My(c *fiber.Ctx) error {
	a, err := actor(c)
	if err != nil {
		return utils.Error(c, err)
	}

	cards, err := h.walletService.List(c.UserContext(), a.ID)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, cards)
}
