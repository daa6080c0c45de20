package handlers

import (
	"counpaign/internal/services/terminal"
	"counpaign/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// TerminalHandler serves both the business-side terminal management routes
// and the terminal's own scan route.
type TerminalHandler struct {
	terminals terminal.Service
}

func NewTerminalHandler(terminals terminal.Service) *TerminalHandler {
	return &TerminalHandler{terminals: terminals}
}

func (h *TerminalHandler) Create(c *fiber.Ctx) error {
	a, err := actor(c)
	if err != nil {
		return utils.Error(c, err)
	}
	var req terminal.CreateRequest
	if err := parseBody(c, &req); err != nil {
		return utils.Error(c, err)
	}

	t, err := h.terminals.Create(c.UserContext(), a.ID, req)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Created(c, t)
}

func (h *TerminalHandler) List(c *fiber.Ctx) error {
	a, err := actor(c)
	if err != nil {
		return utils.Error(c, err)
	}

	terminals, err := h.terminals.List(c.UserContext(), a.ID)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, terminals)
}

func (h *TerminalHandler) Deactivate(c *fiber.Ctx) error {
	return h.setActive(c, false)
}

func (h *TerminalHandler) Activate(c *fiber.Ctx) error {
	return h.setActive(c, true)
}

func (h *TerminalHandler) setActive(c *fiber.Ctx, active bool) error {
	a, err := actor(c)
	if err != nil {
		return utils.Error(c, err)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return utils.Error(c, err)
	}

	t, err := h.terminals.SetActive(c.UserContext(), a.ID, id, active)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, t)
}

// ProcessTransaction credits points for a purchase scanned at the calling
// terminal.
func (h *TerminalHandler) ProcessTransaction(c *fiber.Ctx) error {
	a, err := actor(c)
	if err != nil {
		return utils.Error(c, err)
	}
	var req terminal.PurchaseRequest
	if err := parseBody(c, &req); err != nil {
		return utils.Error(c, err)
	}

	res, err := h.terminals.ProcessPurchase(c.UserContext(), a.ID, req)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, res)
}
