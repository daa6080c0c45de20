package handlers

import (
	"counpaign/internal/services/transaction"
	"counpaign/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	ledger transaction.Service
}

func NewTransactionHandler(ledger transaction.Service) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

// Process applies a STAMP, POINT or GIFT_REDEEM for a customer at a business.
func (h *TransactionHandler) Process(c *fiber.Ctx) error {
	a, err := actor(c)
	if err != nil {
		return utils.Error(c, err)
	}
	var req transaction.ProcessRequest
	if err := parseBody(c, &req); err != nil {
		return utils.Error(c, err)
	}

	res, err := h.ledger.Process(c.UserContext(), a, req)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, res)
}

// History lists the caller's entries at one business, newest first.
func (h *TransactionHandler) History(c *fiber.Ctx) error {
	a, err := actor(c)
	if err != nil {
		return utils.Error(c, err)
	}
	businessID, err := paramID(c, "businessId")
	if err != nil {
		return utils.Error(c, err)
	}

	txs, err := h.ledger.History(c.UserContext(), a.ID, businessID)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, txs)
}
