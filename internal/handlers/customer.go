package handlers

import (
	"counpaign/internal/services/customer"
	"counpaign/internal/services/review"
	"counpaign/internal/services/transaction"
	"counpaign/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	customers customer.Service
	ledger    transaction.Service
	reviews   review.Service
}

func NewCustomerHandler(customers customer.Service, ledger transaction.Service, reviews review.Service) *CustomerHandler {
	return &CustomerHandler{customers: customers, ledger: ledger, reviews: reviews}
}

func (h *CustomerHandler) GetProfile(c *fiber.Ctx) error {
	a, err := actor(c)
	if err != nil {
		return utils.Error(c, err)
	}

	profile, err := h.customers.Profile(c.UserContext(), a.ID)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, profile)
}

func (h *CustomerHandler) UpdateProfile(c *fiber.Ctx) error {
	a, err := actor(c)
	if err != nil {
		return utils.Error(c, err)
	}
	var update customer.ProfileUpdate
	if err := parseBody(c, &update); err != nil {
		return utils.Error(c, err)
	}

	profile, err := h.customers.UpdateProfile(c.UserContext(), a.ID, update)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, profile)
}

// Transactions lists the caller's ledger entries, newest first.
func (h *CustomerHandler) Transactions(c *fiber.Ctx) error {
	a, err := actor(c)
	if err != nil {
		return utils.Error(c, err)
	}

	entries, err := h.ledger.ListForCustomer(c.UserContext(), a.ID)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, entries)
}

func (h *CustomerHandler) CreateReview(c *fiber.Ctx) error {
	a, err := actor(c)
	if err != nil {
		return utils.Error(c, err)
	}
	var req review.CreateRequest
	if err := parseBody(c, &req); err != nil {
		return utils.Error(c, err)
	}

	rv, err := h.reviews.Create(c.UserContext(), a.ID, req)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Created(c, fiber.Map{"message": "Review saved", "data": rv})
}

func (h *CustomerHandler) Reviews(c *fiber.Ctx) error {
	a, err := actor(c)
	if err != nil {
		return utils.Error(c, err)
	}

	reviews, err := h.reviews.Mine(c.UserContext(), a.ID)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, reviews)
}
