package handlers

import (
	"counpaign/internal/services/auth"
	"counpaign/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a customer account and returns a token.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req auth.RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return utils.Error(c, err)
	}

	res, err := h.authService.Register(c.UserContext(), req)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Created(c, res)
}

// Login authenticates a customer by phone number.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req auth.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return utils.Error(c, err)
	}

	res, err := h.authService.Login(c.UserContext(), req)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, res)
}

func (h *AuthHandler) LoginBusiness(c *fiber.Ctx) error {
	var req auth.BusinessLoginRequest
	if err := parseBody(c, &req); err != nil {
		return utils.Error(c, err)
	}

	res, err := h.authService.LoginBusiness(c.UserContext(), req)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, res)
}

func (h *AuthHandler) LoginTerminal(c *fiber.Ctx) error {
	var req auth.TerminalLoginRequest
	if err := parseBody(c, &req); err != nil {
		return utils.Error(c, err)
	}

	res, err := h.authService.LoginTerminal(c.UserContext(), req)
	if err != nil {
		return utils.Error(c, err)
	}
	return utils.Success(c, res)
}
