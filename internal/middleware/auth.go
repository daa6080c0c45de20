// Package middleware provides HTTP middleware components for the application.
// It includes authentication and role-based authorization for fiber routes.
package middleware

import (
	"strings"

	apperrors "counpaign/internal/errors"
	"counpaign/internal/logging"
	"counpaign/internal/models"
	"counpaign/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// TokenParser verifies a bearer token and returns its claims.
type TokenParser interface {
	ParseToken(token string) (*models.UserClaims, error)
}

// AuthMiddleware handles JWT token validation and user authentication.
// It extracts the JWT token from the Authorization header, validates it,
// and adds the user claims to the request context.
type AuthMiddleware struct {
	tokens TokenParser
}

func NewAuthMiddleware(tokens TokenParser) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handler validates JWT tokens and adds claims to the request context.
// It checks for:
// - Presence of Authorization header with Bearer token
// - Valid HS256 signature
// - Token expiration
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return utils.Unauthorized(c, "missing authorization header")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.Unauthorized(c, "invalid authorization format")
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

	claims, err := m.tokens.ParseToken(tokenString)
	if err != nil {
		logging.L().WithError(err).WithField("path", c.Path()).Debug("token rejected")
		return utils.Error(c, apperrors.ErrInvalidToken)
	}

	c.Locals(utils.ClaimsKey, claims)
	c.Locals(utils.ActorKey, claims.Actor())
	return c.Next()
}

// RequireRoles returns a middleware that admits only the listed roles. It
// must run after Handler.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := utils.GetActor(c)
		if !ok {
			return utils.Error(c, apperrors.ErrUnauthorized)
		}
		if !actor.Is(roles...) {
			logging.L().WithFields(logrus.Fields{
				"role": actor.Role,
				"path": c.Path(),
			}).Debug("role rejected")
			return utils.Error(c, apperrors.ErrForbidden)
		}
		return c.Next()
	}
}
