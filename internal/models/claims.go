package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Roles carried in tokens.
const (
	RoleCustomer = "customer"
	RoleBusiness = "business"
	RoleTerminal = "terminal"
	RoleAdmin    = "admin"
)

// Actor is the authenticated principal a service call runs as.
type Actor struct {
	ID   uuid.UUID
	Role string
}

// Is reports whether the actor holds one of roles.
func (a Actor) Is(roles ...string) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

// UserClaims is the JWT payload: {id, role} plus registered claims.
type UserClaims struct {
	jwt.RegisteredClaims
	ID   uuid.UUID `json:"id"`
	Role string    `json:"role"`
}

func (c *UserClaims) Actor() Actor {
	return Actor{ID: c.ID, Role: c.Role}
}
