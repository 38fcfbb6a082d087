package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity is the resolved caller: who they are and which role tier their
// token carries.
type Identity struct {
	ID   uuid.UUID
	Role string
}

// FromContext extracts the caller identity from JWT claims in the Fiber
// context. The JWT middleware must have run first.
func FromContext(c *fiber.Ctx) (Identity, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return Identity{}, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Identity{}, errors.New("missing sub claim")
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		return Identity{}, err
	}

	role, ok := claims["role"].(string)
	if !ok {
		return Identity{}, errors.New("missing role claim")
	}

	return Identity{ID: id, Role: role}, nil
}
