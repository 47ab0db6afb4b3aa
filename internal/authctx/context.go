package authctx

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UserID extracts the authenticated user UUID from JWT claims in
// context.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	claims, err := Claims(c)
	if err != nil {
		return uuid.Nil, err
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}

// IsAdmin reports whether the token carries the admin role claim.
// Authoritative checks against the users table happen in the admin
// middleware; this is for per-resource decisions like comment deletion.
func IsAdmin(c *fiber.Ctx) bool {
	claims, err := Claims(c)
	if err != nil {
		return false
	}
	role, _ := claims["role"].(string)
	return role == "admin"
}

// Claims returns the parsed JWT claims placed in locals by the auth
// middleware.
func Claims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
