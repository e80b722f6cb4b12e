package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/notes-service/pkg/util"
)

const identityKey = "auth_identity"

// bearerPrefix is matched literally; "bearer" or "BEARER" schemes are
// rejected.
const bearerPrefix = "Bearer "

// Identity represents the authenticated caller as carried by the token. The
// token is self-contained, so no storage lookup happens here.
type Identity struct {
	Email string
	Name  string
}

// Middleware validates bearer tokens and stores the caller identity.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if header == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.Decode(header[len(bearerPrefix):])
	if err != nil {
		return err
	}

	c.Locals(identityKey, &Identity{Email: claims.Subject, Name: claims.Name})
	return c.Next()
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(c *fiber.Ctx) (*Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*Identity)
	return identity, ok
}
