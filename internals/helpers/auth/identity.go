// Package auth carries the authenticated identity through the request.
// The token filter stores it in fiber locals and in the request context;
// services read it from the context, never from a global.
package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// LocalsKey is where the token filter stores the identity in fiber locals.
const LocalsKey = "auth_identity"

// AdminUserID is the user id carried by the bootstrap admin identity, which
// has no row in the users table.
const AdminUserID uint = 0

type Identity struct {
	UserID uint   `json:"user_id"`
	Login  string `json:"login"`
	Role   string `json:"role"`
}

func (id Identity) IsBootstrapAdmin() bool { return id.UserID == AdminUserID }

type ctxKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}

// ActorFrom returns the login to stamp into created_by/updated_by, or
// "anonymous" when the request carries no identity.
func ActorFrom(ctx context.Context) string {
	if id, ok := IdentityFrom(ctx); ok && id.Login != "" {
		return id.Login
	}
	return "anonymous"
}

// FromFiber reads the identity the token filter stored in locals.
func FromFiber(c *fiber.Ctx) (Identity, bool) {
	id, ok := c.Locals(LocalsKey).(Identity)
	return id, ok
}
