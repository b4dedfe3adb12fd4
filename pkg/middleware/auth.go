// Package middleware holds the fiber stages shared by the API routes: the
// session check, user resolution and request metrics.
package middleware

import (
	"context"
	"fmt"

	"github.com/Enryuk3/kash-app/pkg/config"
	"github.com/Enryuk3/kash-app/pkg/domain"
	"github.com/Enryuk3/kash-app/pkg/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenKey = "session_token"
	userKey  = "session_user"
)

// UserResolver turns a verified session token into the calling user.
type UserResolver interface {
	ResolveUser(ctx context.Context, token *jwt.Token) (*dto.SessionUser, error)
}

// SessionProtected verifies the HS256 session token found in the session
// cookie or an Authorization bearer header. Failures are returned as
// domain.ErrUnauthorized so the app error handler answers 401.
func SessionProtected(cfg *config.Auth) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{
			JWTAlg: jwtware.HS256,
			Key:    []byte(cfg.Jwt.Secret),
		},
		ContextKey:  tokenKey,
		TokenLookup: "header:Authorization,cookie:" + cfg.Cookie.Name,
		AuthScheme:  "Bearer",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
		},
	})
}

// ResolveUser loads the user behind the verified token and stores it in
// the request locals.
func ResolveUser(resolver UserResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals(tokenKey).(*jwt.Token)
		if !ok || token == nil {
			return domain.ErrUnauthorized
		}
		u, err := resolver.ResolveUser(c.UserContext(), token)
		if err != nil {
			return err
		}
		c.Locals(userKey, u)
		return c.Next()
	}
}

// Authenticated is the full chain mounted on protected route groups.
func Authenticated(cfg *config.Auth, resolver UserResolver) []fiber.Handler {
	return []fiber.Handler{SessionProtected(cfg), ResolveUser(resolver)}
}

// CurrentUser returns the user stored by ResolveUser.
func CurrentUser(c *fiber.Ctx) (*dto.SessionUser, error) {
	u, ok := c.Locals(userKey).(*dto.SessionUser)
	if !ok || u == nil {
		return nil, domain.ErrUnauthorized
	}
	return u, nil
}

// WithUser stores u as the current user. Used where the session is
// established by other means, such as tests.
func WithUser(u *dto.SessionUser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(userKey, u)
		return c.Next()
	}
}
