// Package auth exposes the sign-up, sign-in and session routes.
package auth

import (
	"strings"
	"time"

	"github.com/Enryuk3/kash-app/pkg/config"
	"github.com/Enryuk3/kash-app/pkg/dto"
	authsvc "github.com/Enryuk3/kash-app/pkg/service/auth"
	"github.com/Enryuk3/kash-app/pkg/validation"
	"github.com/Enryuk3/kash-app/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(r fiber.Router, svc *authsvc.Service, cfg *config.Auth) {
	g := r.Group("/auth")
	g.Post("/sign-up", SignUp(svc, cfg.Cookie))
	g.Post("/sign-in", SignIn(svc, cfg.Cookie))
	g.Post("/sign-out", SignOut(cfg.Cookie))
	g.Get("/get-session", GetSession(svc, cfg.Cookie))
}

// SignUp registers a user and opens a session.
// @Summary Sign up
// @Description Creates an account and sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body validation.SignUpInput true "Account"
// @Success 201 {object} dto.SessionView
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Router /api/auth/sign-up [post]
func SignUp(svc *authsvc.Service, cookie *config.Cookie) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := validation.SignUp(c.Body())
		if err != nil {
			return common.Problem(c, err)
		}
		u, err := svc.SignUp(c.UserContext(), in.Name, in.Email, in.Password)
		if err != nil {
			return common.Problem(c, err)
		}
		return openSession(c, svc, cookie, u, fiber.StatusCreated)
	}
}

// SignIn checks credentials and opens a session.
// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body validation.SignInInput true "Credentials"
// @Success 200 {object} dto.SessionView
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Router /api/auth/sign-in [post]
func SignIn(svc *authsvc.Service, cookie *config.Cookie) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := validation.SignIn(c.Body())
		if err != nil {
			return common.Problem(c, err)
		}
		u, err := svc.SignIn(c.UserContext(), in.Email, in.Password)
		if err != nil {
			return common.Problem(c, err)
		}
		return openSession(c, svc, cookie, u, fiber.StatusOK)
	}
}

// SignOut clears the session cookie.
// @Summary Sign out
// @Tags auth
// @Success 204
// @Router /api/auth/sign-out [post]
func SignOut(cookie *config.Cookie) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(sessionCookie(cookie, "", time.Unix(0, 0)))
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetSession describes the current session. Both members are null when the
// caller has none.
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionView
// @Router /api/auth/get-session [get]
func GetSession(svc *authsvc.Service, cookie *config.Cookie) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(cookie.Name)
		if raw == "" {
			raw = bearer(c.Get(fiber.HeaderAuthorization))
		}
		view, err := svc.Session(c.UserContext(), raw)
		if err != nil {
			return common.Problem(c, err)
		}
		return c.JSON(view)
	}
}

func openSession(
	c *fiber.Ctx,
	svc *authsvc.Service,
	cookie *config.Cookie,
	u *dto.UserRead,
	status int,
) error {
	session, err := svc.IssueSession(u)
	if err != nil {
		return common.Problem(c, err)
	}
	c.Cookie(sessionCookie(cookie, session.Token, session.ExpiresAt))
	return c.Status(status).JSON(dto.SessionView{
		Session: session,
		User:    &dto.SessionUser{ID: u.ID, Name: u.Name, Email: u.Email},
	})
}

func sessionCookie(cfg *config.Cookie, value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     cfg.Name,
		Value:    value,
		Path:     "/",
		Domain:   cfg.Domain,
		Expires:  expires,
		Secure:   cfg.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

func bearer(header string) string {
	const scheme = "Bearer "
	if len(header) > len(scheme) && strings.EqualFold(header[:len(scheme)], scheme) {
		return strings.TrimSpace(header[len(scheme):])
	}
	return ""
}
