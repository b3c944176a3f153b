// Package middleware provides authentication, rate-limiting, logging, and
// tracing middleware for the application.
package middleware

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"inkwell/internal/config"
	"inkwell/internal/models"
	"inkwell/internal/policy"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// IdentityKey is the Fiber locals key holding the resolved policy.Identity.
const IdentityKey = "identity"

// UserResolver resolves a token subject to a stored user record.
type UserResolver interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// Auth validates bearer tokens and attaches the per-request identity context.
type Auth struct {
	cfg   *config.Config
	users UserResolver
}

// NewAuth returns an Auth middleware bound to the given config and user store.
func NewAuth(cfg *config.Config, users UserResolver) *Auth {
	return &Auth{cfg: cfg, users: users}
}

// Required enforces authentication: a missing, invalid, or unresolvable
// token fails the request with 401 before the handler runs.
func (a *Auth) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := a.subjectFromRequest(c)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Unauthorized"))
		}

		user, err := a.users.GetByID(c.UserContext(), userID)
		if err != nil {
			var appErr *models.AppError
			if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
				return models.RespondWithError(c, fiber.StatusUnauthorized,
					models.NewUnauthorizedError("Unauthorized"))
			}
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}

		setIdentity(c, user)
		return c.Next()
	}
}

// Optional resolves the identity when a valid token is presented but lets
// anonymous requests through with the zero identity. Only store failures
// abort the request.
func (a *Auth) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := a.subjectFromRequest(c)
		if !ok {
			c.Locals(IdentityKey, policy.Anonymous)
			return c.Next()
		}

		user, err := a.users.GetByID(c.UserContext(), userID)
		if err != nil {
			var appErr *models.AppError
			if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
				c.Locals(IdentityKey, policy.Anonymous)
				return c.Next()
			}
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}

		setIdentity(c, user)
		return c.Next()
	}
}

func setIdentity(c *fiber.Ctx, user *models.User) {
	c.Locals(IdentityKey, policy.Identity{User: user, IsAdmin: user.IsAdmin()})
	// Plain userID local is consumed by logging and rate-limit keying.
	c.Locals("userID", user.ID)
}

// Identity returns the identity stored by Required/Optional, or the
// anonymous identity when neither ran.
func Identity(c *fiber.Ctx) policy.Identity {
	if id, ok := c.Locals(IdentityKey).(policy.Identity); ok {
		return id
	}
	return policy.Anonymous
}

// subjectFromRequest extracts and verifies the bearer token, returning the
// subject user ID. ok is false for missing, malformed, expired, or
// wrong-issuer/audience tokens.
func (a *Auth) subjectFromRequest(c *fiber.Ctx) (uint, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return 0, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, false
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(a.cfg.JWTSecret), nil
	},
		jwt.WithIssuer(a.cfg.JWTIssuer),
		jwt.WithAudience(a.cfg.JWTAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	subStr, err := claims.GetSubject()
	if err != nil || subStr == "" {
		return 0, false
	}

	userID, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil || userID == 0 {
		return 0, false
	}

	return uint(userID), true
}
