package auth

import (
	"context"

	"emis-backend/internal/middleware"
	"emis-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const userSessionsPrefix = "user_sessions:"

// Handlers holds dependencies for auth endpoints.
type Handlers struct {
	UserFinder UserFinder
	Rdb        *redis.Client
	Config     middleware.SessionConfig
}

// Login POST /api/v1/auth/login: authenticate, create session, set cookie.
func (h *Handlers) Login(c *fiber.Ctx) error {
	if h.UserFinder == nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	var req LoginInput
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, ErrEmailPasswordRequired.Error(), fiber.StatusBadRequest, nil)
	}
	if req.Email == "" || req.Password == "" {
		return response.Error(c, ErrEmailPasswordRequired.Error(), fiber.StatusBadRequest, nil)
	}

	user, err := h.UserFinder.FindByEmailAndPassword(req.Email, req.Password)
	if err != nil {
		switch err {
		case ErrEmailPasswordRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case ErrInvalidEmail, ErrIncorrectPassword:
			return response.Error(c, err.Error(), fiber.StatusUnauthorized, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}

	sessionID := middleware.RegenerateSessionID(c)

	var assignedLGU *string
	if user.AssignedLGUID != nil {
		s := user.AssignedLGUID.String()
		assignedLGU = &s
	}
	sessionUser := middleware.SessionUser{
		UserID:        user.UserID.String(),
		Fullname:      user.Fullname,
		Email:         user.Email,
		Role:          user.Role,
		Permissions:   EffectivePermissions(user),
		AssignedLGUID: assignedLGU,
	}
	middleware.SetSessionUser(c, sessionUser)

	// Track session ids per user so logout-everywhere stays possible
	if h.Rdb != nil {
		ctx := context.Background()
		if err := h.Rdb.SAdd(ctx, userSessionsPrefix+user.UserID.String(), sessionID).Err(); err != nil {
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}

	cookie := middleware.SessionCookieConfig(h.Config)
	cookie.Value = "s:" + sessionID
	c.Cookie(&cookie)

	return response.Success(c, "Login successful", fiber.Map{"user": sessionUser}, nil)
}

// Me GET /api/v1/auth/me: returns the session user or 401.
func (h *Handlers) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c, ErrNotAuthenticated.Error())
	}
	return response.Success(c, "User fetched successfully", fiber.Map{"user": user}, nil)
}

// Logout DELETE /api/v1/auth/logout: destroy session, clear cookie.
func (h *Handlers) Logout(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	sessionID := middleware.GetSessionID(c)

	if h.Rdb != nil && sessionID != "" {
		ctx := context.Background()
		h.Rdb.Del(ctx, middleware.SessionRedisPrefix+sessionID)
		if user != nil {
			h.Rdb.SRem(ctx, userSessionsPrefix+user.UserID, sessionID)
		}
	}
	middleware.DestroySession(c)

	cookie := middleware.SessionCookieConfig(h.Config)
	cookie.Value = ""
	cookie.MaxAge = -1
	c.Cookie(&cookie)

	return response.Success(c, "Logout successful", fiber.Map{}, nil)
}
