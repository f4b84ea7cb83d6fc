package http

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"resume-tailor/internal/auth"
	"resume-tailor/internal/model"
)

type UserStore interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

type AuthHandler struct {
	users     UserStore
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthHandler(users UserStore, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

type registerRequest struct {
	Fullname string `json:"fullname"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       string `json:"id"`
	Fullname string `json:"fullname"`
	Username string `json:"username"`
}

// Register handles POST /users.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || len(req.Password) < 8 {
		return badRequest(c, "username and a password of at least 8 characters are required")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return fail(c, err)
	}
	u, err := h.users.Create(c.Context(), &model.User{
		Fullname: strings.TrimSpace(req.Fullname),
		Username: req.Username,
		Password: hashed,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(userResponse{
		ID:       u.ID.Hex(),
		Fullname: u.Fullname,
		Username: u.Username,
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	u, err := h.users.GetByUsername(c.Context(), strings.TrimSpace(req.Username))
	if err != nil {
		return fail(c, err)
	}
	if u == nil || !auth.VerifyPassword(u.Password, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(errorBody{Error: "invalid credentials"})
	}

	token, err := auth.NewToken(h.jwtSecret, u.ID.Hex(), h.tokenTTL)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(loginResponse{AccessToken: token, TokenType: "bearer"})
}
