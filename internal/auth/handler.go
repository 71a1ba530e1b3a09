package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	Repo *UserRepo
	JWT  *JWT
}

type loginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Identity    Identity  `json:"identity"`
}

type loginInput struct {
	Body loginBody
}

type loginOutput struct {
	Body tokenResponse
}

func Register(api huma.API, h *Handler) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/auth/login",
		Summary:     "Login",
		Tags:        []string{"Auth"},
	}, h.login)

	huma.Register(api, huma.Operation{
		OperationID: "refresh",
		Method:      http.MethodPost,
		Path:        "/v1/auth/refresh",
		Summary:     "Refresh token",
		Tags:        []string{"Auth"},
	}, h.refresh)
}

func (h *Handler) login(ctx context.Context, in *loginInput) (*loginOutput, error) {
	u, err := h.Repo.GetByUsername(ctx, in.Body.Username)
	if err != nil || u == nil {
		return nil, huma.Error401Unauthorized("invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Body.Password)) != nil {
		return nil, huma.Error401Unauthorized("invalid credentials")
	}
	tok, err := h.JWT.Generate(u)
	if err != nil {
		return nil, err
	}
	id := Identity{Sub: u.Sub, Email: u.Email, Name: u.Name, Groups: u.Groups}
	return &loginOutput{Body: tokenResponse{AccessToken: tok, ExpiresAt: time.Now().Add(h.JWT.Expiry()), Identity: id}}, nil
}

type refreshInput struct {
	Authorization string `header:"Authorization"`
}

// refresh issues a fresh token for the bearer of a still-valid one. The
// route is registered ahead of the auth middleware, so the handler parses
// the Authorization header itself.
func (h *Handler) refresh(ctx context.Context, in *refreshInput) (*loginOutput, error) {
	if !strings.HasPrefix(in.Authorization, "Bearer ") {
		return nil, huma.Error401Unauthorized("unauthorized")
	}
	claims, err := h.JWT.Validate(strings.TrimPrefix(in.Authorization, "Bearer "))
	if err != nil || claims.Subject == "" {
		return nil, huma.Error401Unauthorized("unauthorized")
	}
	u := &User{Sub: claims.Subject, Email: claims.Email, Name: claims.Name, Groups: claims.Groups}
	tok, err := h.JWT.Generate(u)
	if err != nil {
		return nil, err
	}
	return &loginOutput{Body: tokenResponse{AccessToken: tok, ExpiresAt: time.Now().Add(h.JWT.Expiry()), Identity: claims.Identity()}}, nil
}
