package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"zerai/internal/auth"
	"zerai/internal/db"
)

type AuthHandler struct {
	users  *db.UserRepository
	tokens *auth.TokenService
}

func NewAuthHandler(users *db.UserRepository, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{
		users:  users,
		tokens: tokens,
	}
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeAndValidate(r.Body, &req); err != nil {
		badRequest(w, ErrCodeInvalidRequest, err.Error())
		return
	}

	username := sanitizeText(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("error hashing password", "error", err)
		internalError(w)
		return
	}

	if _, err := h.users.Create(r.Context(), username, email, hash); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			badRequest(w, ErrCodeDuplicate, "A user with this email already exists")
			return
		}
		slog.Error("error creating user", "error", err)
		internalError(w)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Msg: "User registered successfully"})
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeAndValidate(r.Body, &req); err != nil {
		badRequest(w, ErrCodeInvalidRequest, err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.FindByEmail(r.Context(), email)
	if errors.Is(err, db.ErrNotFound) {
		// Same response as a wrong password so login probes learn nothing.
		badRequest(w, ErrCodeInvalidCredentials, "Invalid credentials")
		return
	}
	if err != nil {
		slog.Error("error finding user", "error", err)
		internalError(w)
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		badRequest(w, ErrCodeInvalidCredentials, "Invalid credentials")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		slog.Error("error issuing token", "error", err)
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}
