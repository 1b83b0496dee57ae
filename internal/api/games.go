package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"zerai/internal/db"
	"zerai/internal/models"
)

type GameHandler struct {
	games *db.GameRepository
}

func NewGameHandler(games *db.GameRepository) *GameHandler {
	return &GameHandler{games: games}
}

type CreateGameRequest struct {
	RawgID          int64  `json:"rawgId" validate:"required"`
	GameTitle       string `json:"gameTitle" validate:"required,max=256"`
	Platforms       string `json:"platforms" validate:"required,max=256"`
	BackgroundImage string `json:"backgroundImage" validate:"omitempty,max=2048"`
	Status          string `json:"status"`
}

// POST /games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r)
	if userID == "" {
		unauthorized(w, ErrCodeInvalidToken, "User not found in context")
		return
	}

	var req CreateGameRequest
	if err := decodeAndValidate(r.Body, &req); err != nil {
		badRequest(w, ErrCodeInvalidRequest, err.Error())
		return
	}

	status := models.StatusBacklog
	if req.Status != "" {
		status = models.Status(req.Status)
		if !status.Valid() {
			badRequest(w, ErrCodeInvalidRequest, "invalid status")
			return
		}
	}

	game, err := h.games.Create(r.Context(), db.CreateGameParams{
		UserID:          userID,
		RawgID:          req.RawgID,
		GameTitle:       sanitizeText(req.GameTitle),
		Platform:        sanitizeText(req.Platforms),
		BackgroundImage: req.BackgroundImage,
		Status:          status,
	})
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			badRequest(w, ErrCodeDuplicate, "This game is already in your list")
			return
		}
		slog.Error("error creating game", "error", err, "user_id", userID)
		internalError(w)
		return
	}

	writeJSON(w, http.StatusCreated, game)
}

// GET /games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r)
	if userID == "" {
		unauthorized(w, ErrCodeInvalidToken, "User not found in context")
		return
	}

	games, err := h.games.ListByUser(r.Context(), userID)
	if err != nil {
		slog.Error("error listing games", "error", err, "user_id", userID)
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, games)
}

type UpdateGameRequest struct {
	GameTitle *string `json:"gameTitle" validate:"omitempty,max=256"`
	Platform  *string `json:"platform" validate:"omitempty,max=256"`
	Status    *string `json:"status"`
	Rating    *int    `json:"rating" validate:"omitempty,min=0,max=5"`
}

// PUT /games/{id}
func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r)
	if userID == "" {
		unauthorized(w, ErrCodeInvalidToken, "User not found in context")
		return
	}
	gameID := chi.URLParam(r, "id")

	var req UpdateGameRequest
	if err := decodeAndValidate(r.Body, &req); err != nil {
		badRequest(w, ErrCodeInvalidRequest, err.Error())
		return
	}

	// NotFound before ownership, so a non-owner probing random ids cannot
	// tell a missing entry from somebody else's.
	game, err := h.games.FindByID(r.Context(), gameID)
	if errors.Is(err, db.ErrNotFound) {
		notFound(w, "Game not found")
		return
	}
	if err != nil {
		slog.Error("error finding game", "error", err)
		internalError(w)
		return
	}
	if game.UserID != userID {
		unauthorized(w, ErrCodeNotOwner, "Not authorized")
		return
	}

	fields := db.UpdateGameFields{
		Rating: req.Rating,
	}
	if req.GameTitle != nil {
		title := sanitizeText(*req.GameTitle)
		if title == "" {
			badRequest(w, ErrCodeInvalidRequest, "gameTitle cannot be empty")
			return
		}
		fields.GameTitle = &title
	}
	if req.Platform != nil {
		platform := sanitizeText(*req.Platform)
		if platform == "" {
			badRequest(w, ErrCodeInvalidRequest, "platform cannot be empty")
			return
		}
		fields.Platform = &platform
	}
	if req.Status != nil {
		status := models.Status(*req.Status)
		if !status.Valid() {
			badRequest(w, ErrCodeInvalidRequest, "invalid status")
			return
		}
		fields.Status = &status
	}

	updated, err := h.games.Update(r.Context(), gameID, fields)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			notFound(w, "Game not found")
			return
		}
		slog.Error("error updating game", "error", err, "game_id", gameID)
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DELETE /games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r)
	if userID == "" {
		unauthorized(w, ErrCodeInvalidToken, "User not found in context")
		return
	}
	gameID := chi.URLParam(r, "id")

	game, err := h.games.FindByID(r.Context(), gameID)
	if errors.Is(err, db.ErrNotFound) {
		notFound(w, "Game not found")
		return
	}
	if err != nil {
		slog.Error("error finding game", "error", err)
		internalError(w)
		return
	}
	if game.UserID != userID {
		unauthorized(w, ErrCodeNotOwner, "Not authorized")
		return
	}

	if err := h.games.Delete(r.Context(), gameID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			// Deleted underneath us; callers treat this as already gone.
			notFound(w, "Game not found")
			return
		}
		slog.Error("error deleting game", "error", err, "game_id", gameID)
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Msg: "Game removed"})
}
