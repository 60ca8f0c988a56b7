package handlers

import (
	"errors"
	"net/http"

	"hanziclash/internal/service"
)

// GuardianHandler exposes the guardian dashboard API.
type GuardianHandler struct {
	guardians *service.GuardianService
}

// NewGuardianHandler creates a new guardian handler.
func NewGuardianHandler(guardians *service.GuardianService) *GuardianHandler {
	return &GuardianHandler{guardians: guardians}
}

type linkPlayerRequest struct {
	Name string `json:"name"`
	PIN  string `json:"pin"`
}

// Dashboard returns the guardian account and their linked players.
func (h *GuardianHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	guardianID := GuardianIDFromContext(r.Context())

	guardian, err := h.guardians.GetGuardian(guardianID)
	if err != nil {
		if errors.Is(err, service.ErrGuardianNotFound) {
			respondError(w, http.StatusNotFound, "guardian not found", "", nil)
			return
		}
		respondServiceError(w, err, "failed to load guardian")
		return
	}

	players, err := h.guardians.LinkedPlayers(guardianID)
	if err != nil {
		respondServiceError(w, err, "failed to load linked players")
		return
	}

	views := make([]PlayerView, 0, len(players))
	for i := range players {
		views = append(views, playerView(&players[i]))
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"email":           guardian.Email,
		"name":            guardian.Name,
		"players":         views,
		"reports_enabled": h.guardians.ReportsEnabled(),
	})
}

// LinkPlayer attaches a player to the guardian by name and PIN.
func (h *GuardianHandler) LinkPlayer(w http.ResponseWriter, r *http.Request) {
	var req linkPlayerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	player, err := h.guardians.LinkPlayer(GuardianIDFromContext(r.Context()), req.Name, req.PIN)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyLinked) {
			respondError(w, http.StatusConflict, "player already linked to a guardian", "", nil)
			return
		}
		respondServiceError(w, err, "failed to link player")
		return
	}
	respondJSON(w, http.StatusOK, playerView(player))
}

// SendReport emails the guardian a progress summary.
func (h *GuardianHandler) SendReport(w http.ResponseWriter, r *http.Request) {
	if err := h.guardians.SendReport(r.Context(), GuardianIDFromContext(r.Context())); err != nil {
		respondServiceError(w, err, "failed to send progress report")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}
