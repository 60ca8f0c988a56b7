package handlers

import (
	"net/http"

	"hanziclash/internal/service"
)

// BattleHandler exposes the single-player battle API.
type BattleHandler struct {
	battles *service.BattleService
}

// NewBattleHandler creates a new battle handler.
func NewBattleHandler(battles *service.BattleService) *BattleHandler {
	return &BattleHandler{battles: battles}
}

type startBattleRequest struct {
	Level int `json:"level"`
}

type answerRequest struct {
	WordID int `json:"word_id"`
}

// Start opens a battle on an unlocked level.
func (h *BattleHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startBattleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	snap, err := h.battles.StartBattle(PlayerIDFromContext(r.Context()), req.Level)
	if err != nil {
		respondServiceError(w, err, "failed to start battle")
		return
	}
	respondJSON(w, http.StatusCreated, battleView(snap))
}

// Answer submits the player's pick for the current question.
func (h *BattleHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.battles.SubmitAnswer(r.PathValue("session"), PlayerIDFromContext(r.Context()), req.WordID)
	if err != nil {
		respondServiceError(w, err, "failed to submit answer")
		return
	}
	respondJSON(w, http.StatusOK, battleResultView(res))
}

// Forfeit abandons a battle without progression.
func (h *BattleHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	err := h.battles.Forfeit(r.PathValue("session"), PlayerIDFromContext(r.Context()))
	if err != nil {
		respondServiceError(w, err, "failed to forfeit battle")
		return
	}
	respondJSON(w, http.StatusOK, nil)
}
