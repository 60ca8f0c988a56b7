package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"hanziclash/internal/game"
	"hanziclash/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes a JSON body with the given status.
func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// respondError writes a JSON error body. Internal errors are logged
// with logMsg; the client only sees userMsg.
func respondError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Error().Err(err).Msg(logMsg)
	}
	respondJSON(w, status, errorResponse{Error: userMsg})
}

// respondServiceError maps known service errors to client statuses.
// Anything unrecognized is a 500 with the detail kept server-side.
func respondServiceError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrPlayerNotFound):
		respondError(w, http.StatusNotFound, "player not found", "", nil)
	case errors.Is(err, service.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, "session not found", "", nil)
	case errors.Is(err, service.ErrLevelLocked):
		respondError(w, http.StatusForbidden, "level not unlocked yet", "", nil)
	case errors.Is(err, service.ErrNameTaken):
		respondError(w, http.StatusConflict, "name already taken", "", nil)
	case errors.Is(err, service.ErrInvalidName),
		errors.Is(err, service.ErrInvalidAvatar),
		errors.Is(err, service.ErrInvalidPIN):
		respondError(w, http.StatusBadRequest, err.Error(), "", nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "invalid name or PIN", "", nil)
	case errors.Is(err, service.ErrNotAMistake):
		respondError(w, http.StatusNotFound, "word is not in the mistake book", "", nil)
	case errors.Is(err, service.ErrSideTaken):
		respondError(w, http.StatusConflict, "side two is played by the computer", "", nil)
	case errors.Is(err, game.ErrBattleOver),
		errors.Is(err, game.ErrVersusOver),
		errors.Is(err, game.ErrVersusPaused),
		errors.Is(err, game.ErrUnknownOption):
		respondError(w, http.StatusConflict, err.Error(), "", nil)
	default:
		respondError(w, http.StatusInternalServerError, "internal error", logMsg, err)
	}
}

// decodeJSON parses a bounded JSON request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", "", nil)
		return false
	}
	return true
}
