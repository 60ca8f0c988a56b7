package handlers

import (
	"net/http"
	"strconv"

	"hanziclash/internal/service"
)

// PlayerHandler covers profile reads and edits plus the rankings.
type PlayerHandler struct {
	players *service.PlayerService
}

// NewPlayerHandler creates a new player handler.
func NewPlayerHandler(players *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{players: players}
}

type updateIdentityRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Profile returns the signed-in player's full profile.
func (h *PlayerHandler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.players.GetProfile(PlayerIDFromContext(r.Context()))
	if err != nil {
		respondServiceError(w, err, "failed to load profile")
		return
	}
	respondJSON(w, http.StatusOK, profileView(profile))
}

// UpdateIdentity changes the player's display name and avatar.
func (h *PlayerHandler) UpdateIdentity(w http.ResponseWriter, r *http.Request) {
	var req updateIdentityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	playerID := PlayerIDFromContext(r.Context())
	if err := h.players.UpdateIdentity(playerID, req.Name, req.Avatar); err != nil {
		respondServiceError(w, err, "failed to update identity")
		return
	}

	profile, err := h.players.GetProfile(playerID)
	if err != nil {
		respondServiceError(w, err, "failed to load profile")
		return
	}
	respondJSON(w, http.StatusOK, profileView(profile))
}

// Leaderboard returns the top players by total score.
func (h *PlayerHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.players.Leaderboard()
	if err != nil {
		respondServiceError(w, err, "failed to load leaderboard")
		return
	}

	views := make([]LeaderboardEntryView, 0, len(entries))
	for i, e := range entries {
		views = append(views, LeaderboardEntryView{
			Rank:       i + 1,
			PlayerID:   e.PlayerID,
			Name:       e.Name,
			Avatar:     e.Avatar,
			TotalScore: e.TotalScore,
			XPLevel:    e.XPLevel,
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{"entries": views})
}

// LevelLeaderboard returns the best recorded scores for one level. The
// TotalScore column carries the level score here.
func (h *PlayerHandler) LevelLeaderboard(w http.ResponseWriter, r *http.Request) {
	level, err := strconv.Atoi(r.PathValue("level"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid level", "", nil)
		return
	}

	entries, err := h.players.LevelLeaderboard(level)
	if err != nil {
		respondError(w, http.StatusNotFound, "level not found", "", nil)
		return
	}

	views := make([]LeaderboardEntryView, 0, len(entries))
	for i, e := range entries {
		views = append(views, LeaderboardEntryView{
			Rank:       i + 1,
			PlayerID:   e.PlayerID,
			Name:       e.Name,
			Avatar:     e.Avatar,
			TotalScore: e.TotalScore,
			XPLevel:    e.XPLevel,
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{"level": level, "entries": views})
}

// Roster lists every player's public identity for the login screen.
func (h *PlayerHandler) Roster(w http.ResponseWriter, r *http.Request) {
	players, err := h.players.Roster()
	if err != nil {
		respondServiceError(w, err, "failed to load roster")
		return
	}

	type rosterEntry struct {
		ID      int64  `json:"id"`
		Name    string `json:"name"`
		Avatar  string `json:"avatar"`
		XPLevel int    `json:"xp_level"`
	}
	views := make([]rosterEntry, 0, len(players))
	for _, p := range players {
		views = append(views, rosterEntry{ID: p.PlayerID, Name: p.Name, Avatar: p.Avatar, XPLevel: p.XPLevel})
	}
	respondJSON(w, http.StatusOK, map[string]any{"players": views})
}

// Duels returns the player's recent versus results.
func (h *PlayerHandler) Duels(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	results, err := h.players.RecentDuels(PlayerIDFromContext(r.Context()), limit)
	if err != nil {
		respondServiceError(w, err, "failed to load duels")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"duels": duelViews(results)})
}
