package handlers

import (
	"net/http"
	"strconv"

	"hanziclash/internal/content"
	"hanziclash/internal/game"
)

// ContentHandler serves the static game catalog: worlds, avatars and
// level word lists. The catalog is fixed at build time, so everything
// here is a plain read of the pool.
type ContentHandler struct {
	pool *content.Pool
}

// NewContentHandler creates a new content handler.
func NewContentHandler(pool *content.Pool) *ContentHandler {
	return &ContentHandler{pool: pool}
}

// Worlds returns the campaign map.
func (h *ContentHandler) Worlds(w http.ResponseWriter, r *http.Request) {
	views := make([]WorldView, 0, len(content.Worlds))
	for _, world := range content.Worlds {
		views = append(views, worldView(world))
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"worlds":       views,
		"total_levels": content.TotalLevels,
	})
}

// Avatars returns the picker icons for the signup form.
func (h *ContentHandler) Avatars(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"avatars": content.Avatars})
}

// Achievements returns the full badge catalog.
func (h *ContentHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	views := make([]AchievementView, 0, len(game.Achievements))
	for _, a := range game.Achievements {
		views = append(views, achievementView(a))
	}
	respondJSON(w, http.StatusOK, map[string]any{"achievements": views})
}

// LevelWords returns the 10 words of one level for the study view.
func (h *ContentHandler) LevelWords(w http.ResponseWriter, r *http.Request) {
	level, err := strconv.Atoi(r.PathValue("level"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid level", "", nil)
		return
	}

	words, err := h.pool.LevelItems(level)
	if err != nil {
		respondError(w, http.StatusNotFound, "level not found", "", nil)
		return
	}

	views := make([]WordView, 0, len(words))
	for _, word := range words {
		views = append(views, fullWordView(word))
	}
	respondJSON(w, http.StatusOK, map[string]any{"level": level, "words": views})
}
