package handlers

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"hanziclash/internal/audio"
	"hanziclash/internal/content"
)

// AudioHandler serves word pronunciation clips, fetching them on first
// request and from the cache directory afterwards.
type AudioHandler struct {
	tts      *audio.TTSService
	pool     *content.Pool
	audioDir string
}

// NewAudioHandler creates a new audio handler.
func NewAudioHandler(tts *audio.TTSService, pool *content.Pool, audioDir string) *AudioHandler {
	return &AudioHandler{tts: tts, pool: pool, audioDir: audioDir}
}

// Serve streams the clip for one word id.
func (h *AudioHandler) Serve(w http.ResponseWriter, r *http.Request) {
	wordID, err := parseAudioWordID(r.PathValue("file"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid audio file", "", nil)
		return
	}

	word, ok := h.pool.ItemByID(wordID)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown word", "", nil)
		return
	}

	filename, err := h.tts.GenerateWordAudio(word)
	if err != nil {
		respondError(w, http.StatusBadGateway, "audio unavailable", "failed to fetch audio", err)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeFile(w, r, filepath.Join(h.audioDir, filename))
}

// Warm pre-fetches clips for the whole pool. Slow; meant for operators
// seeding a fresh install, so it runs inline and reports totals.
func (h *AudioHandler) Warm(w http.ResponseWriter, r *http.Request) {
	generated, failed := h.tts.WarmPool(h.pool)
	if len(failed) > 0 {
		log.Warn().Ints("word_ids", failed).Msg("some audio clips failed to generate")
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"generated": generated,
		"failed":    failed,
	})
}

// parseAudioWordID extracts the word id from a "word_<id>.mp3" name.
func parseAudioWordID(file string) (int, error) {
	name := strings.TrimSuffix(file, ".mp3")
	name = strings.TrimPrefix(name, "word_")
	return strconv.Atoi(name)
}
