package handlers

import (
	"net/http"
	"strconv"

	"hanziclash/internal/service"
)

// PracticeHandler exposes the mistake-book drill API.
type PracticeHandler struct {
	practice *service.PracticeService
}

// NewPracticeHandler creates a new practice handler.
func NewPracticeHandler(practice *service.PracticeService) *PracticeHandler {
	return &PracticeHandler{practice: practice}
}

// List returns the player's mistake book resolved to words.
func (h *PracticeHandler) List(w http.ResponseWriter, r *http.Request) {
	words, err := h.practice.MistakeWords(PlayerIDFromContext(r.Context()))
	if err != nil {
		respondServiceError(w, err, "failed to load mistake book")
		return
	}

	views := make([]WordView, 0, len(words))
	for _, word := range words {
		views = append(views, fullWordView(word))
	}
	respondJSON(w, http.StatusOK, map[string]any{"words": views})
}

// Question builds a drill question for one mistake word.
func (h *PracticeHandler) Question(w http.ResponseWriter, r *http.Request) {
	wordID, err := strconv.Atoi(r.PathValue("word"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid word id", "", nil)
		return
	}

	q, err := h.practice.Question(PlayerIDFromContext(r.Context()), wordID)
	if err != nil {
		respondServiceError(w, err, "failed to build practice question")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"question": questionView(q.Word),
		"options":  optionViews(q.Options),
	})
}

// Answer checks a drill answer; a correct one retires the word.
func (h *PracticeHandler) Answer(w http.ResponseWriter, r *http.Request) {
	wordID, err := strconv.Atoi(r.PathValue("word"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid word id", "", nil)
		return
	}

	var req answerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	correct, err := h.practice.SubmitAnswer(PlayerIDFromContext(r.Context()), wordID, req.WordID)
	if err != nil {
		respondServiceError(w, err, "failed to submit practice answer")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"correct": correct, "retired": correct})
}
