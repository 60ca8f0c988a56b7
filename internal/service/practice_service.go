package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"hanziclash/internal/content"
	"hanziclash/internal/game"
	"hanziclash/internal/repository"
)

// ErrNotAMistake is returned when practicing a word that is not in the
// player's mistake book.
var ErrNotAMistake = errors.New("word is not in the mistake book")

// PracticeService runs the mistake-book drill: the player re-answers
// words they got wrong in battle, and a correct answer retires the word.
// No score, XP or stars; the only stake is clearing the book.
type PracticeService struct {
	pool    *content.Pool
	players *repository.PlayerRepository
}

// PracticeQuestion is one drill question.
type PracticeQuestion struct {
	Word    content.Word
	Options []content.Word
}

// NewPracticeService creates a new practice service.
func NewPracticeService(pool *content.Pool, players *repository.PlayerRepository) *PracticeService {
	return &PracticeService{pool: pool, players: players}
}

// MistakeWords returns the player's mistake book resolved to words.
// Stale ids (from an older word table) are dropped silently.
func (s *PracticeService) MistakeWords(playerID int64) ([]content.Word, error) {
	player, err := s.players.GetPlayerByID(playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	var words []content.Word
	for _, id := range player.MistakeWordIDs {
		if w, ok := s.pool.ItemByID(id); ok {
			words = append(words, w)
		}
	}
	return words, nil
}

// Question builds a drill question for one mistake word.
func (s *PracticeService) Question(playerID int64, wordID int) (PracticeQuestion, error) {
	player, err := s.players.GetPlayerByID(playerID)
	if err != nil {
		return PracticeQuestion{}, fmt.Errorf("failed to load player: %w", err)
	}
	if player == nil {
		return PracticeQuestion{}, ErrPlayerNotFound
	}
	if !player.HasMistake(wordID) {
		return PracticeQuestion{}, ErrNotAMistake
	}

	word, ok := s.pool.ItemByID(wordID)
	if !ok {
		return PracticeQuestion{}, ErrNotAMistake
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return PracticeQuestion{
		Word:    word,
		Options: game.GenerateOptions(s.pool, word, rng),
	}, nil
}

// SubmitAnswer checks a drill answer. A correct answer removes the word
// from the mistake book and saves; a wrong answer changes nothing, the
// word stays for another try.
func (s *PracticeService) SubmitAnswer(playerID int64, wordID, answerID int) (correct bool, err error) {
	player, err := s.players.GetPlayerByID(playerID)
	if err != nil {
		return false, fmt.Errorf("failed to load player: %w", err)
	}
	if player == nil {
		return false, ErrPlayerNotFound
	}
	if !player.HasMistake(wordID) {
		return false, ErrNotAMistake
	}

	if answerID != wordID {
		return false, nil
	}

	if game.RemoveMistake(player, wordID) {
		if err := s.players.SaveProgress(player); err != nil {
			return true, err
		}
		log.Info().Int64("player", playerID).Int("word", wordID).Msg("mistake retired")
	}
	return true, nil
}
