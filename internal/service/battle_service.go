package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"hanziclash/internal/content"
	"hanziclash/internal/game"
	"hanziclash/internal/repository"
	"hanziclash/internal/security"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrLevelLocked     = errors.New("level not unlocked yet")
	ErrPlayerNotFound  = errors.New("player not found")
)

// BattleService owns the live single-player battle sessions. The battle
// engine itself is a pure value; this layer adds the per-question timer,
// session identity and the write-back of finished battles.
type BattleService struct {
	pool    *content.Pool
	players *repository.PlayerRepository
	sink    game.EventSink

	mu       sync.Mutex
	sessions map[string]*battleSession
}

type battleSession struct {
	mu sync.Mutex

	id       string
	playerID int64
	battle   *game.Battle

	// rounds counts applied events; timer callbacks carry the count they
	// were armed for so a timeout that lost the race is a no-op.
	rounds        int
	questionStart time.Time
	timer         *time.Timer
	finished      bool
}

// BattleSnapshot is the service-level view of a running battle.
type BattleSnapshot struct {
	SessionID  string
	Level      int
	PlayerHP   int
	EnemyHP    int
	EnemyMaxHP int
	Score      int
	Combo      int
	Question   content.Word
	Options    []content.Word
	TimeLimit  time.Duration
	Status     game.Status
}

// BattleResult is returned from a submitted answer or timeout.
type BattleResult struct {
	Round    game.RoundResult
	Snapshot BattleSnapshot

	// Set when the battle just finished.
	Outcome  *game.Outcome
	Progress *game.ProgressUpdate
}

// NewBattleService creates the battle session manager.
func NewBattleService(pool *content.Pool, players *repository.PlayerRepository, sink game.EventSink) *BattleService {
	if sink == nil {
		sink = game.NopSink{}
	}
	return &BattleService{
		pool:     pool,
		players:  players,
		sink:     sink,
		sessions: make(map[string]*battleSession),
	}
}

// StartBattle opens a battle session for an unlocked level and arms the
// first question timer.
func (s *BattleService) StartBattle(playerID int64, level int) (BattleSnapshot, error) {
	player, err := s.players.GetPlayerByID(playerID)
	if err != nil {
		return BattleSnapshot{}, fmt.Errorf("failed to load player: %w", err)
	}
	if player == nil {
		return BattleSnapshot{}, ErrPlayerNotFound
	}
	if level > player.MaxUnlockedLevel {
		return BattleSnapshot{}, ErrLevelLocked
	}

	battle, err := game.NewBattle(s.pool, level, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return BattleSnapshot{}, err
	}

	sess := &battleSession{
		id:       security.GenerateSessionID(),
		playerID: playerID,
		battle:   battle,
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.armQuestionTimer(sess)

	log.Info().
		Str("session", sess.id).
		Int64("player", playerID).
		Int("level", level).
		Msg("battle started")

	return s.snapshot(sess), nil
}

// SubmitAnswer applies a player's answer to their session.
func (s *BattleService) SubmitAnswer(sessionID string, playerID int64, wordID int) (BattleResult, error) {
	sess, err := s.session(sessionID, playerID)
	if err != nil {
		return BattleResult{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.finished {
		return BattleResult{}, game.ErrBattleOver
	}

	elapsed := time.Since(sess.questionStart)
	round, err := sess.battle.SubmitAnswer(wordID, elapsed)
	if err != nil {
		return BattleResult{}, err
	}
	return s.afterEvent(sess, round)
}

// Forfeit abandons a session without applying any progression.
func (s *BattleService) Forfeit(sessionID string, playerID int64) error {
	sess, err := s.session(sessionID, playerID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	sess.finished = true
	if sess.timer != nil {
		sess.timer.Stop()
	}
	sess.mu.Unlock()

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	log.Info().Str("session", sessionID).Msg("battle forfeited")
	return nil
}

// afterEvent advances bookkeeping shared by answers and timeouts. The
// session lock is held.
func (s *BattleService) afterEvent(sess *battleSession, round game.RoundResult) (BattleResult, error) {
	sess.rounds++

	kind := game.EventMiss
	if round.Correct {
		kind = game.EventHit
	}
	s.sink.GameEvent(sess.playerID, kind)

	result := BattleResult{Round: round}

	if round.Status != game.StatusActive {
		sess.finished = true
		if sess.timer != nil {
			sess.timer.Stop()
		}
		outcome, err := sess.battle.Outcome()
		if err != nil {
			return BattleResult{}, err
		}

		progress, err := s.applyOutcome(sess, outcome)
		if err != nil {
			return BattleResult{}, err
		}
		result.Outcome = &outcome
		result.Progress = progress

		s.mu.Lock()
		delete(s.sessions, sess.id)
		s.mu.Unlock()
	} else {
		s.armQuestionTimer(sess)
	}

	result.Snapshot = s.snapshot(sess)
	return result, nil
}

// applyOutcome folds a finished battle into the player record and saves
// it. The progression engine is the single writer for player state, so
// the load-apply-save happens in one place.
func (s *BattleService) applyOutcome(sess *battleSession, outcome game.Outcome) (*game.ProgressUpdate, error) {
	player, err := s.players.GetPlayerByID(sess.playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	update, err := game.ApplyResult(player, sess.battle.Level, outcome.Stars, outcome.Score,
		outcome.WrongIDs, outcome.Won, outcome)
	if err != nil {
		return nil, fmt.Errorf("failed to apply battle result: %w", err)
	}

	if err := s.players.SaveProgress(player); err != nil {
		return nil, err
	}

	if outcome.Won {
		s.sink.GameEvent(sess.playerID, game.EventWin)
	} else {
		s.sink.GameEvent(sess.playerID, game.EventLose)
	}
	if update.LeveledUp {
		s.sink.GameEvent(sess.playerID, game.EventLevelUp)
	}
	for range update.NewAchievements {
		s.sink.GameEvent(sess.playerID, game.EventAchievement)
	}

	log.Info().
		Str("session", sess.id).
		Int64("player", sess.playerID).
		Bool("won", outcome.Won).
		Int("score", outcome.Score).
		Int("stars", outcome.Stars).
		Msg("battle finished")

	return &update, nil
}

// armQuestionTimer starts the per-question countdown. The callback only
// applies when the round it was armed for is still current.
func (s *BattleService) armQuestionTimer(sess *battleSession) {
	sess.questionStart = time.Now()
	if sess.timer != nil {
		sess.timer.Stop()
	}

	armedRound := sess.rounds
	sess.timer = time.AfterFunc(game.QuestionTime, func() {
		s.expireQuestion(sess, armedRound)
	})
}

func (s *BattleService) expireQuestion(sess *battleSession, armedRound int) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	// An answer beat the timer; this expiry is for a round already gone.
	if sess.finished || sess.rounds != armedRound {
		return
	}

	round, err := sess.battle.Timeout()
	if err != nil {
		return
	}
	if _, err := s.afterEvent(sess, round); err != nil {
		log.Error().Err(err).Str("session", sess.id).Msg("failed to apply question timeout")
	}
}

func (s *BattleService) session(sessionID string, playerID int64) (*battleSession, error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok || sess.playerID != playerID {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// snapshot builds the client view. The session lock is held.
func (s *BattleService) snapshot(sess *battleSession) BattleSnapshot {
	b := sess.battle
	return BattleSnapshot{
		SessionID:  sess.id,
		Level:      b.Level,
		PlayerHP:   b.HP,
		EnemyHP:    b.EnemyHP,
		EnemyMaxHP: b.EnemyMaxHP,
		Score:      b.Score,
		Combo:      b.Combo,
		Question:   b.Current(),
		Options:    b.Options(),
		TimeLimit:  game.QuestionTime,
		Status:     b.State(),
	}
}
