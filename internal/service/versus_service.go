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
	"hanziclash/internal/models"
	"hanziclash/internal/repository"
	"hanziclash/internal/security"
)

// versusWordCount is how many words a duel draws from the pool. The
// round list wraps, so this only needs to cover variety, not length.
const versusWordCount = 30

// ErrSideTaken is returned for answers on behalf of side two when the
// computer is playing that side.
var ErrSideTaken = errors.New("side two is played by the computer")

// VersusService owns the live duel sessions. The starting player is
// side one; side two is either the computer opponent or a second kid
// sharing the screen. The engine is a pure value; match clocks, AI
// reaction scheduling and pause bookkeeping live here.
type VersusService struct {
	pool    *content.Pool
	players *repository.PlayerRepository
	results *repository.VersusRepository

	mu       sync.Mutex
	sessions map[string]*versusSession
}

type versusSession struct {
	mu sync.Mutex

	id       string
	playerID int64
	versus   *game.Versus

	// opponent is nil for a local two-player duel; then side two's
	// answers arrive over the same API as side one's.
	opponent *game.Opponent

	matchTimer *time.Timer
	aiTimer    *time.Timer
	deadline   time.Time
	remaining  time.Duration
	recorded   bool

	watchers map[chan VersusSnapshot]struct{}
}

// VersusSnapshot is the service-level view of a running duel.
type VersusSnapshot struct {
	SessionID string
	Mode      game.VersusMode
	Opponent  string
	Round     uint64
	Question  content.Word
	Options   []content.Word
	ScoreOne  int
	ScoreTwo  int
	Phase     game.VersusPhase
	Winner    game.VersusWinner
	Remaining time.Duration
}

// NewVersusService creates the duel session manager.
func NewVersusService(pool *content.Pool, players *repository.PlayerRepository, results *repository.VersusRepository) *VersusService {
	return &VersusService{
		pool:     pool,
		players:  players,
		results:  results,
		sessions: make(map[string]*versusSession),
	}
}

// StartVersus opens a duel. vsComputer picks the opponent: the AI on
// side two, or a second kid on the same screen. The word pool is drawn
// from the levels the starting player has already reached.
func (s *VersusService) StartVersus(playerID int64, mode game.VersusMode, vsComputer bool) (VersusSnapshot, error) {
	player, err := s.players.GetPlayerByID(playerID)
	if err != nil {
		return VersusSnapshot{}, fmt.Errorf("failed to load player: %w", err)
	}
	if player == nil {
		return VersusSnapshot{}, ErrPlayerNotFound
	}
	return s.start(player, mode, vsComputer)
}

func (s *VersusService) start(player *models.Player, mode game.VersusMode, vsComputer bool) (VersusSnapshot, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	words := s.pool.RandomItems(versusWordCount, 1, player.MaxUnlockedLevel, rng)
	versus, err := game.NewVersus(s.pool, words, mode, rng)
	if err != nil {
		return VersusSnapshot{}, err
	}

	sess := &versusSession{
		id:       security.GenerateSessionID(),
		playerID: player.ID,
		versus:   versus,
		watchers: make(map[chan VersusSnapshot]struct{}),
	}
	if vsComputer {
		sess.opponent = game.NewOpponent(mode, rng)
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if mode == game.ModeTimed {
		sess.deadline = time.Now().Add(game.MatchDuration)
		sess.matchTimer = time.AfterFunc(game.MatchDuration, func() {
			s.expireMatch(sess)
		})
	}
	s.scheduleAI(sess)

	log.Info().
		Str("session", sess.id).
		Int64("player", player.ID).
		Int("mode", int(mode)).
		Str("opponent", opponentName(sess)).
		Msg("versus started")

	return s.snapshot(sess), nil
}

// SubmitAnswer applies one side's answer for a round. seq must be the
// round the client was shown; answers for an advanced round are silent
// no-ops, mirroring the engine. Side two only accepts answers in a
// two-player duel; against the computer that seat is taken.
func (s *VersusService) SubmitAnswer(sessionID string, playerID int64, side game.Side, seq uint64, wordID int) (game.VersusAnswer, VersusSnapshot, error) {
	sess, err := s.session(sessionID, playerID)
	if err != nil {
		return game.VersusAnswer{}, VersusSnapshot{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if side == game.SideTwo && sess.opponent != nil {
		return game.VersusAnswer{}, VersusSnapshot{}, ErrSideTaken
	}

	res, err := sess.versus.Submit(side, seq, wordID)
	if err != nil {
		return game.VersusAnswer{}, VersusSnapshot{}, err
	}

	if res.Phase == game.VersusFinished {
		s.finish(sess)
	} else if res.Advanced {
		s.scheduleAI(sess)
		s.broadcast(sess)
	}

	return res, s.snapshot(sess), nil
}

// Subscribe registers a watcher for a duel's state changes, so a client
// can see the opponent move without polling. The returned cancel func
// must be called when the watcher goes away; the channel closes when
// the duel ends.
func (s *VersusService) Subscribe(sessionID string, playerID int64) (<-chan VersusSnapshot, func(), error) {
	sess, err := s.session(sessionID, playerID)
	if err != nil {
		return nil, nil, err
	}

	ch := make(chan VersusSnapshot, 8)
	sess.mu.Lock()
	sess.watchers[ch] = struct{}{}
	sess.mu.Unlock()

	cancel := func() {
		sess.mu.Lock()
		if _, ok := sess.watchers[ch]; ok {
			delete(sess.watchers, ch)
			close(ch)
		}
		sess.mu.Unlock()
	}
	return ch, cancel, nil
}

// broadcast pushes the current snapshot to every watcher. Slow watchers
// drop updates rather than block the game. Session lock held.
func (s *VersusService) broadcast(sess *versusSession) {
	if len(sess.watchers) == 0 {
		return
	}
	snap := s.snapshot(sess)
	for ch := range sess.watchers {
		select {
		case ch <- snap:
		default:
		}
	}
}

// Pause freezes the duel: the engine rejects answers, the match clock
// stops, and the pending AI answer is dropped.
func (s *VersusService) Pause(sessionID string, playerID int64) (VersusSnapshot, error) {
	sess, err := s.session(sessionID, playerID)
	if err != nil {
		return VersusSnapshot{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.versus.Phase() == game.VersusActive {
		sess.versus.Pause()
		if sess.matchTimer != nil {
			sess.matchTimer.Stop()
			sess.remaining = time.Until(sess.deadline)
		}
		if sess.aiTimer != nil {
			sess.aiTimer.Stop()
		}
		s.broadcast(sess)
	}
	return s.snapshot(sess), nil
}

// Resume continues a paused duel with the match clock where it stopped.
func (s *VersusService) Resume(sessionID string, playerID int64) (VersusSnapshot, error) {
	sess, err := s.session(sessionID, playerID)
	if err != nil {
		return VersusSnapshot{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.versus.Phase() == game.VersusPaused {
		sess.versus.Resume()
		if sess.versus.Mode == game.ModeTimed {
			sess.deadline = time.Now().Add(sess.remaining)
			sess.matchTimer = time.AfterFunc(sess.remaining, func() {
				s.expireMatch(sess)
			})
		}
		s.scheduleAI(sess)
		s.broadcast(sess)
	}
	return s.snapshot(sess), nil
}

// Cancel abandons a duel without recording a result.
func (s *VersusService) Cancel(sessionID string, playerID int64) error {
	sess, err := s.session(sessionID, playerID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	sess.recorded = true
	s.stopTimers(sess)
	for ch := range sess.watchers {
		delete(sess.watchers, ch)
		close(ch)
	}
	sess.mu.Unlock()

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	log.Info().Str("session", sessionID).Msg("versus cancelled")
	return nil
}

// scheduleAI arms the opponent's answer for the current round; a no-op
// for two-player duels. The callback carries the round it decided in;
// if the round advanced before the AI "reacted", the decision is
// discarded. Session lock held.
func (s *VersusService) scheduleAI(sess *versusSession) {
	if sess.opponent == nil {
		return
	}
	if sess.aiTimer != nil {
		sess.aiTimer.Stop()
	}

	seq := sess.versus.Round()
	delay := sess.opponent.ReactionDelay()
	sess.aiTimer = time.AfterFunc(delay, func() {
		s.answerAI(sess, seq)
	})
}

func (s *VersusService) answerAI(sess *versusSession, seq uint64) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.versus.Phase() != game.VersusActive || sess.versus.Round() != seq {
		return
	}

	pick := sess.opponent.Decide(sess.versus.Options(), sess.versus.Current())
	res, err := sess.versus.Submit(game.SideTwo, seq, pick.ID)
	if err != nil {
		return
	}

	if res.Phase == game.VersusFinished {
		s.finish(sess)
	} else {
		if res.Advanced {
			s.scheduleAI(sess)
		}
		s.broadcast(sess)
	}
	// A missed round leaves the AI spent until the human resolves it;
	// the advance from the human's path re-arms the next reaction.
}

// expireMatch ends a timed duel when the clock runs out.
func (s *VersusService) expireMatch(sess *versusSession) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.versus.Phase() != game.VersusActive {
		return
	}
	sess.versus.ExpireTime()
	s.finish(sess)
}

// finish records the duel result once and tears the session down. The
// session lock is held.
func (s *VersusService) finish(sess *versusSession) {
	if sess.recorded {
		return
	}
	sess.recorded = true
	s.stopTimers(sess)
	s.broadcast(sess)
	for ch := range sess.watchers {
		delete(sess.watchers, ch)
		close(ch)
	}

	result := &models.VersusResult{
		SessionID:   sess.id,
		Mode:        modeName(sess.versus.Mode),
		PlayerOneID: sess.playerID,
		ScoreOne:    sess.versus.Score(game.SideOne),
		ScoreTwo:    sess.versus.Score(game.SideTwo),
		Winner:      winnerName(sess.versus.Winner()),
		FinishedAt:  time.Now(),
	}
	if err := s.results.RecordResult(result); err != nil {
		log.Error().Err(err).Str("session", sess.id).Msg("failed to record versus result")
	}

	s.mu.Lock()
	delete(s.sessions, sess.id)
	s.mu.Unlock()

	log.Info().
		Str("session", sess.id).
		Int("score_one", result.ScoreOne).
		Int("score_two", result.ScoreTwo).
		Str("winner", result.Winner).
		Msg("versus finished")
}

func (s *VersusService) stopTimers(sess *versusSession) {
	if sess.matchTimer != nil {
		sess.matchTimer.Stop()
	}
	if sess.aiTimer != nil {
		sess.aiTimer.Stop()
	}
}

func (s *VersusService) session(sessionID string, playerID int64) (*versusSession, error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok || sess.playerID != playerID {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// snapshot builds the client view. Session lock held.
func (s *VersusService) snapshot(sess *versusSession) VersusSnapshot {
	v := sess.versus
	snap := VersusSnapshot{
		SessionID: sess.id,
		Mode:      v.Mode,
		Opponent:  opponentName(sess),
		Round:     v.Round(),
		Question:  v.Current(),
		Options:   v.Options(),
		ScoreOne:  v.Score(game.SideOne),
		ScoreTwo:  v.Score(game.SideTwo),
		Phase:     v.Phase(),
		Winner:    v.Winner(),
	}
	if v.Mode == game.ModeTimed && v.Phase() == game.VersusActive {
		snap.Remaining = time.Until(sess.deadline)
	}
	return snap
}

func opponentName(sess *versusSession) string {
	if sess.opponent != nil {
		return "computer"
	}
	return "human"
}

func modeName(mode game.VersusMode) string {
	if mode == game.ModeRace {
		return "race"
	}
	return "timed"
}

func winnerName(w game.VersusWinner) string {
	switch w {
	case game.WinnerSideOne:
		return "p1"
	case game.WinnerSideTwo:
		return "p2"
	default:
		return "draw"
	}
}
