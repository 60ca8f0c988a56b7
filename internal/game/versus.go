package game

import (
	"errors"
	"math/rand"
	"time"

	"hanziclash/internal/content"
)

// VersusMode selects the win condition of a duel.
type VersusMode int

const (
	// ModeTimed ends the duel after MatchDuration; most correct answers
	// wins, equal counts draw.
	ModeTimed VersusMode = iota
	// ModeRace ends the duel as soon as one side reaches RaceTarget
	// correct answers.
	ModeRace
)

const (
	// MatchDuration is the timed-mode match length.
	MatchDuration = 60 * time.Second
	// RaceTarget is the race-mode winning score.
	RaceTarget = 10
)

// Side identifies one of the two combatants.
type Side int

const (
	SideOne Side = iota
	SideTwo
)

// VersusPhase is the duel state machine state.
type VersusPhase int

const (
	VersusActive VersusPhase = iota
	VersusPaused
	VersusFinished
)

// VersusWinner is the terminal verdict.
type VersusWinner int

const (
	WinnerNone VersusWinner = iota
	WinnerSideOne
	WinnerSideTwo
	WinnerDraw
)

var (
	// ErrVersusOver is returned for submissions to a finished duel.
	ErrVersusOver = errors.New("versus session already finished")
	// ErrVersusPaused is returned while the duel is paused.
	ErrVersusPaused = errors.New("versus session is paused")
)

// Versus is the two-party duel state machine. Both sides answer the same
// word each round; rounds are identified by a sequence number so that late
// answers and late AI decisions for an already-advanced round are no-ops
// rather than double scores.
//
// Like Battle, Versus is a pure value. Match timing, AI scheduling and
// pause bookkeeping belong to the service layer; the engine only needs to
// be told when the clock has run out (ExpireTime).
type Versus struct {
	Mode VersusMode

	words   []content.Word
	index   int
	seq     uint64
	options []content.Word

	scores [2]int

	phase  VersusPhase
	winner VersusWinner

	pool *content.Pool
	rng  *rand.Rand
}

// VersusAnswer reports the effect of one submission.
type VersusAnswer struct {
	Correct  bool
	Scored   bool
	Advanced bool
	Phase    VersusPhase
	Winner   VersusWinner
}

// NewVersus starts a duel over the given word pool.
func NewVersus(pool *content.Pool, words []content.Word, mode VersusMode, rng *rand.Rand) (*Versus, error) {
	if len(words) == 0 {
		return nil, errors.New("versus: empty word list")
	}
	v := &Versus{
		Mode:  mode,
		words: words,
		pool:  pool,
		rng:   rng,
	}
	v.options = GenerateOptions(pool, v.Current(), rng)
	return v, nil
}

// Current returns the shared word of the current round.
func (v *Versus) Current() content.Word {
	return v.words[v.index]
}

// Options returns the current multiple-choice set, shared by both sides.
func (v *Versus) Options() []content.Word {
	return v.options
}

// Round returns the current round sequence number. Submissions must carry
// the sequence they are answering.
func (v *Versus) Round() uint64 {
	return v.seq
}

// Score returns a side's correct-answer count.
func (v *Versus) Score(side Side) int {
	return v.scores[side]
}

// Phase returns the duel state.
func (v *Versus) Phase() VersusPhase {
	return v.phase
}

// Winner returns the verdict; WinnerNone until the duel finishes.
func (v *Versus) Winner() VersusWinner {
	return v.winner
}

// Submit applies one answer from a side for round seq. A stale seq means
// the round has advanced under the answer and is silently ignored. A miss
// does not lock the side out: either side may keep trying the same round
// until someone scores, and only a score moves the duel on.
func (v *Versus) Submit(side Side, seq uint64, wordID int) (VersusAnswer, error) {
	switch v.phase {
	case VersusFinished:
		return VersusAnswer{}, ErrVersusOver
	case VersusPaused:
		return VersusAnswer{}, ErrVersusPaused
	}
	if seq != v.seq {
		return VersusAnswer{Phase: v.phase, Winner: v.winner}, nil
	}

	if wordID != v.Current().ID {
		return VersusAnswer{Phase: v.phase, Winner: v.winner}, nil
	}

	v.scores[side]++
	res := VersusAnswer{Correct: true, Scored: true}

	if v.Mode == ModeRace && v.scores[side] >= RaceTarget {
		v.phase = VersusFinished
		if side == SideOne {
			v.winner = WinnerSideOne
		} else {
			v.winner = WinnerSideTwo
		}
	} else {
		v.advance()
		res.Advanced = true
	}

	res.Phase = v.phase
	res.Winner = v.winner
	return res, nil
}

// advance moves to the next round, wrapping over the word list.
func (v *Versus) advance() {
	v.index = (v.index + 1) % len(v.words)
	v.seq++
	v.options = GenerateOptions(v.pool, v.Current(), v.rng)
}

// ExpireTime ends a timed duel. Called by the service when the match
// clock runs out; a no-op for race mode or an already-finished duel.
func (v *Versus) ExpireTime() {
	if v.Mode != ModeTimed || v.phase == VersusFinished {
		return
	}
	v.phase = VersusFinished
	switch {
	case v.scores[SideOne] > v.scores[SideTwo]:
		v.winner = WinnerSideOne
	case v.scores[SideTwo] > v.scores[SideOne]:
		v.winner = WinnerSideTwo
	default:
		v.winner = WinnerDraw
	}
}

// Pause suspends the duel. Submissions and timers must hold until Resume.
func (v *Versus) Pause() {
	if v.phase == VersusActive {
		v.phase = VersusPaused
	}
}

// Resume continues a paused duel exactly where it stopped.
func (v *Versus) Resume() {
	if v.phase == VersusPaused {
		v.phase = VersusActive
	}
}
