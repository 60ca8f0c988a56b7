package game

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"hanziclash/internal/content"
)

// Battle tuning constants. Player health and miss damage are chosen so
// that three consecutive misses (34*3=102) always defeat a full-health
// player while two (68) never do.
const (
	PlayerMaxHP  = 100
	MissDamage   = 34
	QuestionTime = 20 * time.Second

	baseHitScore   = 100
	maxTimeBonus   = 50
	comboScoreStep = 0.1
	winHPBonus     = 5
)

// Status is the battle state machine state.
type Status int

const (
	StatusActive Status = iota
	StatusWon
	StatusLost
)

var (
	// ErrBattleOver is returned when an event reaches a finished battle.
	ErrBattleOver = errors.New("battle already finished")
	// ErrUnknownOption is returned when the submitted word id is not one
	// of the current options.
	ErrUnknownOption = errors.New("answer is not among the current options")
)

// Battle is the single-player combat state machine. It is a pure value:
// timers, audio and persistence live in the service layer, which feeds the
// battle discrete events (SubmitAnswer, Timeout) one at a time.
type Battle struct {
	Level      int
	EnemyMaxHP int

	HP       int
	EnemyHP  int
	Score    int
	Combo    int
	MaxCombo int
	Mistakes int

	status   Status
	items    []content.Word
	index    int
	options  []content.Word
	wrongIDs map[int]struct{}

	pool *content.Pool
	rng  *rand.Rand
}

// RoundResult describes the effect of one answer or timeout.
type RoundResult struct {
	Correct    bool
	Damage     int
	ScoreDelta int
	Status     Status
}

// Outcome is the terminal summary handed to the progression layer.
type Outcome struct {
	Won      bool
	Stars    int
	Score    int
	MaxCombo int
	WrongIDs []int
}

// NewBattle starts a battle for a level. The level's words are shuffled
// once; a wrong answer repeats the current word, a correct answer advances
// (wrapping, so lethal damage is always reachable).
func NewBattle(pool *content.Pool, level int, rng *rand.Rand) (*Battle, error) {
	items, err := pool.LevelItems(level)
	if err != nil {
		return nil, fmt.Errorf("start battle: %w", err)
	}
	enemyHP, err := content.EnemyMaxHP(level)
	if err != nil {
		return nil, fmt.Errorf("start battle: %w", err)
	}

	b := &Battle{
		Level:      level,
		EnemyMaxHP: enemyHP,
		HP:         PlayerMaxHP,
		EnemyHP:    enemyHP,
		items:      shuffleWords(items, rng),
		wrongIDs:   make(map[int]struct{}),
		pool:       pool,
		rng:        rng,
	}
	b.options = GenerateOptions(pool, b.Current(), rng)
	return b, nil
}

// Status returns the battle state.
func (b *Battle) State() Status {
	return b.status
}

// Current returns the word being asked this round.
func (b *Battle) Current() content.Word {
	return b.items[b.index%len(b.items)]
}

// Options returns the current multiple-choice set in display order.
func (b *Battle) Options() []content.Word {
	return b.options
}

// HitDamage is the fixed damage per correct answer: 12% of the enemy's
// max health, rounded up, so nine hits always suffice for a 10-word level.
func (b *Battle) HitDamage() int {
	return int(math.Ceil(float64(b.EnemyMaxHP) / 10 * 1.2))
}

// SubmitAnswer applies one answer. elapsed is how long the player took;
// anything at or past the question budget earns no time bonus.
func (b *Battle) SubmitAnswer(wordID int, elapsed time.Duration) (RoundResult, error) {
	if b.status != StatusActive {
		return RoundResult{}, ErrBattleOver
	}
	if !b.optionOffered(wordID) {
		return RoundResult{}, ErrUnknownOption
	}

	if wordID == b.Current().ID {
		return b.applyHit(elapsed), nil
	}
	return b.applyMiss(), nil
}

// Timeout expires the current question: an automatic miss with no bonus.
func (b *Battle) Timeout() (RoundResult, error) {
	if b.status != StatusActive {
		return RoundResult{}, ErrBattleOver
	}
	return b.applyMiss(), nil
}

func (b *Battle) applyHit(elapsed time.Duration) RoundResult {
	damage := b.HitDamage()
	b.EnemyHP -= damage
	if b.EnemyHP < 0 {
		b.EnemyHP = 0
	}

	delta := hitScore(elapsed, b.Combo)
	b.Score += delta
	b.Combo++
	if b.Combo > b.MaxCombo {
		b.MaxCombo = b.Combo
	}

	if b.EnemyHP == 0 {
		b.status = StatusWon
		b.Score += b.HP * winHPBonus
	} else {
		b.index++
		b.options = GenerateOptions(b.pool, b.Current(), b.rng)
	}

	return RoundResult{Correct: true, Damage: damage, ScoreDelta: delta, Status: b.status}
}

func (b *Battle) applyMiss() RoundResult {
	b.HP -= MissDamage
	if b.HP < 0 {
		b.HP = 0
	}
	b.Combo = 0
	b.Mistakes++
	b.wrongIDs[b.Current().ID] = struct{}{}

	if b.HP == 0 {
		b.status = StatusLost
	} else {
		// The same word is asked again with a fresh option set.
		b.options = GenerateOptions(b.pool, b.Current(), b.rng)
	}

	return RoundResult{Correct: false, Damage: MissDamage, Status: b.status}
}

// hitScore computes the score for one correct answer. combo is the count
// of consecutive hits before this one.
func hitScore(elapsed time.Duration, combo int) int {
	bonus := maxTimeBonus - int(math.Floor(elapsed.Seconds()*5))
	if bonus < 0 {
		bonus = 0
	}
	return int(math.Round(float64(baseHitScore+bonus) * (1 + float64(combo)*comboScoreStep)))
}

// Outcome summarizes a finished battle. Stars: 3 for a flawless win, 2 for
// one or two mistakes, 1 otherwise; 0 on a loss.
func (b *Battle) Outcome() (Outcome, error) {
	if b.status == StatusActive {
		return Outcome{}, errors.New("battle still in progress")
	}

	out := Outcome{
		Won:      b.status == StatusWon,
		Score:    b.Score,
		MaxCombo: b.MaxCombo,
	}
	for id := range b.wrongIDs {
		out.WrongIDs = append(out.WrongIDs, id)
	}

	if out.Won {
		switch {
		case b.Mistakes == 0:
			out.Stars = 3
		case b.Mistakes <= 2:
			out.Stars = 2
		default:
			out.Stars = 1
		}
	}
	return out, nil
}

func (b *Battle) optionOffered(wordID int) bool {
	for _, w := range b.options {
		if w.ID == wordID {
			return true
		}
	}
	return false
}
