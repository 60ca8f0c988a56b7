package game

import (
	"math/rand"
	"time"

	"hanziclash/internal/content"
)

// Opponent AI reaction window, matching a quick human reader.
const (
	minReaction = 1500 * time.Millisecond
	maxReaction = 3500 * time.Millisecond
)

// Opponent is the stochastic decision model for computer-controlled
// versus play. It picks the correct option with fixed probability and a
// uniformly random wrong option otherwise.
type Opponent struct {
	accuracy float64
	rng      *rand.Rand
}

// NewOpponent builds an AI for the given duel mode. Race mode plays a
// little sloppier so a practiced kid can outrun it.
func NewOpponent(mode VersusMode, rng *rand.Rand) *Opponent {
	accuracy := 0.85
	if mode == ModeRace {
		accuracy = 0.80
	}
	return &Opponent{accuracy: accuracy, rng: rng}
}

// ReactionDelay draws the time the AI "thinks" before answering,
// uniformly within the reaction window.
func (o *Opponent) ReactionDelay() time.Duration {
	return minReaction + time.Duration(o.rng.Int63n(int64(maxReaction-minReaction)))
}

// Decide picks an answer from the option set. The caller is responsible
// for discarding decisions whose round has already been resolved.
func (o *Opponent) Decide(options []content.Word, target content.Word) content.Word {
	if o.rng.Float64() < o.accuracy {
		for _, w := range options {
			if w.ID == target.ID {
				return w
			}
		}
	}

	var wrong []content.Word
	for _, w := range options {
		if w.ID != target.ID {
			wrong = append(wrong, w)
		}
	}
	if len(wrong) == 0 {
		return options[0]
	}
	return wrong[o.rng.Intn(len(wrong))]
}
