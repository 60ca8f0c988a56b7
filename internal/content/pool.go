// Package content holds the fixed vocabulary set the game is played over:
// 40 levels of 10 words each, grouped into 4 themed worlds. The pool is
// built once at startup and is read-only afterwards.
package content

import (
	"fmt"
	"math/rand"
	"strings"
)

const (
	// ItemsPerLevel is the number of words in each level block.
	ItemsPerLevel = 10
	// LevelsPerWorld is the number of levels in each world.
	LevelsPerWorld = 10
	// TotalLevels is the total number of playable levels.
	TotalLevels = 40
)

// Word is a single vocabulary item. Immutable once the pool is built.
// ID encodes the word's position: level*100 + ordinal within the level.
type Word struct {
	ID      int
	Text    string
	Meaning string
	Level   int
}

// ConfusableGroup lists words whose pronunciation is identical (all "tā").
// The option generator treats these specially so a question never shows
// several same-sounding choices, see game.GenerateOptions.
var ConfusableGroup = []string{"他", "她", "它"}

// Pool is the full, ordered word set partitioned into fixed-size levels.
type Pool struct {
	words   []Word
	byID    map[int]Word
	byLevel map[int][]Word
}

// NewPool builds the pool from the raw word table. Levels are cut from the
// table in order; the table wraps around when shorter than the level plan,
// so higher levels revisit earlier words under new ids.
func NewPool() *Pool {
	p := &Pool{
		byID:    make(map[int]Word),
		byLevel: make(map[int][]Word),
	}

	for level := 1; level <= TotalLevels; level++ {
		start := (level - 1) * ItemsPerLevel
		for q := 0; q < ItemsPerLevel; q++ {
			raw := rawWords[(start+q)%len(rawWords)]
			text, meaning, _ := strings.Cut(raw, "|")

			w := Word{
				ID:      level*100 + q,
				Text:    text,
				Meaning: meaning,
				Level:   level,
			}
			p.words = append(p.words, w)
			p.byID[w.ID] = w
			p.byLevel[level] = append(p.byLevel[level], w)
		}
	}

	return p
}

// AllItems returns every word in the pool, in level order.
// Callers must not modify the returned slice.
func (p *Pool) AllItems() []Word {
	return p.words
}

// LevelItems returns the 10 words of the given level.
func (p *Pool) LevelItems(level int) ([]Word, error) {
	if level < 1 || level > TotalLevels {
		return nil, fmt.Errorf("level %d out of range [1, %d]", level, TotalLevels)
	}
	return p.byLevel[level], nil
}

// ItemByID looks up a word by its id.
func (p *Pool) ItemByID(id int) (Word, bool) {
	w, ok := p.byID[id]
	return w, ok
}

// RandomItems draws n distinct words from the levels in [rangeStart,
// rangeEnd], shuffled with the given source. Used to build versus word
// pools. Returns fewer than n only if the range itself is smaller.
func (p *Pool) RandomItems(n, rangeStart, rangeEnd int, rng *rand.Rand) []Word {
	var candidates []Word
	for _, w := range p.words {
		if w.Level >= rangeStart && w.Level <= rangeEnd {
			candidates = append(candidates, w)
		}
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n]
}

// IsConfusable reports whether the word belongs to the confusable group.
func IsConfusable(text string) bool {
	for _, c := range ConfusableGroup {
		if c == text {
			return true
		}
	}
	return false
}
