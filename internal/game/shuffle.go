package game

import (
	"math/rand"

	"hanziclash/internal/content"
)

// shuffleWords shuffles a copy of the slice with Fisher-Yates and returns
// it, leaving the input untouched.
func shuffleWords(words []content.Word, rng *rand.Rand) []content.Word {
	out := make([]content.Word, len(words))
	copy(out, words)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
