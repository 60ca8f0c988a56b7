package game

import (
	"math/rand"

	"hanziclash/internal/content"
)

// OptionCount is the size of a multiple-choice set: the target plus three
// distractors.
const OptionCount = 4

// maxConfusableDistractors caps how many confusable-group words may appear
// as distractors when the target itself is outside the group. 他/她/它 all
// read "tā"; more than one of them next to an unrelated target makes the
// question unanswerable by ear.
const maxConfusableDistractors = 1

// GenerateOptions builds the multiple-choice set for a target word: the
// target plus three distractors drawn from the target's level, widened to
// the whole pool when the level cannot supply three. The returned slice is
// in display order (shuffled).
//
// Distractor rules for the confusable group:
//   - target in the group: every other group member is excluded outright,
//   - target outside the group: at most one group member is admitted.
//
// With the fixed content set the pool always yields three distractors; if
// it ever cannot, the set is returned short rather than failing.
func GenerateOptions(pool *content.Pool, target content.Word, rng *rand.Rand) []content.Word {
	excluded := make(map[string]bool)
	if content.IsConfusable(target.Text) {
		for _, c := range content.ConfusableGroup {
			if c != target.Text {
				excluded[c] = true
			}
		}
	}

	candidates := optionCandidates(pool, target, excluded, true)
	if len(candidates) < OptionCount-1 {
		candidates = optionCandidates(pool, target, excluded, false)
	}
	candidates = shuffleWords(candidates, rng)

	// The word table wraps across levels, so the same text can carry
	// several ids. Dedupe on text or a choice could appear twice.
	seen := map[string]bool{target.Text: true}
	distractors := make([]content.Word, 0, OptionCount-1)
	confusablesAdmitted := 0
	for _, w := range candidates {
		if len(distractors) >= OptionCount-1 {
			break
		}
		if seen[w.Text] {
			continue
		}
		if !content.IsConfusable(target.Text) && content.IsConfusable(w.Text) {
			if confusablesAdmitted >= maxConfusableDistractors {
				continue
			}
			confusablesAdmitted++
		}
		seen[w.Text] = true
		distractors = append(distractors, w)
	}

	return shuffleWords(append(distractors, target), rng)
}

// optionCandidates collects distractor candidates, either from the
// target's own level or from the entire pool.
func optionCandidates(pool *content.Pool, target content.Word, excluded map[string]bool, sameLevelOnly bool) []content.Word {
	var out []content.Word
	for _, w := range pool.AllItems() {
		if w.ID == target.ID || excluded[w.Text] {
			continue
		}
		if sameLevelOnly && w.Level != target.Level {
			continue
		}
		out = append(out, w)
	}
	return out
}
