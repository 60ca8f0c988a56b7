package game

import (
	"errors"
	"fmt"

	"hanziclash/internal/content"
	"hanziclash/internal/models"
)

// ErrNegativeScore rejects battle results that would corrupt totals.
var ErrNegativeScore = errors.New("score earned cannot be negative")

// XPThreshold returns the XP needed to clear the given level: a
// progressive curve of 1000, 1500, 2000, ...
func XPThreshold(xpLevel int) int {
	return 500 + xpLevel*500
}

// ProgressUpdate summarizes what ApplyResult changed.
type ProgressUpdate struct {
	LeveledUp       bool
	NewXPLevel      int
	NewAchievements []int
}

// ApplyResult folds one battle outcome into a player record. It is the
// single writer for progression state; the order of steps matters:
//
//  1. on a win, raise the level's stars and high score,
//  2. recompute the total score from all high scores,
//  3. accrue XP from the score (win or lose) and run the level-up loop,
//  4. merge the battle's wrong answers into the mistake book,
//  5. on a win, unlock the next level (monotonic, capped),
//  6. evaluate achievements against the updated record.
//
// The total score is always a full recompute, never an increment, so a
// correction to any single level's high score is reflected immediately.
func ApplyResult(p *models.Player, level, stars, score int, wrongIDs []int, won bool, battle Outcome) (ProgressUpdate, error) {
	if score < 0 {
		return ProgressUpdate{}, ErrNegativeScore
	}
	if level < 1 || level > content.TotalLevels {
		return ProgressUpdate{}, fmt.Errorf("level %d out of range [1, %d]", level, content.TotalLevels)
	}

	if won {
		if stars > p.StarsByLevel[level] {
			p.StarsByLevel[level] = stars
		}
		if score > p.HighScoreByLevel[level] {
			p.HighScoreByLevel[level] = score
		}
	}

	total := 0
	for _, s := range p.HighScoreByLevel {
		total += s
	}
	p.TotalScore = total

	update := ProgressUpdate{NewXPLevel: p.XPLevel}
	p.XP += score
	for p.XP >= XPThreshold(p.XPLevel) {
		p.XP -= XPThreshold(p.XPLevel)
		p.XPLevel++
		update.LeveledUp = true
	}
	update.NewXPLevel = p.XPLevel

	for _, id := range wrongIDs {
		if !p.HasMistake(id) {
			p.MistakeWordIDs = append(p.MistakeWordIDs, id)
		}
	}

	if won {
		next := level + 1
		if next > content.TotalLevels {
			next = content.TotalLevels
		}
		if next > p.MaxUnlockedLevel {
			p.MaxUnlockedLevel = next
		}
	}

	for _, a := range Achievements {
		if !p.HasAchievement(a.ID) && a.Unlocked(p, battle) {
			p.AchievementIDs = append(p.AchievementIDs, a.ID)
			update.NewAchievements = append(update.NewAchievements, a.ID)
		}
	}

	return update, nil
}

// RemoveMistake deletes one word from the mistake book after a correct
// practice answer. No score, XP or star effect. Reports whether the word
// was present.
func RemoveMistake(p *models.Player, wordID int) bool {
	for i, id := range p.MistakeWordIDs {
		if id == wordID {
			p.MistakeWordIDs = append(p.MistakeWordIDs[:i], p.MistakeWordIDs[i+1:]...)
			return true
		}
	}
	return false
}
