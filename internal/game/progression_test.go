package game

import (
	"testing"

	"hanziclash/internal/content"
	"hanziclash/internal/models"
)

func TestXPThreshold(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{level: 1, want: 1000},
		{level: 2, want: 1500},
		{level: 3, want: 2000},
		{level: 10, want: 5500},
	}
	for _, tt := range tests {
		if got := XPThreshold(tt.level); got != tt.want {
			t.Errorf("XPThreshold(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestApplyResultWin(t *testing.T) {
	p := models.NewPlayer("小明", "🐯")

	update, err := ApplyResult(p, 1, 3, 1200, nil, true, Outcome{Won: true, Stars: 3, Score: 1200})
	if err != nil {
		t.Fatalf("ApplyResult: %v", err)
	}

	if p.StarsByLevel[1] != 3 {
		t.Errorf("stars = %d, want 3", p.StarsByLevel[1])
	}
	if p.HighScoreByLevel[1] != 1200 || p.TotalScore != 1200 {
		t.Errorf("highscore=%d total=%d, want 1200/1200", p.HighScoreByLevel[1], p.TotalScore)
	}
	if p.MaxUnlockedLevel != 2 {
		t.Errorf("unlocked = %d, want 2", p.MaxUnlockedLevel)
	}

	// 1200 XP clears the level-1 threshold of 1000 with 200 left over.
	if !update.LeveledUp || p.XPLevel != 2 || p.XP != 200 {
		t.Errorf("leveledUp=%v xpLevel=%d xp=%d, want true/2/200", update.LeveledUp, p.XPLevel, p.XP)
	}
}

func TestApplyResultMultiLevelUp(t *testing.T) {
	p := models.NewPlayer("小红", "🐰")

	// 2700 = 1000 (level 1) + 1500 (level 2) + 200 remainder.
	_, err := ApplyResult(p, 1, 3, 2700, nil, true, Outcome{Won: true})
	if err != nil {
		t.Fatalf("ApplyResult: %v", err)
	}
	if p.XPLevel != 3 || p.XP != 200 {
		t.Errorf("xpLevel=%d xp=%d, want 3/200", p.XPLevel, p.XP)
	}
}

func TestApplyResultLoss(t *testing.T) {
	p := models.NewPlayer("小明", "🐯")

	_, err := ApplyResult(p, 1, 0, 300, []int{102, 105}, false, Outcome{})
	if err != nil {
		t.Fatalf("ApplyResult: %v", err)
	}

	// A loss earns XP and records mistakes, nothing else.
	if len(p.StarsByLevel) != 0 || p.TotalScore != 0 {
		t.Errorf("stars=%v total=%d, want empty/0 after a loss", p.StarsByLevel, p.TotalScore)
	}
	if p.MaxUnlockedLevel != 1 {
		t.Errorf("unlocked = %d, want unchanged 1", p.MaxUnlockedLevel)
	}
	if p.XP != 300 {
		t.Errorf("xp = %d, want 300", p.XP)
	}
	if len(p.MistakeWordIDs) != 2 {
		t.Errorf("mistakes = %v, want two entries", p.MistakeWordIDs)
	}
}

func TestApplyResultHighScoreIsMonotonic(t *testing.T) {
	p := models.NewPlayer("小明", "🐯")

	mustApply(t, p, 1, 3, 1000, true)
	mustApply(t, p, 1, 2, 600, true) // worse run
	if p.HighScoreByLevel[1] != 1000 || p.StarsByLevel[1] != 3 {
		t.Errorf("highscore=%d stars=%d, want best run kept (1000/3)",
			p.HighScoreByLevel[1], p.StarsByLevel[1])
	}
	if p.TotalScore != 1000 {
		t.Errorf("total = %d, want 1000", p.TotalScore)
	}
}

func TestTotalScoreIsSumOfHighScores(t *testing.T) {
	p := models.NewPlayer("小明", "🐯")

	mustApply(t, p, 1, 3, 1000, true)
	mustApply(t, p, 2, 2, 800, true)
	mustApply(t, p, 1, 3, 1500, true) // improves level 1

	if p.TotalScore != 2300 {
		t.Errorf("total = %d, want 2300", p.TotalScore)
	}

	sum := 0
	for _, s := range p.HighScoreByLevel {
		sum += s
	}
	if p.TotalScore != sum {
		t.Errorf("total %d diverged from high-score sum %d", p.TotalScore, sum)
	}
}

func TestUnlockIsMonotonicAndCapped(t *testing.T) {
	p := models.NewPlayer("小明", "🐯")
	p.MaxUnlockedLevel = 5

	// Replaying an old level never lowers the unlock.
	mustApply(t, p, 1, 3, 100, true)
	if p.MaxUnlockedLevel != 5 {
		t.Errorf("unlocked = %d, want 5", p.MaxUnlockedLevel)
	}

	// Beating the last level caps at the last level.
	p.MaxUnlockedLevel = content.TotalLevels
	mustApply(t, p, content.TotalLevels, 3, 100, true)
	if p.MaxUnlockedLevel != content.TotalLevels {
		t.Errorf("unlocked = %d, want cap %d", p.MaxUnlockedLevel, content.TotalLevels)
	}
}

func TestMistakeMergeKeepsSet(t *testing.T) {
	p := models.NewPlayer("小明", "🐯")
	p.MistakeWordIDs = []int{102}

	mustApplyWrong(t, p, []int{102, 103})
	if len(p.MistakeWordIDs) != 2 {
		t.Errorf("mistakes = %v, want {102, 103}", p.MistakeWordIDs)
	}
}

func TestRemoveMistake(t *testing.T) {
	p := models.NewPlayer("小明", "🐯")
	p.MistakeWordIDs = []int{102, 103, 104}

	if !RemoveMistake(p, 103) {
		t.Fatal("RemoveMistake(103) = false, want true")
	}
	if len(p.MistakeWordIDs) != 2 || p.HasMistake(103) {
		t.Errorf("mistakes = %v, want 103 gone", p.MistakeWordIDs)
	}
	if RemoveMistake(p, 999) {
		t.Error("RemoveMistake(999) = true for an absent word")
	}
}

func TestApplyResultRejectsBadInput(t *testing.T) {
	p := models.NewPlayer("小明", "🐯")

	if _, err := ApplyResult(p, 1, 3, -10, nil, true, Outcome{}); err != ErrNegativeScore {
		t.Errorf("negative score: err=%v, want ErrNegativeScore", err)
	}
	if _, err := ApplyResult(p, 0, 3, 10, nil, true, Outcome{}); err == nil {
		t.Error("level 0 accepted")
	}
	if _, err := ApplyResult(p, content.TotalLevels+1, 3, 10, nil, true, Outcome{}); err == nil {
		t.Error("out-of-range level accepted")
	}
}

func mustApply(t *testing.T, p *models.Player, level, stars, score int, won bool) {
	t.Helper()
	if _, err := ApplyResult(p, level, stars, score, nil, won, Outcome{Won: won}); err != nil {
		t.Fatalf("ApplyResult: %v", err)
	}
}

func mustApplyWrong(t *testing.T, p *models.Player, wrongIDs []int) {
	t.Helper()
	if _, err := ApplyResult(p, 1, 0, 0, wrongIDs, false, Outcome{}); err != nil {
		t.Fatalf("ApplyResult: %v", err)
	}
}
