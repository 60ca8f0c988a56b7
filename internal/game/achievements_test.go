package game

import (
	"testing"

	"hanziclash/internal/models"
)

func TestFirstWinAchievement(t *testing.T) {
	p := models.NewPlayer("小明", "🐯")

	update, err := ApplyResult(p, 1, 2, 100, nil, true, Outcome{Won: true, Stars: 2})
	if err != nil {
		t.Fatalf("ApplyResult: %v", err)
	}
	if !containsInt(update.NewAchievements, 1) {
		t.Errorf("new achievements = %v, want first-win (1)", update.NewAchievements)
	}
	if !p.HasAchievement(1) {
		t.Error("achievement 1 not recorded on the player")
	}
}

func TestAchievementsUnlockOnce(t *testing.T) {
	p := models.NewPlayer("小明", "🐯")

	mustApply(t, p, 1, 2, 100, true)
	update, err := ApplyResult(p, 2, 2, 100, nil, true, Outcome{Won: true})
	if err != nil {
		t.Fatalf("ApplyResult: %v", err)
	}
	if containsInt(update.NewAchievements, 1) {
		t.Error("first-win reported again on the second win")
	}
	if n := countInt(p.AchievementIDs, 1); n != 1 {
		t.Errorf("achievement 1 recorded %d times", n)
	}
}

func TestComboAchievementUsesBattleBest(t *testing.T) {
	p := models.NewPlayer("小明", "🐯")

	update, err := ApplyResult(p, 1, 0, 0, nil, false, Outcome{MaxCombo: 9})
	if err != nil {
		t.Fatalf("ApplyResult: %v", err)
	}
	if containsInt(update.NewAchievements, 2) {
		t.Error("combo achievement at 9, threshold is 10")
	}

	update, err = ApplyResult(p, 1, 0, 0, nil, false, Outcome{MaxCombo: 10})
	if err != nil {
		t.Fatalf("ApplyResult: %v", err)
	}
	if !containsInt(update.NewAchievements, 2) {
		t.Errorf("new achievements = %v, want combo master (2)", update.NewAchievements)
	}
}

func TestKindThresholds(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		prepare func(p *models.Player)
		battle  Outcome
		want    bool
	}{
		{
			name:    "total score below",
			id:      3,
			prepare: func(p *models.Player) { p.TotalScore = 9999 },
			want:    false,
		},
		{
			name:    "total score met",
			id:      3,
			prepare: func(p *models.Player) { p.TotalScore = 10000 },
			want:    true,
		},
		{
			name:    "perfect level",
			id:      4,
			prepare: func(p *models.Player) { p.StarsByLevel[7] = 3 },
			want:    true,
		},
		{
			name:    "two stars are not perfect",
			id:      4,
			prepare: func(p *models.Player) { p.StarsByLevel[7] = 2 },
			want:    false,
		},
		{
			name:    "xp level met",
			id:      5,
			prepare: func(p *models.Player) { p.XPLevel = 5 },
			want:    true,
		},
		{
			name:    "second world unlocked",
			id:      6,
			prepare: func(p *models.Player) { p.MaxUnlockedLevel = 11 },
			want:    true,
		},
		{
			name:    "still in first world",
			id:      6,
			prepare: func(p *models.Player) { p.MaxUnlockedLevel = 10 },
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := AchievementByID(tt.id)
			if !ok {
				t.Fatalf("achievement %d missing from catalog", tt.id)
			}
			p := models.NewPlayer("小明", "🐯")
			tt.prepare(p)
			if got := a.Unlocked(p, tt.battle); got != tt.want {
				t.Errorf("Unlocked = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := make(map[int]bool)
	for _, a := range Achievements {
		if seen[a.ID] {
			t.Errorf("duplicate achievement id %d", a.ID)
		}
		seen[a.ID] = true
		if a.Title == "" || a.Icon == "" {
			t.Errorf("achievement %d missing title or icon", a.ID)
		}
	}
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func countInt(s []int, v int) int {
	n := 0
	for _, x := range s {
		if x == v {
			n++
		}
	}
	return n
}
