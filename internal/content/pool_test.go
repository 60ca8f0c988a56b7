package content

import (
	"math/rand"
	"testing"
)

func TestPoolShape(t *testing.T) {
	p := NewPool()

	if got := len(p.AllItems()); got != TotalLevels*ItemsPerLevel {
		t.Fatalf("AllItems() = %d words, want %d", got, TotalLevels*ItemsPerLevel)
	}

	seen := make(map[int]bool)
	for _, w := range p.AllItems() {
		if seen[w.ID] {
			t.Errorf("duplicate word id %d", w.ID)
		}
		seen[w.ID] = true

		wantLevel := w.ID / 100
		wantOrdinal := w.ID % 100
		if w.Level != wantLevel {
			t.Errorf("word %d: level %d does not match id encoding %d", w.ID, w.Level, wantLevel)
		}
		if wantOrdinal < 0 || wantOrdinal >= ItemsPerLevel {
			t.Errorf("word %d: ordinal %d out of range", w.ID, wantOrdinal)
		}
		if w.Text == "" || w.Meaning == "" {
			t.Errorf("word %d: empty text or meaning", w.ID)
		}
	}
}

func TestLevelItems(t *testing.T) {
	p := NewPool()

	tests := []struct {
		name    string
		level   int
		wantErr bool
	}{
		{name: "first level", level: 1},
		{name: "last level", level: TotalLevels},
		{name: "level zero", level: 0, wantErr: true},
		{name: "past the end", level: TotalLevels + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := p.LevelItems(tt.level)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("LevelItems(%d): %v", tt.level, err)
			}
			if len(words) != ItemsPerLevel {
				t.Fatalf("LevelItems(%d) = %d words, want %d", tt.level, len(words), ItemsPerLevel)
			}
			for _, w := range words {
				if w.Level != tt.level {
					t.Errorf("word %d has level %d, want %d", w.ID, w.Level, tt.level)
				}
			}
		})
	}
}

func TestEnemyMaxHP(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{level: 1, want: 40},
		{level: 10, want: 85},
		{level: 11, want: 80},
		{level: 20, want: 125},
		{level: 21, want: 120},
		{level: 40, want: 205},
	}

	for _, tt := range tests {
		got, err := EnemyMaxHP(tt.level)
		if err != nil {
			t.Fatalf("EnemyMaxHP(%d): %v", tt.level, err)
		}
		if got != tt.want {
			t.Errorf("EnemyMaxHP(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}

	if _, err := EnemyMaxHP(0); err == nil {
		t.Error("EnemyMaxHP(0) should fail")
	}
	if _, err := EnemyMaxHP(TotalLevels + 1); err == nil {
		t.Error("EnemyMaxHP past the end should fail")
	}
}

func TestRandomItemsRange(t *testing.T) {
	p := NewPool()
	rng := rand.New(rand.NewSource(1))

	words := p.RandomItems(15, 3, 5, rng)
	if len(words) != 15 {
		t.Fatalf("RandomItems returned %d words, want 15", len(words))
	}
	seen := make(map[int]bool)
	for _, w := range words {
		if w.Level < 3 || w.Level > 5 {
			t.Errorf("word %d from level %d, want level in [3,5]", w.ID, w.Level)
		}
		if seen[w.ID] {
			t.Errorf("duplicate word %d", w.ID)
		}
		seen[w.ID] = true
	}

	// Asking for more than the range holds returns the whole range.
	all := p.RandomItems(100, 1, 2, rng)
	if len(all) != 2*ItemsPerLevel {
		t.Errorf("RandomItems over-ask returned %d, want %d", len(all), 2*ItemsPerLevel)
	}
}
