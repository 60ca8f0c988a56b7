package game

import (
	"math/rand"
	"testing"
	"time"

	"hanziclash/internal/content"
)

func newTestBattle(t *testing.T, level int) *Battle {
	t.Helper()
	b, err := NewBattle(content.NewPool(), level, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewBattle(%d): %v", level, err)
	}
	return b
}

// answerWrong submits an option that is not the current word.
func answerWrong(t *testing.T, b *Battle) RoundResult {
	t.Helper()
	for _, opt := range b.Options() {
		if opt.ID != b.Current().ID {
			res, err := b.SubmitAnswer(opt.ID, time.Second)
			if err != nil {
				t.Fatalf("SubmitAnswer(wrong): %v", err)
			}
			return res
		}
	}
	t.Fatal("no wrong option available")
	return RoundResult{}
}

func answerRight(t *testing.T, b *Battle, elapsed time.Duration) RoundResult {
	t.Helper()
	res, err := b.SubmitAnswer(b.Current().ID, elapsed)
	if err != nil {
		t.Fatalf("SubmitAnswer(correct): %v", err)
	}
	return res
}

func TestNewBattleRejectsBadLevel(t *testing.T) {
	pool := content.NewPool()
	rng := rand.New(rand.NewSource(1))

	for _, level := range []int{0, -1, content.TotalLevels + 1} {
		if _, err := NewBattle(pool, level, rng); err == nil {
			t.Errorf("NewBattle(%d) should fail", level)
		}
	}
}

func TestThreeHeartsInvariant(t *testing.T) {
	// Two consecutive misses never end the battle, the third always does.
	b := newTestBattle(t, 1)

	res := answerWrong(t, b)
	if res.Status != StatusActive || b.HP != 66 {
		t.Fatalf("after 1 miss: status=%v hp=%d, want active/66", res.Status, b.HP)
	}
	res = answerWrong(t, b)
	if res.Status != StatusActive || b.HP != 32 {
		t.Fatalf("after 2 misses: status=%v hp=%d, want active/32", res.Status, b.HP)
	}
	res = answerWrong(t, b)
	if res.Status != StatusLost || b.HP != 0 {
		t.Fatalf("after 3 misses: status=%v hp=%d, want lost/0", res.Status, b.HP)
	}

	if _, err := b.SubmitAnswer(b.Current().ID, time.Second); err != ErrBattleOver {
		t.Errorf("submission after loss: err=%v, want ErrBattleOver", err)
	}
}

func TestWrongAnswerRetriesSameWord(t *testing.T) {
	b := newTestBattle(t, 1)
	before := b.Current().ID

	answerWrong(t, b)
	if b.Current().ID != before {
		t.Errorf("round advanced after a miss: %d -> %d", before, b.Current().ID)
	}

	// Repeated misses on the same word record its id once.
	answerWrong(t, b)
	out := failRemaining(t, b)
	if len(out.WrongIDs) != 1 || out.WrongIDs[0] != before {
		t.Errorf("WrongIDs = %v, want exactly [%d]", out.WrongIDs, before)
	}
}

// failRemaining misses until the battle is lost and returns the outcome.
func failRemaining(t *testing.T, b *Battle) Outcome {
	t.Helper()
	for b.State() == StatusActive {
		answerWrong(t, b)
	}
	out, err := b.Outcome()
	if err != nil {
		t.Fatalf("Outcome: %v", err)
	}
	return out
}

func TestTimeoutIsAMiss(t *testing.T) {
	b := newTestBattle(t, 1)
	word := b.Current().ID

	res, err := b.Timeout()
	if err != nil {
		t.Fatalf("Timeout: %v", err)
	}
	if res.Correct || res.Damage != MissDamage {
		t.Errorf("timeout result = %+v, want miss with damage %d", res, MissDamage)
	}
	if b.Combo != 0 || b.Mistakes != 1 {
		t.Errorf("combo=%d mistakes=%d after timeout, want 0/1", b.Combo, b.Mistakes)
	}
	if b.Current().ID != word {
		t.Error("timeout advanced the round")
	}
}

func TestHitDamageAndWin(t *testing.T) {
	// Level 1: enemy 40 HP, per-hit ceil(40/10*1.2) = 5, so 8 hits win.
	b := newTestBattle(t, 1)
	if got := b.HitDamage(); got != 5 {
		t.Fatalf("HitDamage = %d, want 5", got)
	}

	hits := 0
	for b.State() == StatusActive {
		answerRight(t, b, 25*time.Second) // no time bonus
		hits++
		if hits > 20 {
			t.Fatal("battle did not end")
		}
	}
	if hits != 8 {
		t.Errorf("won after %d hits, want 8", hits)
	}

	out, err := b.Outcome()
	if err != nil {
		t.Fatalf("Outcome: %v", err)
	}
	if !out.Won || out.Stars != 3 {
		t.Errorf("outcome = %+v, want flawless win with 3 stars", out)
	}
	if out.MaxCombo != 8 {
		t.Errorf("MaxCombo = %d, want 8", out.MaxCombo)
	}

	// Eight no-bonus hits with a growing combo multiplier, then the
	// full-health bonus: sum(round(100*(1+i/10))) + 100*5.
	wantScore := 100 + 110 + 120 + 130 + 140 + 150 + 160 + 170 + PlayerMaxHP*5
	if out.Score != wantScore {
		t.Errorf("Score = %d, want %d", out.Score, wantScore)
	}
}

func TestHitScore(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		combo   int
		want    int
	}{
		{name: "instant answer", elapsed: 0, combo: 0, want: 150},
		{name: "full bonus with combo", elapsed: 0, combo: 1, want: 165},
		{name: "five seconds", elapsed: 5 * time.Second, combo: 0, want: 125},
		{name: "bonus floor", elapsed: 10 * time.Second, combo: 0, want: 100},
		{name: "past the budget", elapsed: 30 * time.Second, combo: 0, want: 100},
		{name: "deep combo", elapsed: 10 * time.Second, combo: 5, want: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hitScore(tt.elapsed, tt.combo); got != tt.want {
				t.Errorf("hitScore(%v, %d) = %d, want %d", tt.elapsed, tt.combo, got, tt.want)
			}
		})
	}
}

func TestStarsFromMistakes(t *testing.T) {
	tests := []struct {
		name     string
		mistakes int
		want     int
	}{
		{name: "flawless", mistakes: 0, want: 3},
		{name: "one mistake", mistakes: 1, want: 2},
		{name: "two mistakes", mistakes: 2, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBattle(t, 1)
			for i := 0; i < tt.mistakes; i++ {
				answerWrong(t, b)
			}
			for b.State() == StatusActive {
				answerRight(t, b, time.Second)
			}
			out, _ := b.Outcome()
			if !out.Won || out.Stars != tt.want {
				t.Errorf("won=%v stars=%d, want win with %d stars", out.Won, out.Stars, tt.want)
			}
		})
	}
}

func TestWinUnreachableWithThreeMistakes(t *testing.T) {
	// The third miss is always fatal, so a win with >=3 mistakes cannot
	// exist under the HP model regardless of interleaved hits.
	b := newTestBattle(t, 4)

	answerWrong(t, b)
	answerRight(t, b, time.Second)
	answerWrong(t, b)
	answerRight(t, b, time.Second)

	res := answerWrong(t, b)
	if res.Status != StatusLost {
		t.Fatalf("third miss left status %v, want lost", res.Status)
	}
	if b.Mistakes != 3 {
		t.Fatalf("mistakes = %d, want 3", b.Mistakes)
	}
}

func TestComboResetOnMiss(t *testing.T) {
	b := newTestBattle(t, 2)

	answerRight(t, b, time.Second)
	answerRight(t, b, time.Second)
	if b.Combo != 2 {
		t.Fatalf("combo = %d after two hits, want 2", b.Combo)
	}

	answerWrong(t, b)
	if b.Combo != 0 {
		t.Errorf("combo = %d after miss, want 0", b.Combo)
	}
	if b.MaxCombo != 2 {
		t.Errorf("maxCombo = %d, want 2", b.MaxCombo)
	}
}

func TestUnknownOptionRejected(t *testing.T) {
	b := newTestBattle(t, 1)
	if _, err := b.SubmitAnswer(999999, time.Second); err != ErrUnknownOption {
		t.Errorf("err = %v, want ErrUnknownOption", err)
	}
}

func TestLethalDamageAlwaysReachable(t *testing.T) {
	// Per-hit damage is ceil(12% of max HP), so nine hits cover any
	// enemy. With ten words per level the list can never run out first.
	for level := 1; level <= content.TotalLevels; level++ {
		maxHP, err := content.EnemyMaxHP(level)
		if err != nil {
			t.Fatalf("EnemyMaxHP(%d): %v", level, err)
		}
		b := newTestBattle(t, level)
		if hits := (maxHP + b.HitDamage() - 1) / b.HitDamage(); hits > content.ItemsPerLevel {
			t.Errorf("level %d needs %d hits for %d HP, more than %d words",
				level, hits, maxHP, content.ItemsPerLevel)
		}
	}
}
