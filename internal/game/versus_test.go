package game

import (
	"math/rand"
	"testing"

	"hanziclash/internal/content"
)

func newTestVersus(t *testing.T, mode VersusMode) *Versus {
	t.Helper()
	pool := content.NewPool()
	rng := rand.New(rand.NewSource(11))
	words := pool.RandomItems(20, 1, 10, rng)
	v, err := NewVersus(pool, words, mode, rng)
	if err != nil {
		t.Fatalf("NewVersus: %v", err)
	}
	return v
}

func submitRight(t *testing.T, v *Versus, side Side) VersusAnswer {
	t.Helper()
	res, err := v.Submit(side, v.Round(), v.Current().ID)
	if err != nil {
		t.Fatalf("Submit(correct): %v", err)
	}
	return res
}

func submitWrong(t *testing.T, v *Versus, side Side) VersusAnswer {
	t.Helper()
	for _, opt := range v.Options() {
		if opt.ID != v.Current().ID {
			res, err := v.Submit(side, v.Round(), opt.ID)
			if err != nil {
				t.Fatalf("Submit(wrong): %v", err)
			}
			return res
		}
	}
	t.Fatal("no wrong option available")
	return VersusAnswer{}
}

func TestVersusRaceToTarget(t *testing.T) {
	v := newTestVersus(t, ModeRace)

	for i := 0; i < RaceTarget-1; i++ {
		res := submitRight(t, v, SideOne)
		if !res.Scored || !res.Advanced || res.Phase != VersusActive {
			t.Fatalf("answer %d: %+v, want scored+advanced while active", i+1, res)
		}
	}

	res := submitRight(t, v, SideOne)
	if res.Phase != VersusFinished || res.Winner != WinnerSideOne {
		t.Fatalf("winning answer: %+v, want finished with side one winning", res)
	}
	if res.Advanced {
		t.Error("winning answer advanced the round")
	}
	if v.Score(SideOne) != RaceTarget {
		t.Errorf("score = %d, want %d", v.Score(SideOne), RaceTarget)
	}

	if _, err := v.Submit(SideTwo, v.Round(), v.Current().ID); err != ErrVersusOver {
		t.Errorf("submission after finish: err=%v, want ErrVersusOver", err)
	}
}

func TestVersusOneScorePerRound(t *testing.T) {
	v := newTestVersus(t, ModeTimed)
	seq := v.Round()
	word := v.Current().ID

	res := submitRight(t, v, SideOne)
	if !res.Scored || !res.Advanced {
		t.Fatalf("first correct answer: %+v, want scored+advanced", res)
	}

	// Side two's answer for the old round arrives after the advance.
	late, err := v.Submit(SideTwo, seq, word)
	if err != nil {
		t.Fatalf("late submit: %v", err)
	}
	if late.Scored {
		t.Error("stale-round answer scored")
	}
	if v.Score(SideTwo) != 0 {
		t.Errorf("side two score = %d, want 0", v.Score(SideTwo))
	}
}

func TestVersusMissThenRetryScores(t *testing.T) {
	v := newTestVersus(t, ModeTimed)
	seq := v.Round()

	res := submitWrong(t, v, SideOne)
	if res.Scored || res.Advanced {
		t.Fatalf("wrong answer: %+v, want neither score nor advance", res)
	}
	if v.Round() != seq {
		t.Fatalf("round = %d after a miss, want %d", v.Round(), seq)
	}

	// A miss does not spend the round: the same side may answer again.
	retry := submitRight(t, v, SideOne)
	if !retry.Scored || !retry.Advanced {
		t.Fatalf("correct retry: %+v, want scored+advanced", retry)
	}
	if v.Score(SideOne) != 1 {
		t.Errorf("score = %d after retry, want 1", v.Score(SideOne))
	}
}

func TestVersusMissesNeverAdvanceRound(t *testing.T) {
	v := newTestVersus(t, ModeTimed)
	seq := v.Round()
	word := v.Current().ID

	submitWrong(t, v, SideOne)
	res := submitWrong(t, v, SideTwo)
	if res.Advanced {
		t.Fatal("round advanced without anyone scoring")
	}
	if v.Round() != seq || v.Current().ID != word {
		t.Errorf("round/word = %d/%d, want unchanged %d/%d",
			v.Round(), v.Current().ID, seq, word)
	}

	// The round stays open until someone takes it.
	if res := submitRight(t, v, SideTwo); !res.Scored || !res.Advanced {
		t.Fatalf("scoring answer after misses: %+v, want scored+advanced", res)
	}
	if v.Score(SideOne) != 0 || v.Score(SideTwo) != 1 {
		t.Errorf("scores = %d/%d, want 0/1", v.Score(SideOne), v.Score(SideTwo))
	}
}

func TestVersusTimedVerdict(t *testing.T) {
	tests := []struct {
		name     string
		one, two int
		want     VersusWinner
	}{
		{name: "side one ahead", one: 5, two: 3, want: WinnerSideOne},
		{name: "side two ahead", one: 2, two: 6, want: WinnerSideTwo},
		{name: "draw", one: 4, two: 4, want: WinnerDraw},
		{name: "scoreless draw", one: 0, two: 0, want: WinnerDraw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestVersus(t, ModeTimed)
			for i := 0; i < tt.one; i++ {
				submitRight(t, v, SideOne)
			}
			for i := 0; i < tt.two; i++ {
				submitRight(t, v, SideTwo)
			}
			v.ExpireTime()
			if v.Phase() != VersusFinished || v.Winner() != tt.want {
				t.Errorf("phase=%v winner=%v, want finished/%v", v.Phase(), v.Winner(), tt.want)
			}
		})
	}
}

func TestVersusExpireIgnoredForRace(t *testing.T) {
	v := newTestVersus(t, ModeRace)
	v.ExpireTime()
	if v.Phase() != VersusActive {
		t.Errorf("phase = %v, want still active", v.Phase())
	}
}

func TestVersusPauseBlocksSubmissions(t *testing.T) {
	v := newTestVersus(t, ModeTimed)
	v.Pause()

	if _, err := v.Submit(SideOne, v.Round(), v.Current().ID); err != ErrVersusPaused {
		t.Fatalf("submit while paused: err=%v, want ErrVersusPaused", err)
	}

	v.Resume()
	if res := submitRight(t, v, SideOne); !res.Scored {
		t.Error("correct answer after resume did not score")
	}
}

func TestVersusWordListWraps(t *testing.T) {
	pool := content.NewPool()
	rng := rand.New(rand.NewSource(3))
	words := pool.RandomItems(3, 1, 10, rng)
	v, err := NewVersus(pool, words, ModeTimed, rng)
	if err != nil {
		t.Fatalf("NewVersus: %v", err)
	}

	for i := 0; i < 7; i++ {
		if res := submitRight(t, v, SideOne); !res.Scored {
			t.Fatalf("answer %d did not score", i+1)
		}
	}
	if v.Score(SideOne) != 7 {
		t.Errorf("score = %d, want 7 after wrapping a 3-word list", v.Score(SideOne))
	}
}

func TestVersusRejectsEmptyWordList(t *testing.T) {
	pool := content.NewPool()
	if _, err := NewVersus(pool, nil, ModeTimed, rand.New(rand.NewSource(1))); err == nil {
		t.Error("NewVersus with no words should fail")
	}
}
