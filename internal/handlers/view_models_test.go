package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hanziclash/internal/content"
	"hanziclash/internal/game"
	"hanziclash/internal/service"
)

func TestOptionViewsHideMeaning(t *testing.T) {
	pool := content.NewPool()
	words, err := pool.LevelItems(1)
	if err != nil {
		t.Fatalf("LevelItems: %v", err)
	}

	for _, v := range optionViews(words) {
		if v.Text == "" {
			t.Errorf("option %d has no text", v.ID)
		}
		if v.Meaning != "" {
			t.Errorf("option %d leaks meaning %q", v.ID, v.Meaning)
		}
	}
}

func TestQuestionViewHidesText(t *testing.T) {
	pool := content.NewPool()
	word, ok := pool.ItemByID(101)
	if !ok {
		t.Fatal("word 101 missing")
	}

	v := questionView(word)
	if v.Text != "" {
		t.Errorf("question leaks text %q", v.Text)
	}
	if v.Meaning == "" {
		t.Error("question has no meaning")
	}
	if v.AudioURL != "/audio/word_101.mp3" {
		t.Errorf("audio url = %q", v.AudioURL)
	}
}

func TestBattleViewMapping(t *testing.T) {
	pool := content.NewPool()
	word, _ := pool.ItemByID(101)

	snap := service.BattleSnapshot{
		SessionID:  "abc",
		Level:      1,
		PlayerHP:   66,
		EnemyHP:    28,
		EnemyMaxHP: 40,
		Score:      150,
		Combo:      2,
		Question:   word,
		TimeLimit:  20 * time.Second,
		Status:     game.StatusActive,
	}

	v := battleView(snap)
	if v.PlayerMaxHP != game.PlayerMaxHP {
		t.Errorf("PlayerMaxHP = %d", v.PlayerMaxHP)
	}
	if v.TimeLimitMS != 20000 {
		t.Errorf("TimeLimitMS = %d", v.TimeLimitMS)
	}
	if v.Status != "active" {
		t.Errorf("Status = %q", v.Status)
	}
}

func TestStatusAndPhaseNames(t *testing.T) {
	tests := []struct {
		status game.Status
		want   string
	}{
		{game.StatusActive, "active"},
		{game.StatusWon, "won"},
		{game.StatusLost, "lost"},
	}
	for _, tt := range tests {
		if got := statusName(tt.status); got != tt.want {
			t.Errorf("statusName(%d) = %q, want %q", tt.status, got, tt.want)
		}
	}

	phases := []struct {
		phase game.VersusPhase
		want  string
	}{
		{game.VersusActive, "active"},
		{game.VersusPaused, "paused"},
		{game.VersusFinished, "finished"},
	}
	for _, tt := range phases {
		if got := phaseName(tt.phase); got != tt.want {
			t.Errorf("phaseName(%d) = %q, want %q", tt.phase, got, tt.want)
		}
	}
}

func TestParseAudioWordID(t *testing.T) {
	tests := []struct {
		file    string
		want    int
		wantErr bool
	}{
		{"word_101.mp3", 101, false},
		{"word_4009.mp3", 4009, false},
		{"101.mp3", 101, false},
		{"word_abc.mp3", 0, true},
		{"../etc/passwd", 0, true},
	}
	for _, tt := range tests {
		got, err := parseAudioWordID(tt.file)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseAudioWordID(%q) expected error", tt.file)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("parseAudioWordID(%q) = %d, %v, want %d", tt.file, got, err, tt.want)
		}
	}
}

func TestRespondErrorShape(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, http.StatusNotFound, "player not found", "", nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body.Error != "player not found" {
		t.Errorf("error = %q", body.Error)
	}
}
