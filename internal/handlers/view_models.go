package handlers

import (
	"fmt"
	"time"

	"hanziclash/internal/audio"
	"hanziclash/internal/content"
	"hanziclash/internal/game"
	"hanziclash/internal/models"
	"hanziclash/internal/service"
)

// WordView is the client form of a vocabulary word. The meaning is only
// included for question words, never for options, so the answer cannot
// be read off the payload.
type WordView struct {
	ID       int    `json:"id"`
	Text     string `json:"text,omitempty"`
	Meaning  string `json:"meaning,omitempty"`
	Level    int    `json:"level,omitempty"`
	AudioURL string `json:"audio_url,omitempty"`
}

func questionView(w content.Word) WordView {
	return WordView{
		ID:       w.ID,
		Meaning:  w.Meaning,
		Level:    w.Level,
		AudioURL: audioURL(w.ID),
	}
}

func optionView(w content.Word) WordView {
	return WordView{ID: w.ID, Text: w.Text}
}

func optionViews(words []content.Word) []WordView {
	views := make([]WordView, 0, len(words))
	for _, w := range words {
		views = append(views, optionView(w))
	}
	return views
}

func fullWordView(w content.Word) WordView {
	return WordView{
		ID:       w.ID,
		Text:     w.Text,
		Meaning:  w.Meaning,
		Level:    w.Level,
		AudioURL: audioURL(w.ID),
	}
}

func audioURL(wordID int) string {
	return fmt.Sprintf("/audio/%s", audio.AudioFilename(wordID))
}

// BattleView is one frame of a running battle.
type BattleView struct {
	SessionID   string     `json:"session_id"`
	Level       int        `json:"level"`
	PlayerHP    int        `json:"player_hp"`
	PlayerMaxHP int        `json:"player_max_hp"`
	EnemyHP     int        `json:"enemy_hp"`
	EnemyMaxHP  int        `json:"enemy_max_hp"`
	Score       int        `json:"score"`
	Combo       int        `json:"combo"`
	Question    WordView   `json:"question"`
	Options     []WordView `json:"options"`
	TimeLimitMS int64      `json:"time_limit_ms"`
	Status      string     `json:"status"`
}

func battleView(s service.BattleSnapshot) BattleView {
	return BattleView{
		SessionID:   s.SessionID,
		Level:       s.Level,
		PlayerHP:    s.PlayerHP,
		PlayerMaxHP: game.PlayerMaxHP,
		EnemyHP:     s.EnemyHP,
		EnemyMaxHP:  s.EnemyMaxHP,
		Score:       s.Score,
		Combo:       s.Combo,
		Question:    questionView(s.Question),
		Options:     optionViews(s.Options),
		TimeLimitMS: s.TimeLimit.Milliseconds(),
		Status:      statusName(s.Status),
	}
}

func statusName(s game.Status) string {
	switch s {
	case game.StatusWon:
		return "won"
	case game.StatusLost:
		return "lost"
	default:
		return "active"
	}
}

// RoundView reports how a submitted answer landed.
type RoundView struct {
	Correct    bool `json:"correct"`
	Damage     int  `json:"damage"`
	ScoreDelta int  `json:"score_delta"`
}

// OutcomeView is the summary of a finished battle.
type OutcomeView struct {
	Won      bool `json:"won"`
	Stars    int  `json:"stars"`
	Score    int  `json:"score"`
	MaxCombo int  `json:"max_combo"`
}

// ProgressView reports what a finished battle changed on the profile.
type ProgressView struct {
	LeveledUp       bool              `json:"leveled_up"`
	NewXPLevel      int               `json:"new_xp_level,omitempty"`
	NewAchievements []AchievementView `json:"new_achievements,omitempty"`
}

// BattleResultView is the full response to an answer.
type BattleResultView struct {
	Round    RoundView     `json:"round"`
	Battle   BattleView    `json:"battle"`
	Outcome  *OutcomeView  `json:"outcome,omitempty"`
	Progress *ProgressView `json:"progress,omitempty"`
}

func battleResultView(res service.BattleResult) BattleResultView {
	view := BattleResultView{
		Round: RoundView{
			Correct:    res.Round.Correct,
			Damage:     res.Round.Damage,
			ScoreDelta: res.Round.ScoreDelta,
		},
		Battle: battleView(res.Snapshot),
	}
	if res.Outcome != nil {
		view.Outcome = &OutcomeView{
			Won:      res.Outcome.Won,
			Stars:    res.Outcome.Stars,
			Score:    res.Outcome.Score,
			MaxCombo: res.Outcome.MaxCombo,
		}
	}
	if res.Progress != nil {
		progress := &ProgressView{
			LeveledUp:  res.Progress.LeveledUp,
			NewXPLevel: res.Progress.NewXPLevel,
		}
		for _, id := range res.Progress.NewAchievements {
			if a, ok := game.AchievementByID(id); ok {
				progress.NewAchievements = append(progress.NewAchievements, achievementView(a))
			}
		}
		view.Progress = progress
	}
	return view
}

// VersusView is one frame of a duel.
type VersusView struct {
	SessionID   string     `json:"session_id"`
	Mode        string     `json:"mode"`
	Opponent    string     `json:"opponent"`
	Round       uint64     `json:"round"`
	Question    WordView   `json:"question"`
	Options     []WordView `json:"options"`
	ScoreOne    int        `json:"score_one"`
	ScoreTwo    int        `json:"score_two"`
	Phase       string     `json:"phase"`
	Winner      string     `json:"winner,omitempty"`
	RemainingMS int64      `json:"remaining_ms,omitempty"`
}

func versusView(s service.VersusSnapshot) VersusView {
	view := VersusView{
		SessionID:   s.SessionID,
		Opponent:    s.Opponent,
		Round:       s.Round,
		Question:    questionView(s.Question),
		Options:     optionViews(s.Options),
		ScoreOne:    s.ScoreOne,
		ScoreTwo:    s.ScoreTwo,
		Phase:       phaseName(s.Phase),
		RemainingMS: s.Remaining.Milliseconds(),
	}
	if s.Mode == game.ModeRace {
		view.Mode = "race"
	} else {
		view.Mode = "timed"
	}
	switch s.Winner {
	case game.WinnerSideOne:
		view.Winner = "p1"
	case game.WinnerSideTwo:
		view.Winner = "p2"
	case game.WinnerDraw:
		view.Winner = "draw"
	}
	return view
}

func phaseName(p game.VersusPhase) string {
	switch p {
	case game.VersusPaused:
		return "paused"
	case game.VersusFinished:
		return "finished"
	default:
		return "active"
	}
}

// AchievementView is one badge from the catalog.
type AchievementView struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
	Icon  string `json:"icon"`
}

func achievementView(a game.Achievement) AchievementView {
	return AchievementView{ID: a.ID, Title: a.Title, Desc: a.Desc, Icon: a.Icon}
}

// PlayerView is the public form of a player record.
type PlayerView struct {
	ID               int64       `json:"id"`
	Name             string      `json:"name"`
	Avatar           string      `json:"avatar"`
	MaxUnlockedLevel int         `json:"max_unlocked_level"`
	StarsByLevel     map[int]int `json:"stars_by_level"`
	HighScoreByLevel map[int]int `json:"high_score_by_level"`
	TotalScore       int         `json:"total_score"`
	XPLevel          int         `json:"xp_level"`
	XP               int         `json:"xp"`
	MistakeCount     int         `json:"mistake_count"`
}

func playerView(p *models.Player) PlayerView {
	return PlayerView{
		ID:               p.ID,
		Name:             p.Name,
		Avatar:           p.Avatar,
		MaxUnlockedLevel: p.MaxUnlockedLevel,
		StarsByLevel:     p.StarsByLevel,
		HighScoreByLevel: p.HighScoreByLevel,
		TotalScore:       p.TotalScore,
		XPLevel:          p.XPLevel,
		XP:               p.XP,
		MistakeCount:     len(p.MistakeWordIDs),
	}
}

// ProfileView is the full profile screen payload.
type ProfileView struct {
	Player       PlayerView        `json:"player"`
	XPToNext     int               `json:"xp_to_next"`
	World        WorldView         `json:"world"`
	Achievements []AchievementView `json:"achievements"`
}

func profileView(p *service.Profile) ProfileView {
	view := ProfileView{
		Player:   playerView(p.Player),
		XPToNext: p.XPToNext,
		World:    worldView(p.World),
	}
	for _, a := range p.Achievements {
		view.Achievements = append(view.Achievements, achievementView(a))
	}
	return view
}

// WorldView is one campaign world for the level map.
type WorldView struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Enemy      string `json:"enemy"`
	Emoji      string `json:"emoji"`
	Desc       string `json:"desc"`
	FirstLevel int    `json:"first_level"`
	LastLevel  int    `json:"last_level"`
}

func worldView(w content.World) WorldView {
	first := content.WorldStartLevel(w)
	return WorldView{
		ID:         w.ID,
		Name:       w.Name,
		Enemy:      w.Enemy,
		Emoji:      w.Emoji,
		Desc:       w.Desc,
		FirstLevel: first,
		LastLevel:  first + content.LevelsPerWorld - 1,
	}
}

// LeaderboardEntryView is one ranking row.
type LeaderboardEntryView struct {
	Rank       int    `json:"rank"`
	PlayerID   int64  `json:"player_id"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
	TotalScore int    `json:"total_score"`
	XPLevel    int    `json:"xp_level"`
}

// DuelView is one stored versus result.
type DuelView struct {
	Mode       string    `json:"mode"`
	ScoreOne   int       `json:"score_one"`
	ScoreTwo   int       `json:"score_two"`
	Winner     string    `json:"winner"`
	FinishedAt time.Time `json:"finished_at"`
}

func duelViews(results []models.VersusResult) []DuelView {
	views := make([]DuelView, 0, len(results))
	for _, r := range results {
		views = append(views, DuelView{
			Mode:       r.Mode,
			ScoreOne:   r.ScoreOne,
			ScoreTwo:   r.ScoreTwo,
			Winner:     r.Winner,
			FinishedAt: r.FinishedAt,
		})
	}
	return views
}
