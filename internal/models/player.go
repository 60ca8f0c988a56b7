package models

import "time"

// Player is a persistent player record. All gameplay mutation goes
// through the progression engine; repositories only load and store it.
type Player struct {
	ID      int64
	Name    string
	Avatar  string
	PINHash string

	MaxUnlockedLevel int
	StarsByLevel     map[int]int
	HighScoreByLevel map[int]int
	TotalScore       int
	MistakeWordIDs   []int
	XPLevel          int
	XP               int
	AchievementIDs   []int

	GuardianID *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewPlayer returns a fresh record with starting progression.
func NewPlayer(name, avatar string) *Player {
	return &Player{
		Name:             name,
		Avatar:           avatar,
		MaxUnlockedLevel: 1,
		StarsByLevel:     make(map[int]int),
		HighScoreByLevel: make(map[int]int),
		XPLevel:          1,
	}
}

// HasMistake reports whether the word id is in the player's mistake book.
func (p *Player) HasMistake(wordID int) bool {
	for _, id := range p.MistakeWordIDs {
		if id == wordID {
			return true
		}
	}
	return false
}

// HasAchievement reports whether the achievement is already unlocked.
func (p *Player) HasAchievement(achievementID int) bool {
	for _, id := range p.AchievementIDs {
		if id == achievementID {
			return true
		}
	}
	return false
}

// Guardian is an adult account that can follow players' progress and
// receive report emails. Created through OAuth sign-in.
type Guardian struct {
	ID            int64
	Email         string
	Name          string
	OAuthProvider string
	OAuthSubject  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// VersusResult is the stored outcome of one finished duel.
type VersusResult struct {
	ID          int64
	SessionID   string
	Mode        string
	PlayerOneID int64
	PlayerTwoID *int64 // nil when the opponent was the computer
	ScoreOne    int
	ScoreTwo    int
	Winner      string // "p1", "p2" or "draw"
	FinishedAt  time.Time
}

// LeaderboardEntry is one row of the total-score ranking.
type LeaderboardEntry struct {
	PlayerID   int64
	Name       string
	Avatar     string
	TotalScore int
	XPLevel    int
}
