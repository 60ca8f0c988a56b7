package service

import (
	"fmt"
	"strings"

	"hanziclash/internal/content"
	"hanziclash/internal/game"
	"hanziclash/internal/models"
	"hanziclash/internal/repository"
)

// defaultLeaderboardSize caps the ranking rows handed to clients.
const defaultLeaderboardSize = 20

// PlayerService covers profile reads and edits plus the rankings. All
// gameplay mutation goes through BattleService; this service never
// touches progression fields directly.
type PlayerService struct {
	players *repository.PlayerRepository
	versus  *repository.VersusRepository
}

// Profile is a player record with derived presentation fields.
type Profile struct {
	Player       *models.Player
	XPToNext     int
	World        content.World
	Achievements []game.Achievement
}

// NewPlayerService creates a new player service.
func NewPlayerService(players *repository.PlayerRepository, versus *repository.VersusRepository) *PlayerService {
	return &PlayerService{players: players, versus: versus}
}

// GetProfile loads a player's full profile.
func (s *PlayerService) GetProfile(playerID int64) (*Profile, error) {
	player, err := s.players.GetPlayerByID(playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	world, err := content.WorldForLevel(player.MaxUnlockedLevel)
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		Player:   player,
		XPToNext: game.XPThreshold(player.XPLevel) - player.XP,
		World:    world,
	}
	for _, id := range player.AchievementIDs {
		if a, ok := game.AchievementByID(id); ok {
			profile.Achievements = append(profile.Achievements, a)
		}
	}
	return profile, nil
}

// UpdateIdentity changes a player's display name and avatar.
func (s *PlayerService) UpdateIdentity(playerID int64, name, avatar string) error {
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > 30 {
		return ErrInvalidName
	}
	if !validAvatar(avatar) {
		return ErrInvalidAvatar
	}

	existing, err := s.players.GetPlayerByName(name)
	if err != nil {
		return fmt.Errorf("failed to check name: %w", err)
	}
	if existing != nil && existing.ID != playerID {
		return ErrNameTaken
	}

	return s.players.UpdateIdentity(playerID, name, avatar)
}

// Leaderboard returns the top players by total score.
func (s *PlayerService) Leaderboard() ([]models.LeaderboardEntry, error) {
	return s.players.Leaderboard(defaultLeaderboardSize)
}

// LevelLeaderboard returns the best recorded scores for one level.
func (s *PlayerService) LevelLeaderboard(level int) ([]models.LeaderboardEntry, error) {
	if level < 1 || level > content.TotalLevels {
		return nil, fmt.Errorf("level %d out of range [1, %d]", level, content.TotalLevels)
	}
	return s.players.LevelLeaderboard(level, defaultLeaderboardSize)
}

// Roster lists every player's public identity for the pick-a-player
// screen.
func (s *PlayerService) Roster() ([]models.LeaderboardEntry, error) {
	players, err := s.players.ListPlayers()
	if err != nil {
		return nil, err
	}

	roster := make([]models.LeaderboardEntry, 0, len(players))
	for _, p := range players {
		roster = append(roster, models.LeaderboardEntry{
			PlayerID: p.ID,
			Name:     p.Name,
			Avatar:   p.Avatar,
			XPLevel:  p.XPLevel,
		})
	}
	return roster, nil
}

// RecentDuels returns a player's latest versus results.
func (s *PlayerService) RecentDuels(playerID int64, limit int) ([]models.VersusResult, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.versus.RecentResults(playerID, limit)
}
