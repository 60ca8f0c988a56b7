package service

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"hanziclash/internal/repository"
)

// backupVersion tags the export format.
const backupVersion = "1"

// BackupData is the complete portable state of an install: accounts and
// progression. Word content and audio are code and cache, not data, so
// they are not exported.
type BackupData struct {
	Version    string           `json:"version"`
	ExportedAt time.Time        `json:"exported_at"`
	Guardians  []GuardianBackup `json:"guardians"`
	Players    []PlayerBackup   `json:"players"`
}

// GuardianBackup is one guardian account record.
type GuardianBackup struct {
	ID            int64     `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	OAuthProvider string    `json:"oauth_provider"`
	OAuthSubject  string    `json:"oauth_subject"`
	CreatedAt     time.Time `json:"created_at"`
}

// PlayerBackup is one player record with full progression.
type PlayerBackup struct {
	ID               int64       `json:"id"`
	Name             string      `json:"name"`
	Avatar           string      `json:"avatar"`
	PINHash          string      `json:"pin_hash"`
	MaxUnlockedLevel int         `json:"max_unlocked_level"`
	StarsByLevel     map[int]int `json:"stars_by_level"`
	HighScoreByLevel map[int]int `json:"high_score_by_level"`
	TotalScore       int         `json:"total_score"`
	MistakeWordIDs   []int       `json:"mistake_word_ids"`
	XPLevel          int         `json:"xp_level"`
	XP               int         `json:"xp"`
	AchievementIDs   []int       `json:"achievement_ids"`
	GuardianEmail    string      `json:"guardian_email,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
}

// BackupService exports and imports install state as JSON.
type BackupService struct {
	players   *repository.PlayerRepository
	guardians *repository.GuardianRepository
}

// NewBackupService creates a new backup service.
func NewBackupService(players *repository.PlayerRepository, guardians *repository.GuardianRepository) *BackupService {
	return &BackupService{players: players, guardians: guardians}
}

// Export writes the full backup to w.
func (s *BackupService) Export(w io.Writer) error {
	data := BackupData{
		Version:    backupVersion,
		ExportedAt: time.Now(),
	}

	guardians, err := s.guardians.ListGuardians()
	if err != nil {
		return err
	}
	guardianEmail := make(map[int64]string)
	for _, g := range guardians {
		guardianEmail[g.ID] = g.Email
		data.Guardians = append(data.Guardians, GuardianBackup{
			ID:            g.ID,
			Email:         g.Email,
			Name:          g.Name,
			OAuthProvider: g.OAuthProvider,
			OAuthSubject:  g.OAuthSubject,
			CreatedAt:     g.CreatedAt,
		})
	}

	summaries, err := s.players.ListPlayers()
	if err != nil {
		return err
	}
	for _, summary := range summaries {
		player, err := s.players.GetPlayerByID(summary.ID)
		if err != nil {
			return err
		}
		if player == nil {
			continue
		}

		backup := PlayerBackup{
			ID:               player.ID,
			Name:             player.Name,
			Avatar:           player.Avatar,
			PINHash:          player.PINHash,
			MaxUnlockedLevel: player.MaxUnlockedLevel,
			StarsByLevel:     player.StarsByLevel,
			HighScoreByLevel: player.HighScoreByLevel,
			TotalScore:       player.TotalScore,
			MistakeWordIDs:   player.MistakeWordIDs,
			XPLevel:          player.XPLevel,
			XP:               player.XP,
			AchievementIDs:   player.AchievementIDs,
			CreatedAt:        player.CreatedAt,
		}
		if player.GuardianID != nil {
			backup.GuardianEmail = guardianEmail[*player.GuardianID]
		}
		data.Players = append(data.Players, backup)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	log.Info().
		Int("guardians", len(data.Guardians)).
		Int("players", len(data.Players)).
		Msg("backup exported")
	return nil
}

// Import loads a backup into the database. Records that already exist
// (matched by guardian OAuth identity or player name) are skipped, not
// merged; import is for seeding a fresh install.
func (s *BackupService) Import(r io.Reader) error {
	var data BackupData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}
	if data.Version != backupVersion {
		return fmt.Errorf("unsupported backup version %q", data.Version)
	}

	guardianByEmail := make(map[string]int64)
	for _, g := range data.Guardians {
		created, err := s.guardians.UpsertByOAuth(g.OAuthProvider, g.OAuthSubject, g.Email, g.Name)
		if err != nil {
			return err
		}
		guardianByEmail[g.Email] = created.ID
	}

	imported := 0
	for _, pb := range data.Players {
		existing, err := s.players.GetPlayerByName(pb.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			log.Warn().Str("name", pb.Name).Msg("player exists, skipping import")
			continue
		}

		player, err := s.players.CreatePlayer(pb.Name, pb.Avatar, pb.PINHash)
		if err != nil {
			return err
		}

		player.MaxUnlockedLevel = pb.MaxUnlockedLevel
		player.StarsByLevel = pb.StarsByLevel
		player.HighScoreByLevel = pb.HighScoreByLevel
		player.TotalScore = pb.TotalScore
		player.MistakeWordIDs = pb.MistakeWordIDs
		player.XPLevel = pb.XPLevel
		player.XP = pb.XP
		player.AchievementIDs = pb.AchievementIDs
		if player.StarsByLevel == nil {
			player.StarsByLevel = make(map[int]int)
		}
		if player.HighScoreByLevel == nil {
			player.HighScoreByLevel = make(map[int]int)
		}

		if err := s.players.SaveProgress(player); err != nil {
			return err
		}
		if pb.GuardianEmail != "" {
			if guardianID, ok := guardianByEmail[pb.GuardianEmail]; ok {
				if err := s.players.AssignGuardian(player.ID, guardianID); err != nil {
					return err
				}
			}
		}
		imported++
	}

	log.Info().Int("players", imported).Msg("backup imported")
	return nil
}
