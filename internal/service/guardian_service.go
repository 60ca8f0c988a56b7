package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"hanziclash/internal/models"
	"hanziclash/internal/repository"
	"hanziclash/internal/security"
)

var (
	ErrGuardianNotFound = errors.New("guardian not found")
	ErrAlreadyLinked    = errors.New("player already linked to a guardian")
)

// GuardianService covers the guardian dashboard: linked players and
// progress report emails. Linking is claimed from the guardian's side
// and authorized with the player's PIN, so a guardian can only follow
// players whose credentials they hold.
type GuardianService struct {
	guardians *repository.GuardianRepository
	players   *repository.PlayerRepository
	reports   *ReportService
}

// NewGuardianService creates a new guardian service.
func NewGuardianService(guardians *repository.GuardianRepository, players *repository.PlayerRepository, reports *ReportService) *GuardianService {
	return &GuardianService{guardians: guardians, players: players, reports: reports}
}

// GetGuardian loads a guardian account.
func (s *GuardianService) GetGuardian(guardianID int64) (*models.Guardian, error) {
	guardian, err := s.guardians.GetGuardianByID(guardianID)
	if err != nil {
		return nil, fmt.Errorf("failed to load guardian: %w", err)
	}
	if guardian == nil {
		return nil, ErrGuardianNotFound
	}
	return guardian, nil
}

// LinkedPlayers returns the guardian's players with full progression.
func (s *GuardianService) LinkedPlayers(guardianID int64) ([]models.Player, error) {
	rows, err := s.players.GetGuardianPlayers(guardianID)
	if err != nil {
		return nil, err
	}

	players := make([]models.Player, 0, len(rows))
	for _, row := range rows {
		player, err := s.players.GetPlayerByID(row.ID)
		if err != nil {
			return nil, err
		}
		if player != nil {
			players = append(players, *player)
		}
	}
	return players, nil
}

// LinkPlayer attaches a player to the guardian, authorized by the
// player's name and PIN.
func (s *GuardianService) LinkPlayer(guardianID int64, name, pin string) (*models.Player, error) {
	player, err := s.players.GetPlayerByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	if player == nil || !security.CheckPIN(pin, player.PINHash) {
		return nil, ErrInvalidCredentials
	}
	if player.GuardianID != nil && *player.GuardianID != guardianID {
		return nil, ErrAlreadyLinked
	}

	if err := s.players.AssignGuardian(player.ID, guardianID); err != nil {
		return nil, err
	}
	guardian := guardianID
	player.GuardianID = &guardian

	log.Info().Int64("guardian", guardianID).Int64("player", player.ID).Msg("player linked")
	return player, nil
}

// SendReport emails the guardian a progress summary of their players.
func (s *GuardianService) SendReport(ctx context.Context, guardianID int64) error {
	guardian, err := s.GetGuardian(guardianID)
	if err != nil {
		return err
	}
	players, err := s.LinkedPlayers(guardianID)
	if err != nil {
		return err
	}
	return s.reports.SendProgressReport(ctx, guardian, players)
}

// ReportsEnabled reports whether the email pipeline is configured.
func (s *GuardianService) ReportsEnabled() bool {
	return s.reports.IsEnabled()
}
