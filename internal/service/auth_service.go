package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"hanziclash/internal/content"
	"hanziclash/internal/models"
	"hanziclash/internal/repository"
	"hanziclash/internal/security"
)

var (
	ErrNameTaken          = errors.New("name already taken")
	ErrInvalidName        = errors.New("name must be 1 to 30 characters")
	ErrInvalidAvatar      = errors.New("unknown avatar")
	ErrInvalidPIN         = errors.New("PIN must be 4 digits")
	ErrInvalidCredentials = errors.New("invalid name or PIN")
)

// AuthService handles player signup and login plus guardian OAuth
// identity. Session state itself is a signed token, so there is nothing
// to store; the service only verifies credentials and mints tokens.
type AuthService struct {
	players   *repository.PlayerRepository
	guardians *repository.GuardianRepository
	tokens    *security.TokenIssuer
}

// NewAuthService creates a new auth service.
func NewAuthService(players *repository.PlayerRepository, guardians *repository.GuardianRepository, tokens *security.TokenIssuer) *AuthService {
	return &AuthService{
		players:   players,
		guardians: guardians,
		tokens:    tokens,
	}
}

// SignupPlayer creates a player profile secured by a 4-digit PIN and
// signs them in.
func (s *AuthService) SignupPlayer(name, avatar, pin string) (*models.Player, string, time.Time, error) {
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > 30 {
		return nil, "", time.Time{}, ErrInvalidName
	}
	if !validAvatar(avatar) {
		return nil, "", time.Time{}, ErrInvalidAvatar
	}
	if !validPIN(pin) {
		return nil, "", time.Time{}, ErrInvalidPIN
	}

	existing, err := s.players.GetPlayerByName(name)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("failed to check existing player: %w", err)
	}
	if existing != nil {
		return nil, "", time.Time{}, ErrNameTaken
	}

	pinHash, err := security.HashPIN(pin)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("failed to hash PIN: %w", err)
	}

	player, err := s.players.CreatePlayer(name, avatar, pinHash)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	token, expires, err := s.tokens.Issue(player.ID, security.SubjectPlayer)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	log.Info().Int64("player", player.ID).Str("name", name).Msg("player signed up")
	return player, token, expires, nil
}

// LoginPlayer verifies a player's name and PIN and mints a session
// token.
func (s *AuthService) LoginPlayer(name, pin string) (*models.Player, string, time.Time, error) {
	player, err := s.players.GetPlayerByName(strings.TrimSpace(name))
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("failed to get player: %w", err)
	}
	if player == nil || !security.CheckPIN(pin, player.PINHash) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expires, err := s.tokens.Issue(player.ID, security.SubjectPlayer)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return player, token, expires, nil
}

// OAuthLoginGuardian signs a guardian in from a verified OAuth identity,
// creating the account on first visit.
func (s *AuthService) OAuthLoginGuardian(provider, subject, email, name string) (*models.Guardian, string, time.Time, error) {
	if subject == "" || email == "" {
		return nil, "", time.Time{}, errors.New("incomplete OAuth identity")
	}

	guardian, err := s.guardians.UpsertByOAuth(provider, subject, email, name)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	token, expires, err := s.tokens.Issue(guardian.ID, security.SubjectGuardian)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	log.Info().Int64("guardian", guardian.ID).Str("provider", provider).Msg("guardian signed in")
	return guardian, token, expires, nil
}

// VerifyPlayerToken resolves a session token to a player id.
func (s *AuthService) VerifyPlayerToken(token string) (int64, error) {
	return s.tokens.Verify(token, security.SubjectPlayer)
}

// VerifyGuardianToken resolves a session token to a guardian id.
func (s *AuthService) VerifyGuardianToken(token string) (int64, error) {
	return s.tokens.Verify(token, security.SubjectGuardian)
}

func validAvatar(avatar string) bool {
	for _, a := range content.Avatars {
		if a == avatar {
			return true
		}
	}
	return false
}

func validPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
