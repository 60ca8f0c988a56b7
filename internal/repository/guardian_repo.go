package repository

import (
	"database/sql"
	"fmt"
	"time"

	"hanziclash/internal/database"
	"hanziclash/internal/models"
)

// GuardianRepository handles database operations for guardian accounts.
type GuardianRepository struct {
	db database.DBTX
}

// NewGuardianRepository creates a new guardian repository.
func NewGuardianRepository(db database.DBTX) *GuardianRepository {
	return &GuardianRepository{db: db}
}

// UpsertByOAuth finds the guardian matching an OAuth identity, creating
// the account on first sign-in. Email and name refresh on every login.
func (r *GuardianRepository) UpsertByOAuth(provider, subject, email, name string) (*models.Guardian, error) {
	existing, err := r.getByOAuth(provider, subject)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		query := "UPDATE guardians SET email = ?, name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
		if _, err := r.db.Exec(query, email, name, existing.ID); err != nil {
			return nil, fmt.Errorf("failed to refresh guardian: %w", err)
		}
		existing.Email = email
		existing.Name = name
		return existing, nil
	}

	query := "INSERT INTO guardians (email, name, oauth_provider, oauth_subject) VALUES (?, ?, ?, ?)"
	id, err := r.db.ExecReturningID(query, email, name, provider, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to create guardian: %w", err)
	}

	return &models.Guardian{
		ID:            id,
		Email:         email,
		Name:          name,
		OAuthProvider: provider,
		OAuthSubject:  subject,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}, nil
}

// GetGuardianByID retrieves a guardian account. Returns nil without
// error when unknown.
func (r *GuardianRepository) GetGuardianByID(guardianID int64) (*models.Guardian, error) {
	query := `
		SELECT id, email, name, oauth_provider, oauth_subject, created_at, updated_at
		FROM guardians
		WHERE id = ?
	`
	return r.scanGuardian(r.db.QueryRow(query, guardianID))
}

// ListGuardians returns every guardian account, used by the backup
// tool.
func (r *GuardianRepository) ListGuardians() ([]models.Guardian, error) {
	query := `
		SELECT id, email, name, oauth_provider, oauth_subject, created_at, updated_at
		FROM guardians
		ORDER BY id ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query guardians: %w", err)
	}
	defer rows.Close()

	var guardians []models.Guardian
	for rows.Next() {
		var g models.Guardian
		if err := rows.Scan(
			&g.ID,
			&g.Email,
			&g.Name,
			&g.OAuthProvider,
			&g.OAuthSubject,
			&g.CreatedAt,
			&g.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan guardian: %w", err)
		}
		guardians = append(guardians, g)
	}
	return guardians, rows.Err()
}

func (r *GuardianRepository) getByOAuth(provider, subject string) (*models.Guardian, error) {
	query := `
		SELECT id, email, name, oauth_provider, oauth_subject, created_at, updated_at
		FROM guardians
		WHERE oauth_provider = ? AND oauth_subject = ?
	`
	return r.scanGuardian(r.db.QueryRow(query, provider, subject))
}

func (r *GuardianRepository) scanGuardian(row *sql.Row) (*models.Guardian, error) {
	g := &models.Guardian{}
	err := row.Scan(
		&g.ID,
		&g.Email,
		&g.Name,
		&g.OAuthProvider,
		&g.OAuthSubject,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guardian: %w", err)
	}
	return g, nil
}
