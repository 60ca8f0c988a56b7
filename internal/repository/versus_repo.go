package repository

import (
	"database/sql"
	"fmt"

	"hanziclash/internal/database"
	"hanziclash/internal/models"
)

// VersusRepository stores finished duel results.
type VersusRepository struct {
	db database.DBTX
}

// NewVersusRepository creates a new versus repository.
func NewVersusRepository(db database.DBTX) *VersusRepository {
	return &VersusRepository{db: db}
}

// RecordResult stores one finished duel. The session id is unique, so a
// duplicate finish event is rejected by the database rather than counted
// twice.
func (r *VersusRepository) RecordResult(res *models.VersusResult) error {
	query := `
		INSERT INTO versus_results (session_id, mode, player_one_id, player_two_id,
		                            score_one, score_two, winner)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	var playerTwo interface{}
	if res.PlayerTwoID != nil {
		playerTwo = *res.PlayerTwoID
	}
	id, err := r.db.ExecReturningID(query,
		res.SessionID, res.Mode, res.PlayerOneID, playerTwo,
		res.ScoreOne, res.ScoreTwo, res.Winner)
	if err != nil {
		return fmt.Errorf("failed to record versus result: %w", err)
	}
	res.ID = id
	return nil
}

// RecentResults returns a player's latest duels, newest first.
func (r *VersusRepository) RecentResults(playerID int64, limit int) ([]models.VersusResult, error) {
	query := `
		SELECT id, session_id, mode, player_one_id, player_two_id,
		       score_one, score_two, winner, finished_at
		FROM versus_results
		WHERE player_one_id = ? OR player_two_id = ?
		ORDER BY finished_at DESC
		LIMIT ?
	`
	rows, err := r.db.Query(query, playerID, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query versus results: %w", err)
	}
	defer rows.Close()

	var results []models.VersusResult
	for rows.Next() {
		var res models.VersusResult
		var playerTwo sql.NullInt64
		if err := rows.Scan(
			&res.ID,
			&res.SessionID,
			&res.Mode,
			&res.PlayerOneID,
			&playerTwo,
			&res.ScoreOne,
			&res.ScoreTwo,
			&res.Winner,
			&res.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan versus result: %w", err)
		}
		if playerTwo.Valid {
			res.PlayerTwoID = &playerTwo.Int64
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
