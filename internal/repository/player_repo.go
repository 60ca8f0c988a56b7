package repository

import (
	"database/sql"
	"fmt"
	"time"

	"hanziclash/internal/database"
	"hanziclash/internal/models"
)

// PlayerRepository handles database operations for player records.
type PlayerRepository struct {
	db database.DBTX
}

// NewPlayerRepository creates a new player repository.
func NewPlayerRepository(db database.DBTX) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// CreatePlayer inserts a fresh player record.
func (r *PlayerRepository) CreatePlayer(name, avatar, pinHash string) (*models.Player, error) {
	query := "INSERT INTO players (name, avatar, pin_hash) VALUES (?, ?, ?)"
	id, err := r.db.ExecReturningID(query, name, avatar, pinHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	p := models.NewPlayer(name, avatar)
	p.ID = id
	p.PINHash = pinHash
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	return p, nil
}

// GetPlayerByID loads a full player record, including the progression
// child tables. Returns nil without error when the player is unknown.
func (r *PlayerRepository) GetPlayerByID(playerID int64) (*models.Player, error) {
	query := `
		SELECT id, name, avatar, pin_hash, max_unlocked_level, total_score,
		       xp_level, xp, guardian_id, created_at, updated_at
		FROM players
		WHERE id = ?
	`
	p, err := r.scanPlayer(r.db.QueryRow(query, playerID))
	if err != nil || p == nil {
		return p, err
	}
	if err := r.loadProgress(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPlayerByName loads a full player record by display name.
func (r *PlayerRepository) GetPlayerByName(name string) (*models.Player, error) {
	query := `
		SELECT id, name, avatar, pin_hash, max_unlocked_level, total_score,
		       xp_level, xp, guardian_id, created_at, updated_at
		FROM players
		WHERE name = ?
	`
	p, err := r.scanPlayer(r.db.QueryRow(query, name))
	if err != nil || p == nil {
		return p, err
	}
	if err := r.loadProgress(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListPlayers returns every player's main row, ordered by name. Child
// tables are not loaded; use GetPlayerByID for a full record.
func (r *PlayerRepository) ListPlayers() ([]models.Player, error) {
	query := `
		SELECT id, name, avatar, pin_hash, max_unlocked_level, total_score,
		       xp_level, xp, guardian_id, created_at, updated_at
		FROM players
		ORDER BY name ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		p, err := r.scanPlayerRows(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

// GetGuardianPlayers returns the main rows of every player linked to a
// guardian.
func (r *PlayerRepository) GetGuardianPlayers(guardianID int64) ([]models.Player, error) {
	query := `
		SELECT id, name, avatar, pin_hash, max_unlocked_level, total_score,
		       xp_level, xp, guardian_id, created_at, updated_at
		FROM players
		WHERE guardian_id = ?
		ORDER BY name ASC
	`
	rows, err := r.db.Query(query, guardianID)
	if err != nil {
		return nil, fmt.Errorf("failed to query guardian players: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		p, err := r.scanPlayerRows(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

// UpdateIdentity changes a player's display name and avatar.
func (r *PlayerRepository) UpdateIdentity(playerID int64, name, avatar string) error {
	query := "UPDATE players SET name = ?, avatar = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	if _, err := r.db.Exec(query, name, avatar, playerID); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	return nil
}

// AssignGuardian links a player to a guardian account.
func (r *PlayerRepository) AssignGuardian(playerID, guardianID int64) error {
	query := "UPDATE players SET guardian_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	if _, err := r.db.Exec(query, guardianID, playerID); err != nil {
		return fmt.Errorf("failed to assign guardian: %w", err)
	}
	return nil
}

// DeletePlayer removes a player and, via cascades, all progression rows.
func (r *PlayerRepository) DeletePlayer(playerID int64) error {
	if _, err := r.db.Exec("DELETE FROM players WHERE id = ?", playerID); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return nil
}

// SaveProgress writes a player's progression back in one transaction.
// The child tables are replaced wholesale; the record in memory is the
// source of truth after the progression engine has run.
func (r *PlayerRepository) SaveProgress(p *models.Player) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin save: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE players
		SET max_unlocked_level = ?, total_score = ?, xp_level = ?, xp = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	if _, err := tx.Exec(query, p.MaxUnlockedLevel, p.TotalScore, p.XPLevel, p.XP, p.ID); err != nil {
		return fmt.Errorf("failed to update player progress: %w", err)
	}

	replacements := []struct {
		deleteQuery string
		insertQuery string
		rows        [][]interface{}
	}{
		{
			deleteQuery: "DELETE FROM player_stars WHERE player_id = ?",
			insertQuery: "INSERT INTO player_stars (player_id, level, stars) VALUES (?, ?, ?)",
			rows:        levelRows(p.ID, p.StarsByLevel),
		},
		{
			deleteQuery: "DELETE FROM player_high_scores WHERE player_id = ?",
			insertQuery: "INSERT INTO player_high_scores (player_id, level, score) VALUES (?, ?, ?)",
			rows:        levelRows(p.ID, p.HighScoreByLevel),
		},
		{
			deleteQuery: "DELETE FROM player_mistakes WHERE player_id = ?",
			insertQuery: "INSERT INTO player_mistakes (player_id, word_id) VALUES (?, ?)",
			rows:        idRows(p.ID, p.MistakeWordIDs),
		},
		{
			deleteQuery: "DELETE FROM player_achievements WHERE player_id = ?",
			insertQuery: "INSERT INTO player_achievements (player_id, achievement_id) VALUES (?, ?)",
			rows:        idRows(p.ID, p.AchievementIDs),
		},
	}

	for _, rep := range replacements {
		if _, err := tx.Exec(rep.deleteQuery, p.ID); err != nil {
			return fmt.Errorf("failed to clear progress rows: %w", err)
		}
		for _, args := range rep.rows {
			if _, err := tx.Exec(rep.insertQuery, args...); err != nil {
				return fmt.Errorf("failed to insert progress row: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save: %w", err)
	}
	return nil
}

// Leaderboard returns the top players by total score.
func (r *PlayerRepository) Leaderboard(limit int) ([]models.LeaderboardEntry, error) {
	query := `
		SELECT id, name, avatar, total_score, xp_level
		FROM players
		ORDER BY total_score DESC, name ASC
		LIMIT ?
	`
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.PlayerID, &e.Name, &e.Avatar, &e.TotalScore, &e.XPLevel); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// LevelLeaderboard returns the top recorded scores for one level.
func (r *PlayerRepository) LevelLeaderboard(level, limit int) ([]models.LeaderboardEntry, error) {
	query := `
		SELECT p.id, p.name, p.avatar, h.score, p.xp_level
		FROM player_high_scores h
		JOIN players p ON p.id = h.player_id
		WHERE h.level = ?
		ORDER BY h.score DESC, p.name ASC
		LIMIT ?
	`
	rows, err := r.db.Query(query, level, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query level leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.PlayerID, &e.Name, &e.Avatar, &e.TotalScore, &e.XPLevel); err != nil {
			return nil, fmt.Errorf("failed to scan level leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *PlayerRepository) scanPlayer(row *sql.Row) (*models.Player, error) {
	p, err := scanPlayerRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return p, nil
}

func (r *PlayerRepository) scanPlayerRows(rows *sql.Rows) (*models.Player, error) {
	p, err := scanPlayerRow(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan player: %w", err)
	}
	return p, nil
}

func scanPlayerRow(s rowScanner) (*models.Player, error) {
	p := &models.Player{
		StarsByLevel:     make(map[int]int),
		HighScoreByLevel: make(map[int]int),
	}
	var guardianID sql.NullInt64
	err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Avatar,
		&p.PINHash,
		&p.MaxUnlockedLevel,
		&p.TotalScore,
		&p.XPLevel,
		&p.XP,
		&guardianID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if guardianID.Valid {
		p.GuardianID = &guardianID.Int64
	}
	return p, nil
}

// loadProgress fills the child-table fields of a player record.
func (r *PlayerRepository) loadProgress(p *models.Player) error {
	if err := r.loadLevelMap(p.ID, "player_stars", "stars", p.StarsByLevel); err != nil {
		return err
	}
	if err := r.loadLevelMap(p.ID, "player_high_scores", "score", p.HighScoreByLevel); err != nil {
		return err
	}

	mistakes, err := r.loadIDList(p.ID, "player_mistakes", "word_id", "added_at")
	if err != nil {
		return err
	}
	p.MistakeWordIDs = mistakes

	achievements, err := r.loadIDList(p.ID, "player_achievements", "achievement_id", "unlocked_at")
	if err != nil {
		return err
	}
	p.AchievementIDs = achievements

	return nil
}

func (r *PlayerRepository) loadLevelMap(playerID int64, table, column string, dst map[int]int) error {
	query := fmt.Sprintf("SELECT level, %s FROM %s WHERE player_id = ?", column, table)
	rows, err := r.db.Query(query, playerID)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var level, value int
		if err := rows.Scan(&level, &value); err != nil {
			return fmt.Errorf("failed to scan %s: %w", table, err)
		}
		dst[level] = value
	}
	return rows.Err()
}

func (r *PlayerRepository) loadIDList(playerID int64, table, column, orderBy string) ([]int, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE player_id = ? ORDER BY %s ASC", column, table, orderBy)
	rows, err := r.db.Query(query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func levelRows(playerID int64, m map[int]int) [][]interface{} {
	var out [][]interface{}
	for level, value := range m {
		out = append(out, []interface{}{playerID, level, value})
	}
	return out
}

func idRows(playerID int64, ids []int) [][]interface{} {
	var out [][]interface{}
	for _, id := range ids {
		out = append(out, []interface{}{playerID, id})
	}
	return out
}
