package database

import (
	"testing"
)

func TestDialectSQLite(t *testing.T) {
	dialect := NewSQLiteDialect()

	if got := dialect.DriverName(); got != "sqlite3" {
		t.Errorf("DriverName() = %v, want sqlite3", got)
	}
	if !dialect.SupportsLastInsertId() {
		t.Error("SupportsLastInsertId() should return true for SQLite")
	}
	if got := dialect.MigrationsSubdir(); got != "sqlite" {
		t.Errorf("MigrationsSubdir() = %v, want sqlite", got)
	}
}

func TestDialectPostgreSQL(t *testing.T) {
	dialect := NewPostgresDialect()

	if got := dialect.DriverName(); got != "postgres" {
		t.Errorf("DriverName() = %v, want postgres", got)
	}
	if dialect.SupportsLastInsertId() {
		t.Error("SupportsLastInsertId() should return false for PostgreSQL")
	}
	if got := dialect.MigrationsSubdir(); got != "postgres" {
		t.Errorf("MigrationsSubdir() = %v, want postgres", got)
	}
}

func TestDialectMySQL(t *testing.T) {
	dialect := NewMySQLDialect()

	if got := dialect.DriverName(); got != "mysql" {
		t.Errorf("DriverName() = %v, want mysql", got)
	}
	if !dialect.SupportsLastInsertId() {
		t.Error("SupportsLastInsertId() should return true for MySQL")
	}
	if got := dialect.MigrationsSubdir(); got != "mysql" {
		t.Errorf("MigrationsSubdir() = %v, want mysql", got)
	}
}

func TestRewriteQuery(t *testing.T) {
	tests := []struct {
		name     string
		dialect  Dialect
		query    string
		expected string
	}{
		{
			name:     "SQLite no change",
			dialect:  NewSQLiteDialect(),
			query:    "SELECT * FROM players WHERE id = ?",
			expected: "SELECT * FROM players WHERE id = ?",
		},
		{
			name:     "PostgreSQL single placeholder",
			dialect:  NewPostgresDialect(),
			query:    "SELECT * FROM players WHERE id = ?",
			expected: "SELECT * FROM players WHERE id = $1",
		},
		{
			name:     "PostgreSQL multiple placeholders",
			dialect:  NewPostgresDialect(),
			query:    "INSERT INTO players (name, avatar) VALUES (?, ?)",
			expected: "INSERT INTO players (name, avatar) VALUES ($1, $2)",
		},
		{
			name:     "MySQL no change",
			dialect:  NewMySQLDialect(),
			query:    "UPDATE players SET name = ?, avatar = ? WHERE id = ?",
			expected: "UPDATE players SET name = ?, avatar = ? WHERE id = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.RewriteQuery(tt.query); got != tt.expected {
				t.Errorf("RewriteQuery() = %v, want %v", got, tt.expected)
			}
		})
	}
}
