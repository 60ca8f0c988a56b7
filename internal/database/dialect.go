package database

import (
	"database/sql"
	"regexp"
	"strconv"
)

// Dialect abstracts the differences between the supported database
// engines. Repositories write queries with ? placeholders; the dialect
// rewrites them where the driver needs another syntax.
type Dialect interface {
	// DriverName returns the driver name for sql.Open.
	DriverName() string

	// DSN returns the data source name for the connection.
	DSN(config DialectConfig) string

	// RewriteQuery converts placeholder syntax if needed (? to $1 for
	// postgres).
	RewriteQuery(query string) string

	// SupportsLastInsertId reports whether the driver implements
	// LastInsertId.
	SupportsLastInsertId() bool

	// ConfigureConnection applies engine-specific connection settings.
	ConfigureConnection(db *sql.DB) error

	// MigrationsSubdir returns the per-engine migrations directory name.
	MigrationsSubdir() string

	// CreateMigrationsTableQuery returns the SQL for the migrations
	// tracking table.
	CreateMigrationsTableQuery() string

	// BoolValue returns the SQL literal for a boolean.
	BoolValue(b bool) string
}

// DialectConfig holds the connection settings a dialect needs.
type DialectConfig struct {
	// Path is the database file, SQLite only.
	Path string

	// URL is the connection string for PostgreSQL and MySQL.
	URL string
}

var placeholderRegexp = regexp.MustCompile(`\?`)

// rewritePlaceholdersToNumbered converts ? placeholders to $1, $2, ...
func rewritePlaceholdersToNumbered(query string) string {
	counter := 0
	return placeholderRegexp.ReplaceAllStringFunc(query, func(string) string {
		counter++
		return "$" + strconv.Itoa(counter)
	})
}
