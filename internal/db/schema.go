package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/inventar/internal/config"
)

// mysqlSchema creates the items table on MySQL/MariaDB.
const mysqlSchema = `
CREATE TABLE IF NOT EXISTS items (
    id         INT AUTO_INCREMENT PRIMARY KEY,
    name       VARCHAR(150) NOT NULL,
    category   VARCHAR(80) DEFAULT NULL,
    quantity   INT DEFAULT NULL,
    price      DECIMAL(10,2) DEFAULT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
)`

// sqliteSchema is the same table for SQLite. updated_at is refreshed by the
// UPDATE statement itself.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS items (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    name       VARCHAR(150) NOT NULL,
    category   VARCHAR(80) DEFAULT NULL,
    quantity   INTEGER DEFAULT NULL CHECK (quantity IS NULL OR quantity >= 0),
    price      DECIMAL(10,2) DEFAULT NULL CHECK (price IS NULL OR price >= 0),
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// EnsureSchema creates the items table if it doesn't already exist.
func EnsureSchema(ctx context.Context, db *sql.DB, driver string) error {
	schema := mysqlSchema
	if driver == config.DriverSQLite {
		schema = sqliteSchema
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
