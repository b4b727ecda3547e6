package db

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"slices"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"github.com/erazemk/inventar/internal/config"
)

// Open opens a database handle for cfg and verifies it with a ping.
// It returns *DriverMissingError before dialing when the driver is unknown,
// and *ConnectionError for any failure while connecting.
func Open(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
	if !slices.Contains(sql.Drivers(), cfg.Driver) {
		return nil, &DriverMissingError{Driver: cfg.Driver}
	}

	switch cfg.Driver {
	case config.DriverSQLite:
		return openSQLite(ctx, cfg.Name)
	default:
		return openMySQL(ctx, cfg)
	}
}

// DialTimeout bounds establishing a single MySQL connection.
const DialTimeout = 5 * time.Second

// DSN builds the MySQL data source name for cfg. The port is only added when
// set. Placeholders are always prepared by the server.
func DSN(cfg config.DBConfig) string {
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = cfg.Host
	if cfg.Port != "" {
		mc.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
	}
	mc.DBName = cfg.Name
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.ParseTime = true
	mc.Timeout = DialTimeout
	mc.InterpolateParams = false
	mc.Params = map[string]string{"charset": cfg.Charset}
	return mc.FormatDSN()
}

func openMySQL(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open(config.DriverMySQL, DSN(cfg))
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, &ConnectionError{Err: err}
	}
	return db, nil
}

// openSQLite opens a SQLite database file and configures pragmas.
func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open(config.DriverSQLite, path)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	// One connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, &ConnectionError{Err: fmt.Errorf("setting pragma %q: %w", p, err)}
		}
	}

	return db, nil
}
