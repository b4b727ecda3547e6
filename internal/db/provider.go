package db

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/erazemk/inventar/internal/config"
)

// openTimeout bounds connecting and creating the schema, so callers waiting on
// the lock are not held longer than that by an unreachable host.
const openTimeout = 10 * time.Second

// Provider opens the database on first use and hands out the same pool
// afterwards. A failed attempt is not cached: the next call tries again, so a
// database that comes up late does not require a restart.
type Provider struct {
	cfg config.DBConfig

	mu sync.Mutex
	db *sql.DB
}

// NewProvider returns a Provider for cfg. No connection is made yet.
func NewProvider(cfg config.DBConfig) *Provider {
	return &Provider{cfg: cfg}
}

// NewProviderFromDB wraps an already open handle, for tests and tools.
func NewProviderFromDB(db *sql.DB, driver string) *Provider {
	return &Provider{cfg: config.DBConfig{Driver: driver}, db: db}
}

// Config returns the configuration the provider connects with.
func (p *Provider) Config() config.DBConfig {
	return p.cfg
}

// DB returns the open pool, connecting and ensuring the schema on first use.
func (p *Provider) DB(ctx context.Context) (*sql.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != nil {
		return p.db, nil
	}

	ctx, cancel := context.WithTimeout(ctx, openTimeout)
	defer cancel()

	db, err := Open(ctx, p.cfg)
	if err != nil {
		return nil, err
	}
	if err := EnsureSchema(ctx, db, p.cfg.Driver); err != nil {
		db.Close()
		return nil, &ConnectionError{Err: err}
	}

	p.db = db
	return db, nil
}

// Close closes the pool if it was opened.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	return err
}
