package theme

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gyansetu/website/internal/db"
)

// DBPersister stores one visitor's preference in the preferences table.
type DBPersister struct {
	db        *db.DB
	visitorID string
}

// NewDBPersister creates a persister scoped to visitorID.
func NewDBPersister(database *db.DB, visitorID string) *DBPersister {
	return &DBPersister{db: database, visitorID: visitorID}
}

// Load returns the stored value, or "" when nothing has been saved yet.
func (p *DBPersister) Load(ctx context.Context) (string, error) {
	var value string
	err := p.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE visitor_id = ? AND key = ?`,
		p.visitorID, Key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading preference: %w", err)
	}
	return value, nil
}

// Save upserts the preference.
func (p *DBPersister) Save(ctx context.Context, value string) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO preferences (visitor_id, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(visitor_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		p.visitorID, Key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("writing preference: %w", err)
	}
	return nil
}

// MemoryPersister keeps the value in memory. It is used when no database is
// configured, e.g. during a static export.
type MemoryPersister struct {
	Value string
}

func (p *MemoryPersister) Load(context.Context) (string, error) { return p.Value, nil }

func (p *MemoryPersister) Save(_ context.Context, value string) error {
	p.Value = value
	return nil
}
