package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/r3xsean/starguide-public-sub001/internal/hsr/roster"
)

// RosterRepository handles database operations for the user's roster.
type RosterRepository interface {
	// Upsert inserts or updates the investment state for one character.
	Upsert(ctx context.Context, characterID string, inv roster.Investment) error

	// Get retrieves the investment state for one character. Characters
	// with no row are reported as not owned.
	Get(ctx context.Context, characterID string) (roster.Investment, error)

	// Snapshot retrieves the whole roster as the read-only snapshot the
	// advisor consumes.
	Snapshot(ctx context.Context) (roster.Snapshot, error)

	// Delete removes a character's investment row entirely.
	Delete(ctx context.Context, characterID string) error
}

type rosterRepository struct {
	db *sql.DB
}

// NewRosterRepository creates a roster repository over the given connection.
func NewRosterRepository(db *sql.DB) RosterRepository {
	return &rosterRepository{db: db}
}

func (r *rosterRepository) Upsert(ctx context.Context, characterID string, inv roster.Investment) error {
	query := `
		INSERT INTO roster (character_id, status, eidolon, signature, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(character_id) DO UPDATE SET
			status = excluded.status,
			eidolon = excluded.eidolon,
			signature = excluded.signature,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query, characterID, string(inv.Status), inv.Eidolon, inv.Signature, time.Now())
	if err != nil {
		return fmt.Errorf("upsert roster entry: %w", err)
	}
	return nil
}

func (r *rosterRepository) Get(ctx context.Context, characterID string) (roster.Investment, error) {
	query := `SELECT status, eidolon, signature FROM roster WHERE character_id = ?`

	var status string
	var inv roster.Investment
	err := r.db.QueryRowContext(ctx, query, characterID).Scan(&status, &inv.Eidolon, &inv.Signature)
	if err == sql.ErrNoRows {
		return roster.Investment{Status: roster.StatusNone}, nil
	}
	if err != nil {
		return roster.Investment{}, fmt.Errorf("get roster entry: %w", err)
	}

	inv.Status = roster.Ownership(status)
	return inv, nil
}

func (r *rosterRepository) Snapshot(ctx context.Context) (roster.Snapshot, error) {
	query := `SELECT character_id, status, eidolon, signature FROM roster`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query roster: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	snap := make(roster.Snapshot)
	for rows.Next() {
		var id, status string
		var inv roster.Investment
		if err := rows.Scan(&id, &status, &inv.Eidolon, &inv.Signature); err != nil {
			return nil, fmt.Errorf("scan roster entry: %w", err)
		}
		inv.Status = roster.Ownership(status)
		snap[id] = inv
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roster: %w", err)
	}

	return snap, nil
}

func (r *rosterRepository) Delete(ctx context.Context, characterID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM roster WHERE character_id = ?`, characterID)
	if err != nil {
		return fmt.Errorf("delete roster entry: %w", err)
	}
	return nil
}
