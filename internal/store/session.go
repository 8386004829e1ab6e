package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/deepdish/chicagotrail/internal/game"
)

// SessionRepo implements game.Repo on the sessions table. Each day's
// state is one row: the date key plus the JSON-encoded state blob.
type SessionRepo struct {
	db *sql.DB
}

var _ game.Repo = (*SessionRepo)(nil)

func (r *SessionRepo) Load(ctx context.Context, dateKey string) (*game.State, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM sessions WHERE date = ?`, dateKey,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, game.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", dateKey, err)
	}

	var state game.State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", dateKey, err)
	}
	return &state, nil
}

func (r *SessionRepo) Save(ctx context.Context, state *game.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", state.Date, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO sessions (date, data, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(date) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at`,
		state.Date, string(data),
	)
	if err != nil {
		return fmt.Errorf("save session %s: %w", state.Date, err)
	}
	return nil
}

func (r *SessionRepo) List(ctx context.Context) ([]*game.State, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM sessions ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var states []*game.State
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		var state game.State
		if err := json.Unmarshal([]byte(data), &state); err != nil {
			continue // unreadable rows are skipped, not fatal
		}
		states = append(states, &state)
	}
	return states, rows.Err()
}

func (r *SessionRepo) Delete(ctx context.Context, dateKey string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE date = ?`, dateKey); err != nil {
		return fmt.Errorf("delete session %s: %w", dateKey, err)
	}
	return nil
}

func (r *SessionRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("delete all sessions: %w", err)
	}
	return nil
}
