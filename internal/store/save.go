package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sumstars/sumstars/internal/progress"
)

// defaultSlot names the single save entry. The game is one installation,
// one player; slots exist so tests can isolate entries.
const defaultSlot = "default"

// saveRepo implements progress.SaveStore on the save_slots table.
// The save document is stored as one JSON blob per slot.
type saveRepo struct {
	db   *sql.DB
	slot string
}

var _ progress.SaveStore = (*saveRepo)(nil)

// SaveRepo returns a progress.SaveStore backed by this store's default slot.
func (s *Store) SaveRepo() progress.SaveStore {
	return &saveRepo{db: s.db, slot: defaultSlot}
}

// SaveRepoForSlot returns a progress.SaveStore bound to a named slot.
func (s *Store) SaveRepoForSlot(slot string) progress.SaveStore {
	return &saveRepo{db: s.db, slot: slot}
}

// Load reads and decodes the slot's save document.
// A missing slot returns (nil, nil); corrupted JSON returns an error,
// which the progress model resolves to default values.
func (r *saveRepo) Load(ctx context.Context) (*progress.SaveData, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		"SELECT data FROM save_slots WHERE slot = ?", r.slot).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read save slot %q: %w", r.slot, err)
	}

	var data progress.SaveData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("decode save slot %q: %w", r.slot, err)
	}
	return &data, nil
}

// Save writes the full document, replacing any previous entry.
func (r *saveRepo) Save(ctx context.Context, data *progress.SaveData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode save data: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO save_slots (slot, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		r.slot, string(raw), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("write save slot %q: %w", r.slot, err)
	}
	return nil
}

// Delete removes the slot entirely. Deleting a missing slot is not an error.
func (r *saveRepo) Delete(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM save_slots WHERE slot = ?", r.slot); err != nil {
		return fmt.Errorf("delete save slot %q: %w", r.slot, err)
	}
	return nil
}
