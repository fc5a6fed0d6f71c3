package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cfgsmith/cfgsmith/internal/logging"
)

// ErrProfileNotFound is returned when a named profile does not exist.
var ErrProfileNotFound = errors.New("profile not found")

// Profile describes one saved snapshot.
type Profile struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SavedSetting is one row of a profile snapshot. Value is the setting's
// config-line representation; the engine re-parses it on restore.
type SavedSetting struct {
	Command  string
	Value    string
	Included bool
}

// SaveProfile stores a snapshot under name, replacing any previous snapshot
// with that name. The whole write is one transaction.
func (s *Store) SaveProfile(ctx context.Context, name string, settings []SavedSetting) error {
	log := logging.FromContext(ctx)

	if name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var id int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO profiles (name) VALUES (?)
		 ON CONFLICT(name) DO UPDATE SET updated_at = CURRENT_TIMESTAMP
		 RETURNING id`, name).Scan(&id)
	if err != nil {
		return fmt.Errorf("upsert profile %q: %w", name, err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM profile_settings WHERE profile_id = ?`, id); err != nil {
		return fmt.Errorf("clear profile %q: %w", name, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO profile_settings (profile_id, command, value, included)
		 VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, set := range settings {
		if _, err := stmt.ExecContext(ctx, id, set.Command, set.Value, set.Included); err != nil {
			return fmt.Errorf("save setting %q: %w", set.Command, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}

	log.Debug().Str("profile", name).Int("settings", len(settings)).Msg("profile saved")
	return nil
}

// LoadProfile returns the snapshot saved under name.
func (s *Store) LoadProfile(ctx context.Context, name string) ([]SavedSetting, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM profiles WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("look up profile %q: %w", name, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT command, value, included FROM profile_settings
		 WHERE profile_id = ? ORDER BY command`, id)
	if err != nil {
		return nil, fmt.Errorf("load profile %q: %w", name, err)
	}
	defer func() { _ = rows.Close() }()

	var settings []SavedSetting
	for rows.Next() {
		var set SavedSetting
		if err := rows.Scan(&set.Command, &set.Value, &set.Included); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		settings = append(settings, set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate settings: %w", err)
	}
	return settings, nil
}

// ListProfiles returns all saved profiles, most recently updated first.
func (s *Store) ListProfiles(ctx context.Context) ([]Profile, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM profiles
		 ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	return profiles, nil
}

// DeleteProfile removes the named profile and its settings.
func (s *Store) DeleteProfile(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM profiles WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete profile %q: %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	return nil
}
