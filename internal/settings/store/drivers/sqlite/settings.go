package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aussiebroadwan/partsdash/internal/settings/domain"
)

type settingsRepo struct {
	q querier
}

const (
	getSettingsByUserID = `
SELECT id, user_id, theme, notifications, preferences, advanced, created_at, last_updated
FROM user_settings
WHERE user_id = ?`

	createSettings = `
INSERT INTO user_settings (id, user_id, theme, notifications, preferences, advanced, created_at, last_updated)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	upsertSettings = `
INSERT INTO user_settings (id, user_id, theme, notifications, preferences, advanced, created_at, last_updated)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(user_id) DO UPDATE SET
    theme         = excluded.theme,
    notifications = excluded.notifications,
    preferences   = excluded.preferences,
    advanced      = excluded.advanced,
    last_updated  = excluded.last_updated`

	deleteSettingsByUserID = `DELETE FROM user_settings WHERE user_id = ?`

	countSettings = `SELECT COUNT(*) FROM user_settings`
)

// settingsRow is the column-level representation; sections are JSON text.
type settingsRow struct {
	ID            string
	UserID        string
	Theme         string
	Notifications string
	Preferences   string
	Advanced      string
	CreatedAt     string
	LastUpdated   string
}

func (r *settingsRepo) GetByUserID(ctx context.Context, userID string) (domain.Settings, error) {
	var row settingsRow
	err := r.q.QueryRowContext(ctx, getSettingsByUserID, userID).Scan(
		&row.ID,
		&row.UserID,
		&row.Theme,
		&row.Notifications,
		&row.Preferences,
		&row.Advanced,
		&row.CreatedAt,
		&row.LastUpdated,
	)
	if err != nil {
		return domain.Settings{}, mapNotFound(err)
	}
	return mapSettings(row)
}

func (r *settingsRepo) Create(ctx context.Context, s domain.Settings) error {
	args, err := settingsArgs(s)
	if err != nil {
		return err
	}
	if _, err := r.q.ExecContext(ctx, createSettings, args...); err != nil {
		return mapConflict(err)
	}
	return nil
}

func (r *settingsRepo) Upsert(ctx context.Context, s domain.Settings) error {
	args, err := settingsArgs(s)
	if err != nil {
		return err
	}
	_, err = r.q.ExecContext(ctx, upsertSettings, args...)
	return err
}

func (r *settingsRepo) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.q.ExecContext(ctx, deleteSettingsByUserID, userID)
	return err
}

func (r *settingsRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRowContext(ctx, countSettings).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func settingsArgs(s domain.Settings) ([]any, error) {
	theme, err := json.Marshal(s.Theme)
	if err != nil {
		return nil, fmt.Errorf("encode theme: %w", err)
	}
	notifications, err := json.Marshal(s.Notifications)
	if err != nil {
		return nil, fmt.Errorf("encode notifications: %w", err)
	}
	preferences, err := json.Marshal(s.Preferences)
	if err != nil {
		return nil, fmt.Errorf("encode preferences: %w", err)
	}
	advanced, err := json.Marshal(s.Advanced)
	if err != nil {
		return nil, fmt.Errorf("encode advanced: %w", err)
	}

	return []any{
		s.ID,
		s.UserID,
		string(theme),
		string(notifications),
		string(preferences),
		string(advanced),
		formatTime(s.CreatedAt),
		formatTime(s.LastUpdated),
	}, nil
}

func mapSettings(row settingsRow) (domain.Settings, error) {
	s := domain.Settings{
		ID:     row.ID,
		UserID: row.UserID,
	}

	if err := json.Unmarshal([]byte(row.Theme), &s.Theme); err != nil {
		return domain.Settings{}, fmt.Errorf("decode theme: %w", err)
	}
	if err := json.Unmarshal([]byte(row.Notifications), &s.Notifications); err != nil {
		return domain.Settings{}, fmt.Errorf("decode notifications: %w", err)
	}
	if err := json.Unmarshal([]byte(row.Preferences), &s.Preferences); err != nil {
		return domain.Settings{}, fmt.Errorf("decode preferences: %w", err)
	}
	if err := json.Unmarshal([]byte(row.Advanced), &s.Advanced); err != nil {
		return domain.Settings{}, fmt.Errorf("decode advanced: %w", err)
	}

	var err error
	if s.CreatedAt, err = parseTime(row.CreatedAt); err != nil {
		return domain.Settings{}, fmt.Errorf("decode created_at: %w", err)
	}
	if s.LastUpdated, err = parseTime(row.LastUpdated); err != nil {
		return domain.Settings{}, fmt.Errorf("decode last_updated: %w", err)
	}

	return s, nil
}
