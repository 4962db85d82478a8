package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/partsdash/internal/settings/domain"
	"github.com/aussiebroadwan/partsdash/internal/settings/metrics"
	"github.com/aussiebroadwan/partsdash/internal/settings/store"
	"github.com/aussiebroadwan/partsdash/pkg/idx"
	"github.com/aussiebroadwan/partsdash/pkg/slogx"
)

// ErrPersistence wraps every failure coming from the store.
var ErrPersistence = errors.New("settings: persistence failure")

type SettingsService struct {
	Store   store.Store
	Metrics *metrics.Metrics // optional

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *SettingsService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// GetUserSettings returns the user's document, creating the default one on
// first access.
func (s *SettingsService) GetUserSettings(ctx context.Context, userID string) (domain.Settings, error) {
	l := slogx.FromContext(ctx)

	doc, err := s.Store.Settings().GetByUserID(ctx, userID)
	if err == nil {
		s.Metrics.ObserveOperation("get", nil)
		return doc, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		l.Error("failed to load settings", "user_id", userID, "error", err)
		s.Metrics.ObserveOperation("get", err)
		return domain.Settings{}, fmt.Errorf("%w: get settings: %w", ErrPersistence, err)
	}

	doc, err = s.CreateDefaultSettings(ctx, userID)
	if errors.Is(err, store.ErrAlreadyExists) {
		// Another request created the document between our read and insert.
		doc, err = s.Store.Settings().GetByUserID(ctx, userID)
		if err != nil {
			l.Error("failed to reload settings after create conflict", "user_id", userID, "error", err)
			err = fmt.Errorf("%w: get settings: %w", ErrPersistence, err)
		}
	}
	s.Metrics.ObserveOperation("get", err)
	if err != nil {
		return domain.Settings{}, err
	}
	return doc, nil
}

// UpdateUserSettings replaces every section named in update, creating the
// document first if the user has none. Sections are replaced wholesale;
// fields are never merged with the stored section. Concurrent updates are
// last-write-wins.
func (s *SettingsService) UpdateUserSettings(
	ctx context.Context,
	userID string,
	update domain.SettingsUpdate,
) (domain.Settings, error) {
	l := slogx.FromContext(ctx)

	var updated domain.Settings
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Settings().GetByUserID(ctx, userID)
		switch {
		case err == nil:
		case errors.Is(err, store.ErrNotFound):
			current = domain.DefaultSettings(idx.New().String(), userID, s.now())
		default:
			return err
		}

		next := update.Apply(current)
		next.LastUpdated = s.nextTimestamp(current.LastUpdated)

		if err := tx.Settings().Upsert(ctx, next); err != nil {
			return err
		}
		updated = next
		return nil
	})
	s.Metrics.ObserveOperation("update", err)
	if err != nil {
		l.Error("failed to update settings", "user_id", userID, "error", err)
		return domain.Settings{}, fmt.Errorf("%w: update settings: %w", ErrPersistence, err)
	}

	l.Info("settings updated", "user_id", userID)
	return updated, nil
}

// ResetUserSettings deletes the user's document and recreates the defaults.
// The two steps are separate store calls: a reader in between sees no
// document (and will lazily create one), and a crash in between leaves the
// user without a document until the next read.
func (s *SettingsService) ResetUserSettings(ctx context.Context, userID string) (domain.Settings, error) {
	l := slogx.FromContext(ctx)

	if err := s.Store.Settings().DeleteByUserID(ctx, userID); err != nil {
		l.Error("failed to delete settings", "user_id", userID, "error", err)
		s.Metrics.ObserveOperation("reset", err)
		return domain.Settings{}, fmt.Errorf("%w: reset settings: %w", ErrPersistence, err)
	}

	doc, err := s.CreateDefaultSettings(ctx, userID)
	s.Metrics.ObserveOperation("reset", err)
	if err != nil {
		return domain.Settings{}, err
	}

	l.Info("settings reset to defaults", "user_id", userID)
	return doc, nil
}

// CreateDefaultSettings persists and returns the default document for userID.
// Fails with an error matching store.ErrAlreadyExists if one already exists.
func (s *SettingsService) CreateDefaultSettings(ctx context.Context, userID string) (domain.Settings, error) {
	l := slogx.FromContext(ctx)

	doc := domain.DefaultSettings(idx.New().String(), userID, s.now())
	if err := s.Store.Settings().Create(ctx, doc); err != nil {
		if !errors.Is(err, store.ErrAlreadyExists) {
			l.Error("failed to create default settings", "user_id", userID, "error", err)
		}
		return domain.Settings{}, fmt.Errorf("%w: create default settings: %w", ErrPersistence, err)
	}

	s.Metrics.IncrementDefaultsCreated()
	l.Info("default settings created", "user_id", userID, "settings_id", doc.ID)
	return doc, nil
}

// nextTimestamp returns now, or just after prev when the clock hasn't moved
// past it, so lastUpdated strictly increases on every update.
func (s *SettingsService) nextTimestamp(prev time.Time) time.Time {
	now := s.now()
	if !now.After(prev) {
		return prev.Add(time.Nanosecond)
	}
	return now
}
