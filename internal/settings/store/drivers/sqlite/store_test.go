package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/partsdash/internal/settings/domain"
	"github.com/aussiebroadwan/partsdash/internal/settings/store"
	"github.com/aussiebroadwan/partsdash/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(DSN(filepath.Join(t.TempDir(), "settings.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
}

func TestSettingsCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Settings().GetByUserID(ctx, "user-1")
	require.ErrorIs(t, err, store.ErrNotFound)

	now := time.Now().UTC()
	doc := domain.DefaultSettings(idx.New().String(), "user-1", now)
	require.NoError(t, s.Settings().Create(ctx, doc))

	got, err := s.Settings().GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, doc.ID, got.ID)
	require.Equal(t, doc.Theme, got.Theme)
	require.Equal(t, doc.Notifications, got.Notifications)
	require.Equal(t, doc.Preferences, got.Preferences)
	require.Equal(t, doc.Advanced, got.Advanced)
	require.True(t, now.Equal(got.LastUpdated))

	n, err := s.Settings().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestSettingsCreateRejectsDuplicateUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Settings().Create(ctx, domain.DefaultSettings(idx.New().String(), "user-1", time.Now())))

	err := s.Settings().Create(ctx, domain.DefaultSettings(idx.New().String(), "user-1", time.Now()))
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestSettingsUpsertKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created := time.Now().UTC().Add(-time.Hour)
	doc := domain.DefaultSettings(idx.New().String(), "user-1", created)
	require.NoError(t, s.Settings().Create(ctx, doc))

	dark := true
	next := doc
	next.ID = idx.New().String() // ignored on conflict
	next.Theme = domain.Theme{DarkMode: &dark}
	next.CreatedAt = time.Now().UTC()
	next.LastUpdated = time.Now().UTC()
	require.NoError(t, s.Settings().Upsert(ctx, next))

	got, err := s.Settings().GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, doc.ID, got.ID)
	require.True(t, created.Equal(got.CreatedAt))
	require.Equal(t, domain.Theme{DarkMode: &dark}, got.Theme)
	require.True(t, next.LastUpdated.Equal(got.LastUpdated))
}

func TestSettingsUpsertInsertsWhenMissing(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	doc := domain.DefaultSettings(idx.New().String(), "user-2", time.Now())
	require.NoError(t, s.Settings().Upsert(ctx, doc))

	got, err := s.Settings().GetByUserID(ctx, "user-2")
	require.NoError(t, err)
	require.Equal(t, doc.ID, got.ID)
}

func TestSettingsDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Settings().Create(ctx, domain.DefaultSettings(idx.New().String(), "user-1", time.Now())))
	require.NoError(t, s.Settings().DeleteByUserID(ctx, "user-1"))

	_, err := s.Settings().GetByUserID(ctx, "user-1")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Deleting again is fine.
	require.NoError(t, s.Settings().DeleteByUserID(ctx, "user-1"))
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Settings().Create(ctx, domain.DefaultSettings(idx.New().String(), "user-1", time.Now())))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Settings().GetByUserID(ctx, "user-1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestTxDoesNotNest(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Tx(ctx)
		return err
	})
	require.Error(t, err)
}
