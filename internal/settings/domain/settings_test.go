package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsAreIndependent(t *testing.T) {
	t.Parallel()

	now := time.Now()
	a := DefaultSettings("a", "user-a", now)
	b := DefaultSettings("b", "user-b", now)

	*a.Theme.DarkMode = true
	require.False(t, *b.Theme.DarkMode)
}

func TestApplyReplacesWholeSections(t *testing.T) {
	t.Parallel()

	base := DefaultSettings("id", "user", time.Now())
	disabled := false

	got := SettingsUpdate{Notifications: &Notifications{Enabled: &disabled}}.Apply(base)

	require.Equal(t, Notifications{Enabled: &disabled}, got.Notifications)
	require.Nil(t, got.Notifications.Email)
	require.Equal(t, base.Theme, got.Theme)
	require.Equal(t, base.Preferences, got.Preferences)
	require.Equal(t, base.Advanced, got.Advanced)

	// The input document is untouched.
	require.True(t, *base.Notifications.Enabled)
}

func TestSettingsUpdateIsEmpty(t *testing.T) {
	t.Parallel()

	require.True(t, SettingsUpdate{}.IsEmpty())
	require.False(t, SettingsUpdate{Advanced: &Advanced{}}.IsEmpty())
}
