package domain

import "time"

// Settings is the per-user preferences document. Exactly one exists per
// UserID.
//
// Fields inside each section are pointers: a section is stored exactly as the
// caller last supplied it, so a field the caller left out stays absent rather
// than collapsing to its zero value.
type Settings struct {
	ID            string
	UserID        string
	Theme         Theme
	Notifications Notifications
	Preferences   Preferences
	Advanced      Advanced
	CreatedAt     time.Time
	LastUpdated   time.Time
}

type Theme struct {
	DarkMode       *bool   `json:"darkMode,omitempty"`
	PrimaryColor   *string `json:"primaryColor,omitempty"`
	SecondaryColor *string `json:"secondaryColor,omitempty"`
}

type Notifications struct {
	Enabled   *bool   `json:"enabled,omitempty"`
	Email     *bool   `json:"email,omitempty"`
	Push      *bool   `json:"push,omitempty"`
	Frequency *string `json:"frequency,omitempty"` // "immediate", "daily", "weekly"
}

type Preferences struct {
	Language        *string `json:"language,omitempty"`
	Timezone        *string `json:"timezone,omitempty"`
	DashboardLayout *string `json:"dashboardLayout,omitempty"`
	FontSize        *string `json:"fontSize,omitempty"`
}

type Advanced struct {
	DeveloperMode *bool `json:"developerMode,omitempty"`
	Analytics     *bool `json:"analytics,omitempty"`
}

// SettingsUpdate names the sections to replace. A nil section is left as is;
// a non-nil section overwrites the stored one wholesale (no field merge).
type SettingsUpdate struct {
	Theme         *Theme
	Notifications *Notifications
	Preferences   *Preferences
	Advanced      *Advanced
}

// IsEmpty reports whether the update names no section at all.
func (u SettingsUpdate) IsEmpty() bool {
	return u.Theme == nil && u.Notifications == nil && u.Preferences == nil && u.Advanced == nil
}

// Apply replaces every section named by u and returns the result. s is not
// modified.
func (u SettingsUpdate) Apply(s Settings) Settings {
	if u.Theme != nil {
		s.Theme = *u.Theme
	}
	if u.Notifications != nil {
		s.Notifications = *u.Notifications
	}
	if u.Preferences != nil {
		s.Preferences = *u.Preferences
	}
	if u.Advanced != nil {
		s.Advanced = *u.Advanced
	}
	return s
}
