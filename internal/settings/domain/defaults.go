package domain

import "time"

// Default section values for a freshly created document.
const (
	DefaultPrimaryColor    = "#1976d2"
	DefaultSecondaryColor  = "#dc004e"
	DefaultFrequency       = "immediate"
	DefaultLanguage        = "en"
	DefaultTimezone        = "UTC"
	DefaultDashboardLayout = "default"
	DefaultFontSize        = "medium"
)

// DefaultSettings returns the default document for userID. Each call returns
// fresh pointers so callers may mutate the result freely.
func DefaultSettings(id, userID string, now time.Time) Settings {
	return Settings{
		ID:     id,
		UserID: userID,
		Theme: Theme{
			DarkMode:       ptr(false),
			PrimaryColor:   ptr(DefaultPrimaryColor),
			SecondaryColor: ptr(DefaultSecondaryColor),
		},
		Notifications: Notifications{
			Enabled:   ptr(true),
			Email:     ptr(true),
			Push:      ptr(false),
			Frequency: ptr(DefaultFrequency),
		},
		Preferences: Preferences{
			Language:        ptr(DefaultLanguage),
			Timezone:        ptr(DefaultTimezone),
			DashboardLayout: ptr(DefaultDashboardLayout),
			FontSize:        ptr(DefaultFontSize),
		},
		Advanced: Advanced{
			DeveloperMode: ptr(false),
			Analytics:     ptr(true),
		},
		CreatedAt:   now,
		LastUpdated: now,
	}
}

func ptr[T any](v T) *T { return &v }
