package settingssdk

import (
	"encoding/json"
	"time"
)

// ============================================================================
// Envelope
// ============================================================================

// Envelope wraps every settings API response.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message"`
}

// rawEnvelope is used when decoding responses whose data shape is unknown
// (error responses in particular).
type rawEnvelope = Envelope[json.RawMessage]

// ============================================================================
// Settings Types
// ============================================================================

// SettingsDocument is the per-user settings document as returned by the API.
type SettingsDocument struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	Theme         Theme         `json:"theme"`
	Notifications Notifications `json:"notifications"`
	Preferences   Preferences   `json:"preferences"`
	Advanced      Advanced      `json:"advanced"`
	CreatedAt     time.Time     `json:"createdAt"`
	LastUpdated   time.Time     `json:"lastUpdated"`
}

// Theme controls the dashboard's look.
type Theme struct {
	DarkMode       *bool   `json:"darkMode,omitempty"`
	PrimaryColor   *string `json:"primaryColor,omitempty"`
	SecondaryColor *string `json:"secondaryColor,omitempty"`
}

// Notifications controls which channels deliver order and stock alerts.
type Notifications struct {
	Enabled   *bool   `json:"enabled,omitempty"`
	Email     *bool   `json:"email,omitempty"`
	Push      *bool   `json:"push,omitempty"`
	Frequency *string `json:"frequency,omitempty"`
}

// Preferences holds locale and layout choices.
type Preferences struct {
	Language        *string `json:"language,omitempty"`
	Timezone        *string `json:"timezone,omitempty"`
	DashboardLayout *string `json:"dashboardLayout,omitempty"`
	FontSize        *string `json:"fontSize,omitempty"`
}

// Advanced holds developer toggles.
type Advanced struct {
	DeveloperMode *bool `json:"developerMode,omitempty"`
	Analytics     *bool `json:"analytics,omitempty"`
}

// SettingsUpdate is the PUT /v1/settings body. Each non-nil section replaces
// the stored section entirely; fields left out of a section are dropped, not
// kept from the previous value.
type SettingsUpdate struct {
	Theme         *Theme         `json:"theme,omitempty"`
	Notifications *Notifications `json:"notifications,omitempty"`
	Preferences   *Preferences   `json:"preferences,omitempty"`
	Advanced      *Advanced      `json:"advanced,omitempty"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the readiness of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// Bool and String build optional section fields.
func Bool(v bool) *bool { return &v }

func String(v string) *string { return &v }
