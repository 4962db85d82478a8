package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/partsdash/internal/settings/domain"
	"github.com/aussiebroadwan/partsdash/pkg/httpx"
	"github.com/aussiebroadwan/partsdash/pkg/settingssdk"
)

type fakeManager struct {
	doc        domain.Settings
	err        error
	lastUser   string
	lastUpdate domain.SettingsUpdate
	calls      int
}

func (f *fakeManager) GetUserSettings(_ context.Context, userID string) (domain.Settings, error) {
	f.calls++
	f.lastUser = userID
	return f.doc, f.err
}

func (f *fakeManager) UpdateUserSettings(_ context.Context, userID string, u domain.SettingsUpdate) (domain.Settings, error) {
	f.calls++
	f.lastUser = userID
	f.lastUpdate = u
	if f.err != nil {
		return domain.Settings{}, f.err
	}
	return u.Apply(f.doc), nil
}

func (f *fakeManager) ResetUserSettings(_ context.Context, userID string) (domain.Settings, error) {
	f.calls++
	f.lastUser = userID
	return f.doc, f.err
}

func newAuthedRequest(method, target, body, userID string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if userID != "" {
		req = req.WithContext(httpx.WithUserID(req.Context(), userID))
	}
	return req
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) settingssdk.Envelope[T] {
	t.Helper()
	var env settingssdk.Envelope[T]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func TestSettingsHandler_Get(t *testing.T) {
	t.Parallel()

	doc := domain.DefaultSettings("doc-1", "user-1", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	mgr := &fakeManager{doc: doc}
	h := &SettingsHandler{Settings: mgr}

	rec := httptest.NewRecorder()
	h.HandleGet(rec, newAuthedRequest(http.MethodGet, "/v1/settings", "", "user-1"))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "user-1", mgr.lastUser)

	env := decodeEnvelope[settingssdk.SettingsDocument](t, rec)
	require.True(t, env.Success)
	require.Equal(t, "settings retrieved", env.Message)
	require.Equal(t, "doc-1", env.Data.ID)
	require.Equal(t, "#1976d2", *env.Data.Theme.PrimaryColor)
	require.Equal(t, "immediate", *env.Data.Notifications.Frequency)
}

func TestSettingsHandler_MissingIdentity(t *testing.T) {
	t.Parallel()

	mgr := &fakeManager{}
	h := &SettingsHandler{Settings: mgr}

	handlers := map[string]http.HandlerFunc{
		"get":    h.HandleGet,
		"update": h.HandleUpdate,
		"reset":  h.HandleReset,
	}
	for name, fn := range handlers {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			fn(rec, newAuthedRequest(http.MethodPost, "/v1/settings", "{}", ""))

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			env := decodeEnvelope[any](t, rec)
			require.False(t, env.Success)
			require.Equal(t, "authentication required", env.Message)
		})
	}
	require.Zero(t, mgr.calls)
}

func TestSettingsHandler_ServiceFailureIsGeneric500(t *testing.T) {
	t.Parallel()

	mgr := &fakeManager{err: errors.New("disk on fire")}
	h := &SettingsHandler{Settings: mgr}

	handlers := map[string]http.HandlerFunc{
		"get":    h.HandleGet,
		"update": h.HandleUpdate,
		"reset":  h.HandleReset,
	}
	for name, fn := range handlers {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			fn(rec, newAuthedRequest(http.MethodPost, "/v1/settings", `{"theme":{"darkMode":true}}`, "user-1"))

			require.Equal(t, http.StatusInternalServerError, rec.Code)
			body := rec.Body.String()
			require.NotContains(t, body, "disk on fire")

			var env settingssdk.Envelope[any]
			require.NoError(t, json.Unmarshal([]byte(body), &env))
			require.False(t, env.Success)
			require.Equal(t, "internal server error", env.Message)
		})
	}
}

func TestSettingsHandler_UpdatePassesSectionsThrough(t *testing.T) {
	t.Parallel()

	doc := domain.DefaultSettings("doc-1", "user-1", time.Now())
	mgr := &fakeManager{doc: doc}
	h := &SettingsHandler{Settings: mgr}

	rec := httptest.NewRecorder()
	h.HandleUpdate(rec, newAuthedRequest(http.MethodPut, "/v1/settings",
		`{"notifications":{"enabled":false},"unknown":{"x":1}}`, "user-1"))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Nil(t, mgr.lastUpdate.Theme)
	require.Nil(t, mgr.lastUpdate.Preferences)
	require.Nil(t, mgr.lastUpdate.Advanced)
	require.NotNil(t, mgr.lastUpdate.Notifications)
	require.Equal(t, domain.Notifications{Enabled: ptr(false)}, *mgr.lastUpdate.Notifications)

	env := decodeEnvelope[settingssdk.SettingsDocument](t, rec)
	require.Equal(t, "settings updated", env.Message)
	require.False(t, *env.Data.Notifications.Enabled)
	require.Nil(t, env.Data.Notifications.Email, "section is replaced, not merged")
	require.Equal(t, "#1976d2", *env.Data.Theme.PrimaryColor)
}

func TestSettingsHandler_UpdateBadJSON(t *testing.T) {
	t.Parallel()

	mgr := &fakeManager{}
	h := &SettingsHandler{Settings: mgr}

	rec := httptest.NewRecorder()
	h.HandleUpdate(rec, newAuthedRequest(http.MethodPut, "/v1/settings", `{"theme":`, "user-1"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Zero(t, mgr.calls)
}

func TestSettingsHandler_UpdateEmptyBody(t *testing.T) {
	t.Parallel()

	mgr := &fakeManager{doc: domain.DefaultSettings("doc-1", "user-1", time.Now())}
	h := &SettingsHandler{Settings: mgr}

	rec := httptest.NewRecorder()
	h.HandleUpdate(rec, newAuthedRequest(http.MethodPut, "/v1/settings", "", "user-1"))

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, mgr.lastUpdate.IsEmpty())
}

func TestSettingsHandler_Reset(t *testing.T) {
	t.Parallel()

	mgr := &fakeManager{doc: domain.DefaultSettings("doc-2", "user-1", time.Now())}
	h := &SettingsHandler{Settings: mgr}

	rec := httptest.NewRecorder()
	h.HandleReset(rec, newAuthedRequest(http.MethodPost, "/v1/settings/reset", "", "user-1"))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope[settingssdk.SettingsDocument](t, rec)
	require.True(t, env.Success)
	require.Equal(t, "settings reset to defaults", env.Message)
	require.Equal(t, "doc-2", env.Data.ID)
}

func ptr[T any](v T) *T { return &v }
