package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/partsdash/pkg/jwtx"
	"github.com/aussiebroadwan/partsdash/pkg/settingssdk"
	"github.com/aussiebroadwan/partsdash/pkg/slogx"
)

func TestApplicationServesSettings(t *testing.T) {
	cfg := defaultConfig()
	cfg.JWTSecret = testSecret
	cfg.DatabaseFile = filepath.Join(t.TempDir(), "settings.db")
	cfg.LogLevel = "error"

	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Shutdown() })

	srv := httptest.NewServer(app.Handler())
	t.Cleanup(srv.Close)

	signer, err := jwtx.NewHS256([]byte(testSecret), cfg.Issuer)
	require.NoError(t, err)
	token, err := signer.Sign(jwtx.NewAccessClaims("user-1", cfg.Issuer,
		[]string{"settings:read", "settings:write"}, time.Hour, time.Now()))
	require.NoError(t, err)

	client := settingssdk.NewSDKClient(srv.URL, settingssdk.NewGateway(
		settingssdk.NewMemoryTokenStore(), nil, slogx.Discard()))
	require.NoError(t, client.SignIn(settingssdk.Credentials{AuthToken: token}))

	doc, err := client.GetSettings(context.Background())
	require.NoError(t, err)
	require.Equal(t, "user-1", doc.UserID)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestApplicationRejectsForeignIssuer(t *testing.T) {
	cfg := defaultConfig()
	cfg.JWTSecret = testSecret
	cfg.DatabaseFile = filepath.Join(t.TempDir(), "settings.db")
	cfg.LogLevel = "error"

	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Shutdown() })

	srv := httptest.NewServer(app.Handler())
	t.Cleanup(srv.Close)

	signer, err := jwtx.NewHS256([]byte(testSecret), "someone-else")
	require.NoError(t, err)
	token, err := signer.Sign(jwtx.NewAccessClaims("user-1", "someone-else",
		[]string{"settings:read"}, time.Hour, time.Now()))
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/v1/settings", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
