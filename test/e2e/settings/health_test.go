package settings_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/partsdash/pkg/settingssdk"
)

func TestLivezEndpoint(t *testing.T) {
	baseURL := setupSettingsContainer(t, nil)
	client, _ := newSignedInClient(t, baseURL, "probe")

	health, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
}

func TestReadyzEndpoint(t *testing.T) {
	baseURL := setupSettingsContainer(t, nil)

	resp, err := http.Get(baseURL + "/readyz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health settingssdk.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	require.Equal(t, "ok", health.Checks.Database)
}
