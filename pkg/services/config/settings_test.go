package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_DefaultsApplyForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("concurrency: 8\n"), 0o600))

	settings, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, 8, settings.Concurrency)
	assert.Equal(t, 3, settings.RetryMax)
	assert.Equal(t, time.Second, settings.RetryWait())
}

func TestLoadSettings_MissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestRegistry_ProfilesAndCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fabricmigrc")
	require.NoError(t, os.WriteFile(path, []byte(`[contoso]
tenant_id = tid-1
client_id = cid-1
client_secret = secret
api_host = https://example.test/v1.0/myorg
`), 0o600))

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	profiles, err := registry.GetProfiles(t.Context())
	require.NoError(t, err)
	assert.Contains(t, profiles, "contoso")

	creds, err := registry.GetCredentials(t.Context(), "contoso")
	require.NoError(t, err)
	assert.Equal(t, "tid-1", creds.TenantID)
	assert.Equal(t, "cid-1", creds.ClientID)

	assert.Equal(t, "https://example.test/v1.0/myorg", registry.GetAPIHost(t.Context(), "contoso"))
	assert.Equal(t, defaultAPIHost, registry.GetAPIHost(t.Context(), "unknown"))
}

func TestRegistry_IncompleteProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fabricmigrc")
	require.NoError(t, os.WriteFile(path, []byte("[broken]\nclient_secret = s\n"), 0o600))

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	_, err = registry.GetCredentials(t.Context(), "broken")
	assert.Error(t, err)
}
