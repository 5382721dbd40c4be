package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, BackendPostgres, cfg.Backend)
	assert.Equal(t, 5*time.Minute, cfg.Cache.CitiesCacheTTL)
	assert.Equal(t, time.Hour, cfg.Cache.StatsCacheTTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ":8080", cfg.GetServerAddr())
}

func TestLoadFile_FromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "API_PORT=9090\nDATA_BACKEND=supabase\nSUPABASE_URL=https://demo.supabase.co/\nSUPABASE_SERVICE_ROLE_KEY=secret\nCITIES_CACHE_TTL=60\nREDIS_HOST=cache\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, BackendSupabase, cfg.Backend)
	assert.Equal(t, "https://demo.supabase.co", cfg.Supabase.URL)
	assert.Equal(t, time.Minute, cfg.Cache.CitiesCacheTTL)
	assert.Equal(t, "cache:6379", cfg.GetRedisAddr())
}

func TestLoadFile_SupabaseRequiresCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATA_BACKEND=supabase\n"), 0o600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFile_UnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATA_BACKEND=mongo\n"), 0o600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
