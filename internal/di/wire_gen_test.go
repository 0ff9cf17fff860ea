package di

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"scoreboard/internal/providers"
	"scoreboard/internal/structures"
	"scoreboard/internal/testutil"
	"testing"
)

func isolatedFlags(t *testing.T, name string) *structures.CliFlags {
	t.Helper()
	for _, key := range []string{"APP_ENV", "SUPABASE_URL", "NEXT_PUBLIC_SUPABASE_URL", "SUPABASE_ANON_KEY",
		"NEXT_PUBLIC_SUPABASE_ANON_KEY", "SCOREBOARD_LOG_DIR", "SCOREBOARD_LOG_LEVEL", "SCOREBOARD_API_URL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	dir := t.TempDir()
	return &structures.CliFlags{
		AppName:    name,
		ConfigPath: filepath.Join(dir, "config.yaml"),
		EnvFile:    filepath.Join(dir, ".env"),
	}
}

func TestInitLegacyApp(t *testing.T) {
	flags := isolatedFlags(t, "ScoreboardLegacyClient")

	app, err := InitLegacyApp(flags)
	require.NoError(t, err)
	assert.NotNil(t, app)
}

func TestInitLegacyApp_InvalidConfig(t *testing.T) {
	flags := isolatedFlags(t, "ScoreboardLegacyClient")
	t.Setenv("SCOREBOARD_LOG_LEVEL", "verbose")

	_, err := InitLegacyApp(flags)
	assert.Error(t, err)
}

func TestInitSupabaseApp_MissingKeyMakesNoRequests(t *testing.T) {
	backend := testutil.NewSupabaseBackend()
	defer backend.Close()

	flags := isolatedFlags(t, "ScoreboardSupabaseClient")
	t.Setenv("SUPABASE_URL", backend.URL)

	app, err := InitSupabaseApp(flags)
	assert.ErrorIs(t, err, providers.ErrMissingSupabaseConfig)
	assert.Nil(t, app)
	assert.Empty(t, backend.Recorded())
}

func TestInitSupabaseApp(t *testing.T) {
	backend := testutil.NewSupabaseBackend()
	defer backend.Close()

	flags := isolatedFlags(t, "ScoreboardSupabaseClient")
	t.Setenv("SUPABASE_URL", backend.URL)
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")

	app, err := InitSupabaseApp(flags)
	require.NoError(t, err)
	assert.NotNil(t, app)
	assert.Empty(t, backend.Recorded())
}
