package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// reload consumes the Load once-guard first so getters do not re-read the
// working directory behind the test's back.
func reload(paths ...string) error {
	_ = Load()
	return loadFromFiles(paths...)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	jsonPath := write(t, dir, "app.json", `{"app_port": "9000", "db_driver": "postgres", "debug": true}`)
	envPath := write(t, dir, ".env", "APP_PORT=9100\n# comment\nPLACEHOLDER_IMAGE=\"https://img.test/none.png\"\n")
	localPath := write(t, dir, ".env.local", "APP_PORT=9200\n")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test ,")

	require.NoError(t, reload(jsonPath, envPath, localPath, filepath.Join(dir, "missing.env")))

	assert.Equal(t, "9200", get("APP_PORT", ""))
	assert.Equal(t, "postgres", get("DB_DRIVER", ""))
	assert.Equal(t, "https://img.test/none.png", get("PLACEHOLDER_IMAGE", ""))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, AllowedOrigins())
}

func TestDefaults(t *testing.T) {
	require.NoError(t, reload())

	assert.Equal(t, "sqlite", DatabaseDriver())
	assert.Equal(t, "storefront.db", DatabaseDSN())
	assert.Equal(t, "8000", AppPort())
	assert.Equal(t, "", GRPCPort())
	assert.Equal(t, "https://via.placeholder.com/300x300", PlaceholderImage())
	assert.Equal(t, []string{"*"}, AllowedOrigins())
}

func TestUnknownDriverFallsBack(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	require.NoError(t, reload())
	assert.Equal(t, "sqlite", DatabaseDriver())
}

func TestDSNPerDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	require.NoError(t, reload())
	assert.Equal(t, defaultMySQLDSN, DatabaseDSN())

	t.Setenv("DATABASE_DSN", "custom")
	require.NoError(t, reload())
	assert.Equal(t, "custom", DatabaseDSN())
}

func TestBadJSON(t *testing.T) {
	path := write(t, t.TempDir(), "app.json", `{`)
	assert.ErrorContains(t, reload(path), "decode")
}

func TestWriteLocalEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.local")

	created, err := WriteLocalEnv(path)
	require.NoError(t, err)
	assert.True(t, created)

	require.NoError(t, reload(path))
	assert.Equal(t, "sqlite", get("DB_DRIVER", ""))
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, AllowedOrigins())

	created, err = WriteLocalEnv(path)
	require.NoError(t, err)
	assert.False(t, created)
}
