package config

import (
	"fmt"
	"os"
)

const localEnvTemplate = `# Local development environment
APP_ENV=local
APP_PORT=8000

# SQLite needs no server; switch DB_DRIVER to postgres for a production-like setup.
DB_DRIVER=sqlite
DATABASE_DSN=storefront.db

PLACEHOLDER_IMAGE=https://via.placeholder.com/300x300
ALLOWED_ORIGINS=http://localhost:3000,http://127.0.0.1:3000
`

// WriteLocalEnv creates path with local development defaults unless it
// already exists. It reports whether a file was written.
func WriteLocalEnv(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("config: stat %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(localEnvTemplate), 0o644); err != nil {
		return false, fmt.Errorf("config: write %s: %w", path, err)
	}
	return true, nil
}
