package config

import (
	stderrors "errors"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
	"git.home.luguber.info/inful/docweaver/internal/logfields"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads the first .env/.env.local file found in dir. Existing process
// environment variables are not overwritten. A missing file is not an error.
func loadEnvFile(dir string) error {
	for _, name := range envFiles {
		path := filepath.Join(dir, name)
		err := godotenv.Load(path)
		if err == nil {
			slog.Debug("Loaded environment variables", logfields.Path(path))
			return nil
		}
		if !stderrors.Is(err, fs.ErrNotExist) {
			return errors.WrapError(err, errors.CategoryConfig, "malformed environment file").
				WithContext("path", path).
				Build()
		}
	}
	return nil
}
