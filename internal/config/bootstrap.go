package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
)

//go:embed default.yml
var defaultYAML []byte

// EnsureUserConfig returns the path of dataDir/config.yml, writing the
// embedded default there first if the file does not exist yet.
func EnsureUserConfig(dataDir string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", err
	}
	tmp := userPath + ".tmp"
	if err := os.WriteFile(tmp, defaultYAML, 0o644); err != nil {
		return "", err
	}
	return userPath, os.Rename(tmp, userPath)
}
