package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Paths contains standard filesystem paths for webgen.
type Paths struct {
	// ConfigFile is the path to the config file
	// (~/.config/webgen/config.yaml on Linux).
	ConfigFile string

	// HomeDir is the webgen config directory.
	HomeDir string
}

// DefaultPaths returns the default paths for webgen.
func DefaultPaths() (*Paths, error) {
	home := filepath.Join(xdg.ConfigHome, "webgen")
	return &Paths{
		ConfigFile: filepath.Join(home, "config.yaml"),
		HomeDir:    home,
	}, nil
}

// GetConfigFile returns the config file path.
// If WEBGEN_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("WEBGEN_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// EnsureHomeDir creates the webgen config directory if it doesn't exist.
func EnsureHomeDir() error {
	paths, err := DefaultPaths()
	if err != nil {
		return err
	}

	return os.MkdirAll(paths.HomeDir, 0o755)
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username form is not supported, return as-is.
	return path, nil
}
