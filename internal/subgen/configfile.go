package subgen

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the default application configuration written to
// webgen.toml. The scaffolded server reads it at startup.
type AppConfig struct {
	Name   string       `toml:"name"`
	Server ServerConfig `toml:"server"`
	Assets AssetsConfig `toml:"assets"`
}

// ServerConfig holds server runtime settings.
type ServerConfig struct {
	Framework string `toml:"framework"`
	Port      int    `toml:"port"`
}

// AssetsConfig holds static asset settings.
type AssetsConfig struct {
	Dir      string `toml:"dir"`
	MaxAgeMs int    `toml:"max_age_ms"`
}

// ConfigFile writes the default webgen.toml.
func ConfigFile(root string, p Params) error {
	cfg := AppConfig{
		Name: p["name"],
		Server: ServerConfig{
			Framework: p["server"],
			Port:      8080,
		},
		Assets: AssetsConfig{
			Dir:      "assets",
			MaxAgeMs: 86400000,
		},
	}

	content, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling app config: %w", err)
	}
	return writeFile(root, "webgen.toml", content)
}
