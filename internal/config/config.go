// Package config provides tool-level configuration loading and
// management. This is the generator's own configuration, unrelated to
// the per-project manifest or stored project choices.
package config

// Config represents the webgen CLI configuration.
// Loaded from the XDG config directory (~/.config/webgen/config.yaml).
type Config struct {
	// Account is the default forge account used for remotes and
	// README badges when the email lookup finds nothing.
	// Env: WEBGEN_ACCOUNT
	Account string `mapstructure:"account"`

	// License controls whether new projects get a LICENSE file.
	// Env: WEBGEN_LICENSE, Default: true
	License *bool `mapstructure:"license"`

	// SkipInstall disables the dependency install after generation.
	// Env: WEBGEN_SKIP_INSTALL, Default: false
	SkipInstall bool `mapstructure:"skipInstall"`

	// CI controls whether new projects get a CI workflow.
	// Env: WEBGEN_CI, Default: true
	CI *bool `mapstructure:"ci"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `webgen config init` to generate the initial config file.
func DefaultConfig() *Config {
	t := true
	return &Config{
		License: &t,
		CI:      &t,
	}
}

// WithDefaults fills unset optional fields with their defaults.
func (c *Config) WithDefaults() *Config {
	t := true
	if c.License == nil {
		c.License = &t
	}
	if c.CI == nil {
		c.CI = &t
	}
	return c
}

// LicenseEnabled reports the effective license setting.
func (c *Config) LicenseEnabled() bool {
	return c.License == nil || *c.License
}

// CIEnabled reports the effective CI setting.
func (c *Config) CIEnabled() bool {
	return c.CI == nil || *c.CI
}
