package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

type Config struct {
	Output  Output  `yaml:"output"`
	Format  Format  `yaml:"format"`
	Logging Logging `yaml:"logging"`

	// path is the file this config was loaded from; empty means the
	// built-in defaults were used and saves go to the canonical location.
	path string
}

type Output struct {
	DataDir string `yaml:"data_dir"`
}

// Format selects the citation rendering standard.
// Standard is "default" or "custom"; Custom is the template used when
// Standard is "custom", with {INDEX}, {TITLE}, {URL}, {AUTHOR},
// {P_DATE(layout)} and {V_DATE(layout)} placeholders.
type Format struct {
	Standard string `yaml:"standard"`
	Custom   string `yaml:"custom"`
}

type Logging struct {
	Level string `yaml:"level"`
}

// ConfigDir returns the XDG config directory for saveit.
func ConfigDir() string {
	return filepath.Join(homeDir(), ".config", "saveit")
}

// DataDir returns the XDG data directory for saveit.
func DataDir() string {
	return filepath.Join(homeDir(), ".local", "share", "saveit")
}

// DefaultPath returns the canonical config file location.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ResolveConfigPath finds the config file following priority:
// explicit path > ~/.config/saveit/config.yaml > ./config.yaml.
// An empty return with nil error means no file exists and defaults apply.
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	if _, err := os.Stat(DefaultPath()); err == nil {
		return DefaultPath(), nil
	}

	cwdConfig := "config.yaml"
	if _, err := os.Stat(cwdConfig); err == nil {
		return cwdConfig, nil
	}

	return "", nil
}

// Load reads and parses a config YAML file. An empty path yields the
// built-in defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return parse(DefaultConfigYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := parse(data)
	if err != nil {
		return nil, err
	}
	cfg.path = path
	return cfg, nil
}

// parse parses YAML bytes into a Config, applying defaults.
func parse(data []byte) (*Config, error) {
	cfg := &Config{
		Format: Format{
			Standard: "default",
			Custom:   "[{INDEX}] {AUTHOR} ({P_DATE()}): {TITLE} {URL} [viewed: {V_DATE()}]",
		},
		Logging: Logging{Level: "info"},
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config back to the file it was loaded from, or to the
// canonical location when it was built from defaults.
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		path = DefaultPath()
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Reset overwrites the persisted config with the built-in default.
func Reset() error {
	if err := os.MkdirAll(ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(DefaultPath(), DefaultConfigYAML, 0o644); err != nil {
		return fmt.Errorf("resetting config: %w", err)
	}
	return nil
}

// GetDataDir returns the effective data directory from config or XDG default.
func (c *Config) GetDataDir() string {
	if c.Output.DataDir != "" {
		return c.Output.DataDir
	}
	return DataDir()
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
