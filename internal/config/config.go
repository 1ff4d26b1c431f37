package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes the environment variables read by Load
// (REFSEARCH_TOP, REFSEARCH_REFERENCES_DIR, ...).
const EnvPrefix = "REFSEARCH"

// DefaultTop is the number of results shown when nothing else is configured.
const DefaultTop = 5

// Config is the effective configuration of a run.
type Config struct {
	ReferencesDir string   `mapstructure:"references_dir" yaml:"references_dir"`
	PatternsDir   string   `mapstructure:"patterns_dir" yaml:"patterns_dir"`
	Top           int      `mapstructure:"top" yaml:"top"`
	LogLevel      string   `mapstructure:"log_level" yaml:"log_level"`
	Excludes      []string `mapstructure:"excludes" yaml:"excludes,omitempty"`
}

// Dir returns the absolute path to ~/.refsearch/.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".refsearch"), nil
}

// Path returns the absolute path to ~/.refsearch/config.yaml.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the configuration used when no file or
// environment overrides are present. The references directory sits next
// to the directory holding the executable; patterns are looked up under
// the working directory.
func DefaultConfig() (*Config, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("cannot locate executable: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working directory: %w", err)
	}
	return &Config{
		ReferencesDir: filepath.Join(filepath.Dir(filepath.Dir(exe)), "references"),
		PatternsDir:   filepath.Join(wd, "content", "published", "patterns"),
		Top:           DefaultTop,
		LogLevel:      "warn",
	}, nil
}

// Load resolves the configuration from defaults, the config file at path
// (~/.refsearch/config.yaml when empty) and REFSEARCH_* variables, in
// increasing order of precedence. A missing config file is not an error.
func Load(path string) (*Config, error) {
	def, err := DefaultConfig()
	if err != nil {
		return nil, err
	}
	explicit := path != ""
	if !explicit {
		if path, err = Path(); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("references_dir", def.ReferencesDir)
	v.SetDefault("patterns_dir", def.PatternsDir)
	v.SetDefault("top", def.Top)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("excludes", []string{})

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", path, err)
		}
	} else if explicit || !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cannot decode config: %w", err)
	}
	if cfg.ReferencesDir, err = ExpandPath(cfg.ReferencesDir); err != nil {
		return nil, err
	}
	if cfg.PatternsDir, err = ExpandPath(cfg.PatternsDir); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Root returns the configured directory for the named collection.
func (c *Config) Root(collection string) (string, error) {
	switch collection {
	case "references":
		return c.ReferencesDir, nil
	case "patterns":
		return c.PatternsDir, nil
	default:
		return "", fmt.Errorf("unknown collection %q", collection)
	}
}

// Marshal renders cfg as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("cannot marshal config: %w", err)
	}
	return data, nil
}
