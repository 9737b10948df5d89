package segment

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// EnvMaxLength is the environment variable read by LoadFromEnv.
const EnvMaxLength = "TWEETSPLIT_MAX_LENGTH"

// ErrUnsupportedConfigFormat is returned by LoadConfig for unknown file extensions.
var ErrUnsupportedConfigFormat = errors.New("unsupported config format")

// Config holds configuration for a Segmenter.
type Config struct {
	// MaxLength is the maximum chunk length in characters.
	// Default: 280.
	MaxLength int `json:"max_length" yaml:"max_length" toml:"max_length" mapstructure:"max_length" jsonschema:"minimum=1,default=280,description=Maximum chunk length in characters"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxLength: DefaultMaxLength,
	}
}

// LoadFromEnv populates config fields from environment variables.
// Values that are not positive integers are ignored.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv(EnvMaxLength); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			c.MaxLength = n
		}
	}
}

// FromEnv creates a Config from environment variables with defaults.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.LoadFromEnv()
	return cfg
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MaxLength < 1 {
		return fmt.Errorf("max_length must be >= 1, got %d: %w", c.MaxLength, ErrInvalidLimit)
	}
	return nil
}

// LoadConfig reads a config file, choosing the decoder by extension
// (.yaml, .yml, .toml or .json). Keys absent from the file keep their
// default values. The result is validated.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".json":
		err = json.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("config %s: %w: %q", path, ErrUnsupportedConfigFormat, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ConfigSchema returns the JSON Schema describing a config document.
func ConfigSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}
	return r.Reflect(&Config{})
}
