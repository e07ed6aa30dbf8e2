package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// searchPaths are tried in order when no file is named. A .env file is
// applied to the process environment before the struct is filled.
var searchPaths = []string{"config.yaml", "config.yml", ".env"}

// Load reads the file named by CONFIG_PATH, or the first of config.yaml,
// config.yml and .env found in the working directory, then overlays the
// environment. With no file at all only environment and defaults apply,
// which yields the mock store with sample generation.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv("CONFIG_PATH"))
}

// LoadFrom is Load with an explicit file. A named file that does not exist
// is an error; an empty path searches the working directory.
func LoadFrom(path string) (*Config, error) {
	if path == "" {
		path = discover()
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func discover() string {
	for _, p := range searchPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		} else if !errors.Is(err, fs.ErrNotExist) {
			// Unreadable candidates surface as a read error later.
			return p
		}
	}
	return ""
}

// Describe writes the environment variables Config understands with their
// defaults, for insightctl env.
func Describe(w io.Writer) error {
	header := "Environment variables (override the config file):"
	text, err := cleanenv.GetDescription(&Config{}, &header)
	if err != nil {
		return fmt.Errorf("config: describe: %w", err)
	}
	_, err = fmt.Fprintln(w, text)
	return err
}
