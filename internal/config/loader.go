package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/partwm/partwm/internal/runtimepath"
)

// Load reads the configuration file at the standard location, merges it
// over Default(), validates the result, and returns it. A missing file is
// not an error: Default() alone is returned.
func Load() (*Config, error) {
	path, err := runtimepath.ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("config: resolving path: %w", err)
	}
	return LoadFromPath(path)
}

// LoadFromPath loads and validates the configuration file at path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return finish(cfg)
	case err != nil:
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var raw RawConfig
	if err := decodeStrictYAML(data, &raw); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return finish(raw.applyTo(cfg))
}

func finish(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return nil
}
