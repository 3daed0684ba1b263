package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/blogcfg/internal/errors"
)

// Load loads, normalizes, defaults and validates a configuration file.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, derrors.ConfigNotFound(configPath)
		}
		return nil, derrors.Wrap(err, derrors.CategoryConfig, derrors.SeverityFatal, "failed to read config file").
			WithContext("path", configPath)
	}

	dir := filepath.Dir(configPath)
	loadEnvFiles(dir)

	cfg, err := Parse(bytes.NewReader([]byte(os.ExpandEnv(string(data)))))
	if err != nil {
		if se, ok := derrors.As(err); ok {
			return nil, se.WithContext("path", configPath)
		}
		return nil, derrors.Wrap(err, derrors.CategoryConfig, derrors.SeverityFatal, "failed to parse config file").
			WithContext("path", configPath)
	}
	cfg.path = configPath

	if err := cfg.mergeNavbarFiles(dir); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes a configuration document and applies normalization, defaults
// and validation. Navbar files are not read.
func Parse(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
