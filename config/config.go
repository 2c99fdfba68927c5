// Package config loads the sectsv settings file.
//
// Settings are read from YAML, then defaults are filled in, then
// environment variables override individual fields:
//
//	SECTSV_FORMAT       output format for parse (json, line, text)
//	SECTSV_VERBOSITY    log verbosity, see commonlog.Configure
//	SECTSV_LOG_FILE     log to this file instead of stderr
//	SECTSV_EXTENSIONS   comma-separated file extensions to scan
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the settings file looked up when no path is given.
const DefaultPath = ".sectsv.yaml"

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Format     string   `yaml:"format"`
	Limit      int      `yaml:"limit"`
	Extensions []string `yaml:"extensions"`
	Log        Log      `yaml:"log"`
}

type Log struct {
	Verbosity int    `yaml:"verbosity"`
	File      string `yaml:"file"`
}

// Default returns the settings used when there is no file.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

func ApplyDefaults(cfg *Config) {
	if cfg.Format == "" {
		cfg.Format = "json"
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = []string{".tsv"}
	}
}

// Load reads the settings file at path. A missing file at DefaultPath is
// not an error; any other missing file is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse configuration file %q: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("SECTSV_FORMAT"); val != "" {
		cfg.Format = val
	}
	if val := os.Getenv("SECTSV_VERBOSITY"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Log.Verbosity = i
		}
	}
	if val := os.Getenv("SECTSV_LOG_FILE"); val != "" {
		cfg.Log.File = val
	}
	if val := os.Getenv("SECTSV_EXTENSIONS"); val != "" {
		var exts []string
		for _, ext := range strings.Split(val, ",") {
			if ext = strings.TrimSpace(ext); ext != "" {
				exts = append(exts, ext)
			}
		}
		if len(exts) > 0 {
			cfg.Extensions = exts
		}
	}
}

var formats = []string{"json", "line", "text"}

func Validate(cfg *Config) error {
	if !slices.Contains(formats, cfg.Format) {
		return fmt.Errorf("%w: format %q is not one of %s", ErrInvalid, cfg.Format, strings.Join(formats, ", "))
	}
	if cfg.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative", ErrInvalid)
	}
	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: extension %q must start with a dot", ErrInvalid, ext)
		}
	}
	return nil
}
