package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"

	"topic-indexer/internal/cache"
	"topic-indexer/internal/diagnostic"
	"topic-indexer/internal/enrich"
	"topic-indexer/internal/translate"
)

// EnvPrefix prefixes all environment overrides.
const EnvPrefix = "TOPIC_INDEXER_"

// DefaultSourceLanguage is the cataloguing language of the records.
const DefaultSourceLanguage = "de"

// Config is the complete indexer configuration.
type Config struct {
	SourceLanguage string           `yaml:"source_language" env:"SOURCE_LANGUAGE"`
	Languages      []string         `yaml:"languages" env:"LANGUAGES" envSeparator:","`
	CacheCapacity  int              `yaml:"cache_capacity" env:"CACHE_CAPACITY"`
	Workers        int              `yaml:"workers" env:"WORKERS"`
	Dictionary     DictionaryConfig `yaml:"dictionary" envPrefix:"DICTIONARY_"`
	Log            LogConfig        `yaml:"log" envPrefix:"LOG_"`
	Outputs        []enrich.Output  `yaml:"outputs"`
}

// DictionaryConfig selects the translation source. SQLite takes precedence
// over Dir when both are set.
type DictionaryConfig struct {
	Dir    string `yaml:"dir" env:"DIR"`
	SQLite string `yaml:"sqlite" env:"SQLITE"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level" env:"LEVEL"`
	Development bool   `yaml:"development" env:"DEVELOPMENT"`
}

// Load reads the configuration like Read and rejects it only when a setting
// shared by all outputs is invalid. Problems of single outputs are left to the
// caller, see ValidateWith.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}

	if diags := ValidateGlobal(cfg); diags.HasErrors() {
		return nil, fmt.Errorf("invalid configuration: %w: %w", diagnostic.ErrConfiguration, diags.Error())
	}

	return cfg, nil
}

// Read reads the file at path (if any), applies environment overrides and
// then defaults. The result is not validated.
func Read(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := decode(data, cfg); err != nil {
			return nil, err
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

// Parse parses YAML data into a Config and applies defaults without
// environment overrides.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}

	if err := decode(data, cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return nil
}

// ApplyEnv overrides cfg with TOPIC_INDEXER_* environment variables.
func ApplyEnv(cfg *Config) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("failed to apply environment: %w", err)
	}

	return nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.SourceLanguage == "" {
		cfg.SourceLanguage = DefaultSourceLanguage
	}

	if len(cfg.Languages) == 0 {
		cfg.Languages = slices.Clone(translate.DefaultLanguages)
	}

	if cfg.CacheCapacity <= 0 {
		cfg.CacheCapacity = cache.DefaultCapacity
	}

	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	for i := range cfg.Outputs {
		out := &cfg.Outputs[i]
		if out.Func == "" {
			out.Func = out.Name
		}

		if out.Lang == "" {
			out.Lang = cfg.SourceLanguage
		}
	}
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
