package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/tappio/internal/ledger"
	"github.com/cleared-dev/tappio/internal/tappio"
)

// FileName is the config file looked up in the working directory.
const FileName = "tappio.yaml"

// DefaultVersion is the producer string written into new documents.
const DefaultVersion = "tappio dev"

// Config represents the top-level tappio.yaml configuration.
type Config struct {
	Format   FormatConfig   `yaml:"format"`
	Document DocumentConfig `yaml:"document"`
	Extract  ExtractConfig  `yaml:"extract"`
}

// FormatConfig controls how ledgers are read and written.
type FormatConfig struct {
	Pretty  bool   `yaml:"pretty"`
	Indent  string `yaml:"indent"`
	Newline string `yaml:"newline"` // "crlf" or "lf"
	Charset string `yaml:"charset"` // "utf-8", "latin1" or "cp1252"
}

// DocumentConfig sets the header of newly created documents.
type DocumentConfig struct {
	Version string `yaml:"version"`
	Name    string `yaml:"name"` // fiscal year label
}

// ExtractConfig shapes the opening balances event of an extracted period.
type ExtractConfig struct {
	OpeningDescription string `yaml:"opening_description"`
	OpeningNumber      int    `yaml:"opening_number"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format: FormatConfig{
			Pretty:  false,
			Indent:  "  ",
			Newline: "crlf",
			Charset: string(tappio.UTF8),
		},
		Document: DocumentConfig{
			Version: DefaultVersion,
		},
		Extract: ExtractConfig{
			OpeningDescription: ledger.DefaultOpeningDescription,
			OpeningNumber:      ledger.DefaultOpeningNumber,
		},
	}
}

// Load reads a tappio.yaml file from disk. Keys the file omits keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Resolve loads path if given, else ./tappio.yaml if it exists, else the
// defaults, and then applies environment overrides.
func Resolve(path string) (*Config, error) {
	var cfg *Config
	switch {
	case path != "":
		c, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = c
	default:
		c, err := Load(FileName)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			cfg = Default()
		case err != nil:
			return nil, err
		default:
			cfg = c
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from TAPPIO_* environment variables. A .env
// file is read first if envPath names one, else ./.env if present;
// variables already set in the environment win over the file.
func (c *Config) ApplyEnv(envPath ...string) error {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return fmt.Errorf("loading env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	if v, ok := os.LookupEnv("TAPPIO_PRETTY"); ok {
		pretty, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid TAPPIO_PRETTY: %w", err)
		}
		c.Format.Pretty = pretty
	}
	if v, ok := os.LookupEnv("TAPPIO_INDENT"); ok {
		c.Format.Indent = v
	}
	if v, ok := os.LookupEnv("TAPPIO_NEWLINE"); ok {
		c.Format.Newline = v
	}
	if v, ok := os.LookupEnv("TAPPIO_CHARSET"); ok {
		c.Format.Charset = v
	}
	if v, ok := os.LookupEnv("TAPPIO_VERSION"); ok {
		c.Document.Version = v
	}
	return nil
}

// Options converts the format settings to writer options.
func (f FormatConfig) Options() (tappio.Options, error) {
	opts := tappio.DefaultOptions()
	opts.Pretty = f.Pretty
	if f.Indent != "" {
		opts.Indent = f.Indent
	}
	switch f.Newline {
	case "", "crlf":
		opts.Newline = "\r\n"
	case "lf":
		opts.Newline = "\n"
	default:
		return opts, fmt.Errorf("invalid newline %q: want crlf or lf", f.Newline)
	}
	return opts, nil
}

// Encoding returns the configured file charset.
func (f FormatConfig) Encoding() (tappio.Charset, error) {
	return tappio.ParseCharset(f.Charset)
}

// Options converts the extract settings for ledger.Extract.
func (e ExtractConfig) Options() ledger.ExtractOptions {
	opts := ledger.DefaultExtractOptions()
	if e.OpeningDescription != "" {
		opts.Description = e.OpeningDescription
	}
	opts.Number = e.OpeningNumber
	return opts
}
