// Package config loads the settings of the wordsearch command.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"wordsearch/internal"
	"wordsearch/pkg/dictionary"
	"wordsearch/pkg/search"
)

// EnvPrefix prefixes the environment overrides, e.g. WORDSEARCH_QUERY_MODE.
const EnvPrefix = "WORDSEARCH"

// Config holds all configuration for the command.
type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Query      QueryConfig      `mapstructure:"query"`
	History    HistoryConfig    `mapstructure:"history"`
	Log        LogConfig        `mapstructure:"log"`
}

// DictionaryConfig says where the words come from.
type DictionaryConfig struct {
	Path          string `mapstructure:"path"`
	FileType      string `mapstructure:"file_type"`
	Split         string `mapstructure:"split"`
	MaxWordLength int    `mapstructure:"max_word_length"`
}

// QueryConfig holds the interactive loop settings.
type QueryConfig struct {
	Mode            string `mapstructure:"mode"`
	Prompt          string `mapstructure:"prompt"`
	MaxResults      int    `mapstructure:"max_results"`
	CompletionLimit int    `mapstructure:"completion_limit"`
}

// HistoryConfig holds the readline history file.
type HistoryConfig struct {
	File string `mapstructure:"file"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level   string `mapstructure:"level"`
	Verbose bool   `mapstructure:"verbose"`
}

// Load reads configuration from the file at configPath, if any, and from
// WORDSEARCH_* environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("dictionary.path", "")
	v.SetDefault("dictionary.file_type", "auto")
	v.SetDefault("dictionary.split", "auto")
	// one line of the classic word list reader
	v.SetDefault("dictionary.max_word_length", 99)

	v.SetDefault("query.mode", "prefix")
	v.SetDefault("query.prompt", "Search:")
	v.SetDefault("query.max_results", 0)
	v.SetDefault("query.completion_limit", 32)

	v.SetDefault("history.file", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.verbose", false)
}

// Parsed holds the typed form of the enumerated settings.
type Parsed struct {
	FileType int
	Split    dictionary.SplitMode
	Mode     search.MatchType
}

// Validate checks the values that cannot be corrected later.
func (c *Config) Validate() error {
	_, err := c.Parse()
	return err
}

// Parse validates the configuration and returns its enumerated settings
// in typed form.
func (c *Config) Parse() (Parsed, error) {
	var p Parsed
	if c.Dictionary.Path == "" {
		return p, fmt.Errorf("dictionary path is required")
	}
	fileType, err := internal.ParseFileType(c.Dictionary.FileType)
	if err != nil {
		return p, fmt.Errorf("dictionary file type: %w", err)
	}
	split, err := dictionary.ParseSplitMode(c.Dictionary.Split)
	if err != nil {
		return p, fmt.Errorf("dictionary split: %w", err)
	}
	if c.Dictionary.MaxWordLength < 0 {
		return p, fmt.Errorf("invalid max word length: %d", c.Dictionary.MaxWordLength)
	}
	mode, err := search.ParseMatchType(c.Query.Mode)
	if err != nil {
		return p, fmt.Errorf("query mode: %w", err)
	}
	if c.Query.MaxResults < 0 {
		return p, fmt.Errorf("invalid max results: %d", c.Query.MaxResults)
	}
	if c.Query.CompletionLimit < 0 {
		return p, fmt.Errorf("invalid completion limit: %d", c.Query.CompletionLimit)
	}
	return Parsed{FileType: fileType, Split: split, Mode: mode}, nil
}
