package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	dawg "github.com/milden6/anadawg"
)

var (
	DefaultAppName    = "anadawg"
	DefaultConfigName = DefaultAppName
	DefaultConfigPath = filepath.Join(homeDir(), ".config", DefaultAppName)
	DefaultEnvPrefix  = "ANADAWG"
)

const (
	FormatText   = "text"
	FormatBinary = "binary"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Search     SearchConfig     `mapstructure:"search"`
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
}

// DictionaryConfig says where the compiled dictionary is and what it must
// look like.
type DictionaryConfig struct {
	Format    string `mapstructure:"format"`
	Supers    string `mapstructure:"supers"`
	Words     string `mapstructure:"words"`
	Binary    string `mapstructure:"binary"`
	NodeCount int    `mapstructure:"nodeCount"`
	EdgeCount int    `mapstructure:"edgeCount"`
	RootMask  uint32 `mapstructure:"rootMask"`
}

// SearchConfig tunes the anagram engine.
type SearchConfig struct {
	Workers       int `mapstructure:"workers"`
	MaxRackLength int `mapstructure:"maxRackLength"`
}

// ServerConfig stores HTTP settings.
type ServerConfig struct {
	Addr     string `mapstructure:"addr"`
	MaxBatch int    `mapstructure:"maxBatch"`
}

// LogConfig stores logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// Load reads configuration from configPath, or from anadawg.yaml in the
// current directory, ~/.config/anadawg or /etc/anadawg when configPath is
// empty. A missing file is not an error; defaults and ANADAWG_* environment
// variables still apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(DefaultConfigPath)
		v.AddConfigPath(filepath.Join("/etc", DefaultAppName))
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
	}

	setDefaults(v)

	v.SetEnvPrefix(DefaultEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // dictionary.rootMask becomes ANADAWG_DICTIONARY_ROOTMASK
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dictionary.format", FormatText)
	v.SetDefault("dictionary.supers", "new-super.txt")
	v.SetDefault("dictionary.words", "new-words.txt")
	v.SetDefault("dictionary.binary", "dictionary.dawg")
	v.SetDefault("dictionary.nodeCount", 0)
	v.SetDefault("dictionary.edgeCount", 0)
	v.SetDefault("dictionary.rootMask", uint32(dawg.AllLetters))
	v.SetDefault("search.workers", 4)
	v.SetDefault("search.maxRackLength", 0)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.maxBatch", 256)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
}

// Validate rejects settings that cannot work.
func (c *Config) Validate() error {
	switch c.Dictionary.Format {
	case FormatText, FormatBinary:
	default:
		return fmt.Errorf("dictionary.format must be %q or %q, not %q",
			FormatText, FormatBinary, c.Dictionary.Format)
	}
	if c.Dictionary.NodeCount < 0 || c.Dictionary.EdgeCount < 0 {
		return errors.New("dictionary node and edge counts cannot be negative")
	}
	if c.Search.Workers < 1 {
		return fmt.Errorf("search.workers must be at least 1, not %d", c.Search.Workers)
	}
	if c.Search.MaxRackLength < 0 {
		return errors.New("search.maxRackLength cannot be negative")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// StoreConfig is the part of the configuration the dictionary is checked
// against.
func (c *Config) StoreConfig() dawg.Config {
	return dawg.Config{
		NodeCount: c.Dictionary.NodeCount,
		EdgeCount: c.Dictionary.EdgeCount,
		RootMask:  dawg.Bitmask(c.Dictionary.RootMask),
	}
}

// OpenStore loads the configured dictionary.
func (c *Config) OpenStore() (*dawg.Store, error) {
	if c.Dictionary.Format == FormatBinary {
		return dawg.Load(c.Dictionary.Binary, c.StoreConfig())
	}
	return dawg.LoadText(c.Dictionary.Supers, c.Dictionary.Words, c.StoreConfig())
}

// Logger returns a properly configured zerolog logger instance
func (c *Config) Logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if c.Log.Pretty {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
