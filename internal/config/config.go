package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for config files that are neither TOML nor YAML
var ErrUnknownFormat = errors.New("unknown config format")

// Config holds the settings of the golox command
type Config struct {
	Color       bool   `toml:"color" yaml:"color"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	Prompt      string `toml:"prompt" yaml:"prompt"`
	HistoryFile string `toml:"history_file" yaml:"history_file"`
}

// Names of the files Discover looks for, in order
var fileNames = []string{"golox.toml", "golox.yaml", "golox.yml"}

// Default returns the configuration used when no file is given
func Default() *Config {
	history := ".golox_history"
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, history)
	}
	return &Config{
		Color:       true,
		LogLevel:    "warn",
		Prompt:      "> ",
		HistoryFile: history,
	}
}

// Load reads the file at path on top of Default. The format is picked by
// extension.
func Load(path string) (*Config, error) {
	cfg := Default()

	var decode func([]byte, *Config) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		decode = func(content []byte, cfg *Config) error {
			_, err := toml.Decode(string(content), cfg)
			return err
		}
	case ".yaml", ".yml":
		decode = func(content []byte, cfg *Config) error {
			return yaml.Unmarshal(content, cfg)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := decode(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Level returns the logrus level named by LogLevel
func (c *Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}

// Discover returns the first config file found in the working directory
// or the user config directory, or "" when there is none.
func Discover() string {
	dirs := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "golox"))
	}
	return discoverIn(dirs)
}

func discoverIn(dirs []string) string {
	for _, dir := range dirs {
		for _, name := range fileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}
	return ""
}
