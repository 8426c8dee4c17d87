package config

import (
	"errors"
	"os"

	"pokerhands/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the hand evaluation server
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	HTTP struct {
		Addr           string   `yaml:"addr"`
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	}
	Compare struct {
		// MaxHands is the most hands a single comparison may hold
		MaxHands int `yaml:"maxHands" envconfig:"max_hands"`
	}
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.HTTP.Addr = ":5000"
	cfg.HTTP.AllowedOrigins = []string{"*"}
	cfg.Compare.MaxHands = 10

	return cfg
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. The YAML file is optional; defaults are
// used for anything it leaves out, and environment variables win over both.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("HANDEVAL_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("handeval", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
